//go:build linux

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/embedded"
	"github.com/fosdem/tricolour/lib/log"
	"golang.org/x/sys/unix"
)

func init() {
	// EGL contexts are bound to the thread that made them current
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file; defaults reproduce the plain framebuffer demo")
	flag.Parse()

	log.Setup(slog.LevelInfo)
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log.Setup(level)

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	err = embedded.Run(ctx, cfg)
	if err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
