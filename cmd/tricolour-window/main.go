package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/desktop"
	"github.com/fosdem/tricolour/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "YAML config file; defaults reproduce the plain 800x600 demo")
	flag.Parse()

	log.Setup(slog.LevelInfo)
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log.Setup(level)

	err = desktop.Run(context.Background(), cfg)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
