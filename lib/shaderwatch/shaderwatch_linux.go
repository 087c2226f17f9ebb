//go:build linux

package shaderwatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"
)

func logger() *slog.Logger {
	return slog.With("module", "shaderwatch")
}

// Watch calls onChange for every shader file in dir that is written or
// moved into place, until ctx is cancelled. The watch is set up before
// Watch returns; events are delivered from a background goroutine.
func Watch(ctx context.Context, dir string, onChange func(name string)) error {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}

	_, err = watcher.Watch(dir)
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	go func() {
		<-ctx.Done()
		// Close also reports a read error from the event loop.
		err := watcher.Close()
		if err != nil {
			logger().Error("inotify watcher failed", "err", err)
		}
	}()

	go func() {
		for ev := range watcher.Event {
			if ev.Mask&(inotify.IN_CLOSE_WRITE|inotify.IN_MOVED_TO) == 0 || !IsShaderFile(ev.Name) {
				continue
			}
			logger().Debug("shader changed", "file", ev.Name)
			time.Sleep(settle)
			onChange(ev.Name)
		}
	}()

	logger().Info("watching shaders", "dir", dir)
	return nil
}
