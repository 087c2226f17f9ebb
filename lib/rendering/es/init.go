//go:build linux

// Package es draws the triangle through OpenGL ES 2 using client-side
// vertex arrays, for EGL targets without a desktop GL driver.
package es

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/tricolour/lib/stats"
	"github.com/go-gl/gl/v3.1/gles2"
)

func logger() *slog.Logger {
	return slog.With("module", "gles2")
}

func Init() (stats.GLInfo, error) {
	err := gles2.Init()
	if err != nil {
		return stats.GLInfo{}, fmt.Errorf("could not initialise OpenGL ES context: %w", err)
	}

	info := stats.GLInfo{
		Vendor:   gles2.GoStr(gles2.GetString(gles2.VENDOR)),
		Renderer: gles2.GoStr(gles2.GetString(gles2.RENDERER)),
		Version:  gles2.GoStr(gles2.GetString(gles2.VERSION)),
	}
	logger().Info(fmt.Sprintf("OpenGL ES version %s / %s / %s", info.Vendor, info.Renderer, info.Version))
	return info, nil
}
