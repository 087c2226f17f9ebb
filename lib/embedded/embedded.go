//go:build linux

// Package embedded draws the triangle once on an EGL window surface with
// OpenGL ES 2 and then idles, as suits a framebuffer without a compositor.
package embedded

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/demo"
	"github.com/fosdem/tricolour/lib/egl"
	"github.com/fosdem/tricolour/lib/eglcfg"
	"github.com/fosdem/tricolour/lib/fbdev"
	"github.com/fosdem/tricolour/lib/geometry"
	"github.com/fosdem/tricolour/lib/rendering/es"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/fosdem/tricolour/lib/utils"
)

func logger() *slog.Logger {
	return slog.With("module", "fb")
}

type scene struct {
	display  *egl.Display
	width    int
	height   int
	bg       utils.Colour
	triangle geometry.Triangle
}

func (s *scene) draw(program uint32) error {
	attribs, err := es.LookupAttribs(program, shaders.ESData)
	if err != nil {
		return err
	}
	es.DrawTriangle(program, attribs, s.width, s.height, s.bg, s.triangle)
	return s.display.SwapBuffers()
}

// Run renders a single frame and keeps it on screen until ctx is done or
// a shutdown is requested. Shader reloads redraw the frame. It must be
// called from a goroutine locked to its OS thread.
func Run(ctx context.Context, cfg *config.Config) error {
	session, err := demo.Start(ctx, "fb", cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	display, err := egl.Open(eglcfg.DefaultConfigSpec())
	if err != nil {
		return fmt.Errorf("could not set up EGL: %w", err)
	}
	defer display.Close()

	err = display.SetSwapInterval(*cfg.Framebuffer.SwapInterval)
	if err != nil {
		logger().Warn("could not set swap interval", "err", err)
	}

	info, err := es.Init()
	if err != nil {
		return err
	}
	session.Stats.SetGLInfo(info)

	width, height, err := display.Size()
	if err != nil {
		return fmt.Errorf("could not query surface size: %w", err)
	}
	logger().Info(fmt.Sprintf("Surface size: %dx%d", width, height))

	fb, err := fbdev.Probe(cfg.Framebuffer.FBDev)
	if err != nil {
		logger().Debug("no framebuffer geometry", "err", err)
	} else {
		logger().Info(fmt.Sprintf("Framebuffer %s", fb))
		if width == 0 || height == 0 {
			width, height = fb.Width, fb.Height
		}
	}

	loader := session.Loader(shaders.ES, shaders.ESData, es.BuildProgram, es.DeleteProgram)
	program, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	defer func() {
		es.DeleteProgram(program)
	}()

	s := &scene{
		display:  display,
		width:    width,
		height:   height,
		bg:       cfg.Background(),
		triangle: geometry.DefaultTriangle(),
	}
	err = s.draw(program)
	if err != nil {
		return fmt.Errorf("could not render triangle: %w", err)
	}
	session.FrameDone(0)
	logger().Info("Triangle rendered. Press Ctrl+C to exit...")

	ticker := time.NewTicker(time.Duration(cfg.Framebuffer.IdleTickMs) * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger().Info("interrupted, cleaning up")
			return nil
		case <-ticker.C:
		}
		if session.Lifecycle.ShutdownRequested() {
			return nil
		}

		var reloaded bool
		program, reloaded = session.Reload(loader, program)
		if !reloaded {
			continue
		}
		err = s.draw(program)
		if err != nil {
			logger().Error("could not redraw after shader reload", "err", err)
			continue
		}
		now := time.Now()
		session.FrameDone(now.Sub(last))
		last = now
	}
}
