// Package demo holds what both triangle programs share around their GL
// code: the API, shader watching, stats and metrics.
package demo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fosdem/tricolour/lib/api"
	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/lifecycle"
	"github.com/fosdem/tricolour/lib/metrics"
	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/fosdem/tricolour/lib/shaderwatch"
	"github.com/fosdem/tricolour/lib/stats"
)

type Session struct {
	Name      string
	Lifecycle *lifecycle.Lifecycle
	Stats     *stats.Stats
	Metrics   metrics.DemoMetrics

	cfg    *config.Config
	api    *api.Api
	cancel context.CancelFunc
	logger *slog.Logger
}

// Start brings up the background parts configured in cfg. They stop with
// ctx or when Close is called.
func Start(ctx context.Context, name string, cfg *config.Config) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		Name:      name,
		Lifecycle: &lifecycle.Lifecycle{},
		Stats:     stats.New(name),
		Metrics:   metrics.NewDemoMetrics(name),
		cfg:       cfg,
		cancel:    cancel,
		logger:    slog.With("module", name),
	}

	if cfg.WatchShaders {
		err := shaderwatch.Watch(ctx, cfg.ShaderDir.String(), func(string) {
			s.Lifecycle.RequestShaderReload()
		})
		if errors.Is(err, shaderwatch.ErrUnsupported) {
			s.logger.Warn(err.Error())
		} else if err != nil {
			s.logger.Error("could not watch shaders", "err", err)
		}
	}

	theApi, err := api.ServeInBackground(cfg.Api, s.Lifecycle, s.Stats)
	if err != nil {
		cancel()
		return nil, err
	}
	s.api = theApi
	return s, nil
}

// Loader returns a shader loader for dialect that reports to the session
// metrics.
func (s *Session) Loader(dialect shaders.Dialect, data *shaders.ShaderData, build func(string, string) (uint32, error), del func(uint32)) *shaders.Loader {
	return &shaders.Loader{
		Dir:     s.cfg.ShaderDir.String(),
		Dialect: dialect,
		Data:    data,
		Build:   build,
		Delete:  del,
		OnBuild: s.Metrics.ShaderBuild,
	}
}

// Reload swaps program for a rebuilt one if a reload was requested.
func (s *Session) Reload(loader *shaders.Loader, program uint32) (uint32, bool) {
	if !s.Lifecycle.TakeShaderReload() {
		return program, false
	}
	program, ok := loader.Reload(program)
	if ok {
		s.Stats.ShaderReloaded()
	}
	return program, ok
}

func (s *Session) FrameDone(dt time.Duration) {
	s.Stats.FrameDone()
	s.Metrics.FrameDone(dt)
}

func (s *Session) Close() {
	s.cancel()
	if s.api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := s.api.Shutdown(ctx)
		if err != nil {
			s.logger.Warn("could not stop web server", "err", err)
		}
	}
}
