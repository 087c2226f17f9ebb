package shaders

import (
	"fmt"
	"log/slog"
)

// Loader renders the templates for one dialect and hands them to a GL
// program builder. Build and Delete must be called on the GL thread.
type Loader struct {
	Dir     string
	Dialect Dialect
	Data    *ShaderData

	Build  func(vertexSrc, fragmentSrc string) (uint32, error)
	Delete func(program uint32)
	// OnBuild is told about the outcome of every build, e.g. for metrics.
	OnBuild func(err error)
}

func (l *Loader) Load() (uint32, error) {
	program, err := l.load()
	if l.OnBuild != nil {
		l.OnBuild(err)
	}
	return program, err
}

func (l *Loader) load() (uint32, error) {
	shaderer, err := NewShaderer(l.Dir)
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexSrc, fragmentSrc, err := shaderer.Sources(l.Dialect, l.Data)
	if err != nil {
		return 0, err
	}

	program, err := l.Build(vertexSrc, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("could not build %s program from %s shaders: %w", l.Dialect, shaderer.Source(), err)
	}
	return program, nil
}

// Reload builds a fresh program and releases current. When the build
// fails, current stays in use and false is returned.
func (l *Loader) Reload(current uint32) (uint32, bool) {
	program, err := l.Load()
	if err != nil {
		slog.Error(err.Error(), "module", "shaders")
		return current, false
	}
	l.Delete(current)
	slog.Info("shader program reloaded", "module", "shaders", "dialect", string(l.Dialect))
	return program, true
}
