// Package lifecycle carries requests from background goroutines to the
// render thread, which is the only one allowed to touch the GL context.
package lifecycle

import "sync/atomic"

type Lifecycle struct {
	shutdown atomic.Bool
	reload   atomic.Bool
}

func (l *Lifecycle) RequestShutdown() {
	l.shutdown.Store(true)
}

func (l *Lifecycle) ShutdownRequested() bool {
	return l.shutdown.Load()
}

func (l *Lifecycle) RequestShaderReload() {
	l.reload.Store(true)
}

// TakeShaderReload reports whether a reload was requested and clears the
// request.
func (l *Lifecycle) TakeShaderReload() bool {
	return l.reload.Swap(false)
}
