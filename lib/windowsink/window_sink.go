package windowsink

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink is a GLFW window with a current OpenGL core profile context.
type WindowSink struct {
	Window *glfw.Window

	cfg    *config.WindowCfg
	logger *slog.Logger
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{
		cfg:    cfg,
		logger: slog.With("module", "window"),
	}
}

// Start initialises GLFW, opens the window and makes its context current
// on the calling thread, which must be locked to its OS thread.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	w.logger.Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolHint(!w.cfg.FixedSize))
	glfw.WindowHint(glfw.ContextVersionMajor, w.cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, w.cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(*w.cfg.SwapInterval)
	w.Window = window

	width, height := window.GetFramebufferSize()
	w.logger.Info(fmt.Sprintf("Window %q open, framebuffer %dx%d", w.cfg.Title, width, height))
	return nil
}

// OnResize registers fn for framebuffer size changes. It runs from
// PollEvents, on the render thread.
func (w *WindowSink) OnResize(fn func(width, height int)) {
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		w.logger.Debug("framebuffer resized", "width", width, "height", height)
		fn(width, height)
	})
}

func (w *WindowSink) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) Present() {
	w.Window.SwapBuffers()
	glfw.PollEvents()
}

// Destroy closes the window and shuts GLFW down.
func (w *WindowSink) Destroy() {
	if w.Window != nil {
		w.Window.Destroy()
		w.Window = nil
	}
	glfw.Terminate()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
