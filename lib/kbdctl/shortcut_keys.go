package kbdctl

import (
	"log/slog"

	"github.com/fosdem/tricolour/lib/lifecycle"
	"github.com/fosdem/tricolour/lib/windowsink"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupShortcutKeys makes Escape close the window. Ctrl+Shift+Q asks for
// a shutdown as well, which also reaches a window that ignores close.
func SetupShortcutKeys(ws *windowsink.WindowSink, lc *lifecycle.Lifecycle) {
	ws.Window.SetKeyCallback(keyCallback(lc))
}

func keyCallback(lc *lifecycle.Lifecycle) glfw.KeyCallback {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && key == glfw.KeyEscape {
			slog.Info("escape pressed, closing window", "module", "kbdctl")
			w.SetShouldClose(true)
			return
		}
		if action == glfw.Release &&
			key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			slog.Info("told to quit, exiting", "module", "kbdctl")
			lc.RequestShutdown()
		}
	}
}
