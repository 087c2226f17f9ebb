//go:build linux

// Package egl binds an OpenGL ES context to the default native display,
// typically a Linux framebuffer driven by a vendor EGL (Vivante, Mali).
package egl

/*
#cgo LDFLAGS: -lEGL
#cgo CFLAGS: -DEGL_NO_X11 -DMESA_EGL_NO_X11_HEADERS

#include <EGL/egl.h>

static EGLDisplay tricolourDefaultDisplay(void) {
	return eglGetDisplay(EGL_DEFAULT_DISPLAY);
}

// The framebuffer drivers accept a null native window for the full screen.
static EGLSurface tricolourDefaultWindowSurface(EGLDisplay dpy, EGLConfig cfg, const EGLint *attribs) {
	return eglCreateWindowSurface(dpy, cfg, (EGLNativeWindowType)0, attribs);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/fosdem/tricolour/lib/eglcfg"
)

func logger() *slog.Logger {
	return slog.With("module", "egl")
}

// Error wraps the eglGetError code of a failed call.
type Error struct {
	Op   string
	Code int32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, eglcfg.ErrorName(e.Code))
}

func lastError(op string) error {
	return &Error{Op: op, Code: int32(C.eglGetError())}
}

// cgo maps EGLDisplay and EGLConfig to uintptr.
var noDisplay C.EGLDisplay

// Display owns an initialised display with a window surface and a current
// context. It must be used from the thread that opened it.
type Display struct {
	dpy  C.EGLDisplay
	cfg  C.EGLConfig
	surf C.EGLSurface
	ctx  C.EGLContext

	Major, Minor int32
}

// Open initialises EGL on the default display and makes an OpenGL ES
// context current on a window surface. Anything created before a failing
// step is released again.
func Open(spec eglcfg.ConfigSpec) (*Display, error) {
	err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid EGL config spec: %w", err)
	}

	d := &Display{}
	d.dpy = C.tricolourDefaultDisplay()
	if d.dpy == noDisplay {
		return nil, errors.New("failed to get EGL display")
	}

	var major, minor C.EGLint
	if C.eglInitialize(d.dpy, &major, &minor) != C.EGL_TRUE {
		return nil, lastError("eglInitialize")
	}
	d.Major, d.Minor = int32(major), int32(minor)
	logger().Info(fmt.Sprintf("EGL version: %d.%d", d.Major, d.Minor), "vendor", d.QueryString(eglcfg.Vendor))

	err = d.setup(spec)
	if err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Display) setup(spec eglcfg.ConfigSpec) error {
	configAttribs := spec.ConfigAttribs()
	var numConfigs C.EGLint
	if C.eglChooseConfig(d.dpy, attribPtr(configAttribs), &d.cfg, 1, &numConfigs) != C.EGL_TRUE {
		return lastError("eglChooseConfig")
	}
	if numConfigs < 1 {
		return errors.New("failed to choose EGL config: no matching config")
	}

	d.surf = C.tricolourDefaultWindowSurface(d.dpy, d.cfg, attribPtr(eglcfg.SurfaceAttribs()))
	if d.surf == nil {
		return lastError("eglCreateWindowSurface")
	}

	if C.eglBindAPI(eglcfg.OpenGLESAPI) != C.EGL_TRUE {
		return lastError("eglBindAPI")
	}

	d.ctx = C.eglCreateContext(d.dpy, d.cfg, nil, attribPtr(spec.ContextAttribs()))
	if d.ctx == nil {
		return lastError("eglCreateContext")
	}

	if C.eglMakeCurrent(d.dpy, d.surf, d.surf, d.ctx) != C.EGL_TRUE {
		return lastError("eglMakeCurrent")
	}
	return nil
}

// Size returns the dimensions of the window surface.
func (d *Display) Size() (int, int, error) {
	var width, height C.EGLint
	if C.eglQuerySurface(d.dpy, d.surf, eglcfg.Width, &width) != C.EGL_TRUE {
		return 0, 0, lastError("eglQuerySurface")
	}
	if C.eglQuerySurface(d.dpy, d.surf, eglcfg.Height, &height) != C.EGL_TRUE {
		return 0, 0, lastError("eglQuerySurface")
	}
	return int(width), int(height), nil
}

func (d *Display) SwapBuffers() error {
	if C.eglSwapBuffers(d.dpy, d.surf) != C.EGL_TRUE {
		return lastError("eglSwapBuffers")
	}
	return nil
}

func (d *Display) SetSwapInterval(interval int) error {
	if C.eglSwapInterval(d.dpy, C.EGLint(interval)) != C.EGL_TRUE {
		return lastError("eglSwapInterval")
	}
	return nil
}

// QueryString returns one of the eglcfg.Vendor, eglcfg.Version or
// eglcfg.ClientAPIs strings.
func (d *Display) QueryString(name int32) string {
	s := C.eglQueryString(d.dpy, C.EGLint(name))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// Close releases the context, the surface and the display. It is safe to
// call on a partially opened display.
func (d *Display) Close() {
	if d.dpy == noDisplay {
		return
	}
	C.eglMakeCurrent(d.dpy, nil, nil, nil)
	if d.ctx != nil {
		C.eglDestroyContext(d.dpy, d.ctx)
		d.ctx = nil
	}
	if d.surf != nil {
		C.eglDestroySurface(d.dpy, d.surf)
		d.surf = nil
	}
	C.eglTerminate(d.dpy)
	d.dpy = noDisplay
}

func attribPtr(attribs []int32) *C.EGLint {
	return (*C.EGLint)(unsafe.Pointer(&attribs[0]))
}
