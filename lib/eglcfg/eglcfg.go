// Package eglcfg builds EGL attribute lists and names EGL error codes. It
// has no cgo dependency so it can be used and tested anywhere.
package eglcfg

import "fmt"

// Values from EGL/egl.h (EGL 1.4).
const (
	None                 = 0x3038
	AlphaSize            = 0x3021
	BlueSize             = 0x3022
	GreenSize            = 0x3023
	RedSize              = 0x3024
	DepthSize            = 0x3025
	StencilSize          = 0x3026
	SurfaceType          = 0x3033
	RenderableType       = 0x3040
	Height               = 0x3056
	Width                = 0x3057
	Vendor               = 0x3053
	Version              = 0x3054
	ClientAPIs           = 0x308D
	ContextClientVersion = 0x3098
	OpenGLESAPI          = 0x30A0

	WindowBit     = 0x0004
	OpenGLES2Bit  = 0x0004
	OpenGLES3Bit  = 0x0040
	PbufferBit    = 0x0001
	success       = 0x3000
	lastErrorCode = 0x300E
)

var errorNames = [...]string{
	"EGL_SUCCESS",
	"EGL_NOT_INITIALIZED",
	"EGL_BAD_ACCESS",
	"EGL_BAD_ALLOC",
	"EGL_BAD_ATTRIBUTE",
	"EGL_BAD_CONFIG",
	"EGL_BAD_CONTEXT",
	"EGL_BAD_CURRENT_SURFACE",
	"EGL_BAD_DISPLAY",
	"EGL_BAD_MATCH",
	"EGL_BAD_NATIVE_PIXMAP",
	"EGL_BAD_NATIVE_WINDOW",
	"EGL_BAD_PARAMETER",
	"EGL_BAD_SURFACE",
	"EGL_CONTEXT_LOST",
}

// ErrorName returns the symbolic name of an eglGetError code.
func ErrorName(code int32) string {
	if code < success || code > lastErrorCode {
		return fmt.Sprintf("0x%04x", code)
	}
	return errorNames[code-success]
}

// ConfigSpec describes the framebuffer configuration to ask eglChooseConfig
// for.
type ConfigSpec struct {
	RedSize     int32
	GreenSize   int32
	BlueSize    int32
	AlphaSize   int32
	DepthSize   int32
	StencilSize int32
	// ClientVersion is the OpenGL ES major version, 2 or 3.
	ClientVersion int32
}

// DefaultConfigSpec asks for an RGBA8888 window surface with a 16 bit
// depth buffer, renderable with OpenGL ES 2.
func DefaultConfigSpec() ConfigSpec {
	return ConfigSpec{
		RedSize:       8,
		GreenSize:     8,
		BlueSize:      8,
		AlphaSize:     8,
		DepthSize:     16,
		ClientVersion: 2,
	}
}

func (c ConfigSpec) renderableBit() int32 {
	if c.ClientVersion >= 3 {
		return OpenGLES3Bit
	}
	return OpenGLES2Bit
}

// ConfigAttribs returns the EGL_NONE terminated list for eglChooseConfig.
func (c ConfigSpec) ConfigAttribs() []int32 {
	attribs := []int32{
		SurfaceType, WindowBit,
		RenderableType, c.renderableBit(),
		RedSize, c.RedSize,
		GreenSize, c.GreenSize,
		BlueSize, c.BlueSize,
		AlphaSize, c.AlphaSize,
		DepthSize, c.DepthSize,
	}
	if c.StencilSize > 0 {
		attribs = append(attribs, StencilSize, c.StencilSize)
	}
	return append(attribs, None)
}

// ContextAttribs returns the EGL_NONE terminated list for eglCreateContext.
func (c ConfigSpec) ContextAttribs() []int32 {
	version := c.ClientVersion
	if version == 0 {
		version = 2
	}
	return []int32{ContextClientVersion, version, None}
}

// SurfaceAttribs is the empty list passed to eglCreateWindowSurface.
func SurfaceAttribs() []int32 {
	return []int32{None}
}

func (c ConfigSpec) Validate() error {
	if c.ClientVersion != 2 && c.ClientVersion != 3 {
		return fmt.Errorf("OpenGL ES %d is not supported", c.ClientVersion)
	}
	for _, size := range []int32{c.RedSize, c.GreenSize, c.BlueSize, c.AlphaSize, c.DepthSize, c.StencilSize} {
		if size < 0 {
			return fmt.Errorf("buffer sizes must be nonnegative")
		}
	}
	return nil
}
