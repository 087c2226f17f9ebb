//go:build linux

package egl

import (
	"testing"

	"github.com/fosdem/tricolour/lib/eglcfg"
	"github.com/stretchr/testify/assert"
)

func TestCloseUnopenedDisplay(t *testing.T) {
	d := &Display{}
	assert.Equal(t, noDisplay, d.dpy)
	assert.NotPanics(t, d.Close)
	assert.NotPanics(t, d.Close)
	assert.Equal(t, noDisplay, d.dpy)
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	spec := eglcfg.DefaultConfigSpec()
	spec.ClientVersion = 1
	d, err := Open(spec)
	assert.ErrorContains(t, err, "invalid EGL config spec")
	assert.Nil(t, d)
}

func TestErrorName(t *testing.T) {
	err := &Error{Op: "eglInitialize", Code: 0x3001}
	assert.Equal(t, "eglInitialize failed: EGL_NOT_INITIALIZED", err.Error())
}
