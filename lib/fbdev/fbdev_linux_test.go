//go:build linux

package fbdev

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeMissingDevice(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "fb9"))
	assert.Error(t, err)
}

func TestProbeNotAFramebuffer(t *testing.T) {
	_, err := Probe("/dev/null")
	assert.ErrorContains(t, err, "FBIOGET_VSCREENINFO")
}
