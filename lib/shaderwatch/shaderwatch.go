// Package shaderwatch notices edits to an on-disk shader directory.
package shaderwatch

import (
	"errors"
	"path/filepath"
	"time"
)

// ErrUnsupported is returned on platforms without inotify.
var ErrUnsupported = errors.New("shader watching is not supported on this platform")

// settle gives editors time to finish writing before the reload.
const settle = 100 * time.Millisecond

// IsShaderFile reports whether name is a file the shader templates are
// parsed from.
func IsShaderFile(name string) bool {
	switch filepath.Ext(name) {
	case ".vert", ".frag":
		return true
	}
	return false
}
