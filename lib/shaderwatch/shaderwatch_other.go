//go:build !linux

package shaderwatch

import "context"

func Watch(ctx context.Context, dir string, onChange func(name string)) error {
	return ErrUnsupported
}
