//go:build linux

package fbdev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Probe asks the framebuffer driver behind device for its visible
// resolution.
func Probe(device string) (Info, error) {
	fd, err := unix.Open(device, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return Info{}, fmt.Errorf("could not open %s: %w", device, err)
	}
	defer unix.Close(fd)

	var v varScreenInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), fbioGetVScreenInfo, uintptr(unsafe.Pointer(&v)))
	if errno != 0 {
		return Info{}, fmt.Errorf("FBIOGET_VSCREENINFO on %s: %w", device, errno)
	}
	return infoFrom(device, &v), nil
}
