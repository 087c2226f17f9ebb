// Package fbdev reads the geometry of a Linux framebuffer device.
package fbdev

import "fmt"

const fbioGetVScreenInfo = 0x4600

type bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo from linux/fb.h.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	HeightMM, WidthMM        uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync                     uint32
	VMode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// Info is the visible geometry of a framebuffer.
type Info struct {
	Device       string
	Width        int
	Height       int
	BitsPerPixel int
}

func (i Info) String() string {
	return fmt.Sprintf("%s %dx%d@%dbpp", i.Device, i.Width, i.Height, i.BitsPerPixel)
}

func infoFrom(device string, v *varScreenInfo) Info {
	return Info{
		Device:       device,
		Width:        int(v.XRes),
		Height:       int(v.YRes),
		BitsPerPixel: int(v.BitsPerPixel),
	}
}
