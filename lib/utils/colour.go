package utils

import (
	"fmt"
	"regexp"
)

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour, ready for gl.ClearColor.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

// ColourParse reads a #RRGGBBAA hex string.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{}, fmt.Errorf("%q is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{}, fmt.Errorf("could not parse colour %q: %w", s, err)
	}
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}
