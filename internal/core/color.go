package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit colour for a screen cell or a simulation palette entry.
// The zero value means "terminal default" and is never emitted as an escape.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB builds a colour from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// IsSet reports whether the colour carries a value.
func (c Color) IsSet() bool {
	return c.set
}

// ParseHex parses "#rrggbb" (or "#rgb") into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return fromColorful(cf), nil
}

// Hex parses a colour literal, returning the zero Color on malformed input.
// Intended for palette constants; use ParseHex for user data.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return Color{}
	}
	return c
}

// Hex renders the colour as "#rrggbb". Unset colours render as "".
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LerpColor interpolates between a and b in RGB space by t in [0,1].
// An unset endpoint yields the other endpoint.
func LerpColor(a, b Color, t float64) Color {
	switch {
	case !a.set:
		return b
	case !b.set:
		return a
	}
	t = ClampF(t, 0, 1)
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t))
}

// HSV builds a colour from hue in degrees [0,360) and saturation/value in [0,1].
func HSV(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v))
}

// Dim scales the colour toward black by factor (1 keeps it, 0 is black).
func (c Color) Dim(factor float64) Color {
	if !c.set {
		return c
	}
	return LerpColor(RGB(0, 0, 0), c, factor)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}
