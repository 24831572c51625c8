package gradient

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA value with every channel in [0,1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// RGB returns an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// FromColor converts any color.Color, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(nrgba.R) / 0xffff,
		G: float64(nrgba.G) / 0xffff,
		B: float64(nrgba.B) / 0xffff,
		A: float64(nrgba.A) / 0xffff,
	}
}

// WithAlpha returns a copy of c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the 8-bit non-premultiplied form used by the renderers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Hex returns the #rrggbb form of the color, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("%s@%.2f", c.Hex(), c.A)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cf colorful.Color, alpha float64) Color {
	cf = cf.Clamped()
	return Color{R: cf.R, G: cf.G, B: cf.B, A: clamp01(alpha)}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
