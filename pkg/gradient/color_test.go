package gradient

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromColorUnpremultiplies(t *testing.T) {
	// Half-transparent pure red, premultiplied.
	c := FromColor(color.RGBA{R: 128, A: 128})

	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)
}

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  color.NRGBA
	}{
		{name: "opaque", color: RGB(10, 20, 30), want: color.NRGBA{R: 10, G: 20, B: 30, A: 255}},
		{name: "translucent", color: RGB(255, 0, 0).WithAlpha(0.7), want: color.NRGBA{R: 255, A: 179}},
		{name: "clamped", color: Color{R: 2, G: -1, B: 0.5, A: 1}, want: color.NRGBA{R: 255, G: 0, B: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.NRGBA())
		})
	}
}

func TestColorHexAndString(t *testing.T) {
	c := RGB(0, 122, 255).WithAlpha(0.8)

	assert.Equal(t, "#007aff", c.Hex())
	assert.Equal(t, "#007aff@0.80", c.String())
}

func TestDefaultColors(t *testing.T) {
	got := DefaultColors()

	assert.Equal(t, []string{"#007aff", "#af52de", "#ff2d55"}, got.Hex())
	assert.InDelta(t, 0.8, got[0].A, 1e-9)
	assert.InDelta(t, 0.6, got[1].A, 1e-9)
	assert.InDelta(t, 0.4, got[2].A, 1e-9)
}

func TestPaletteFillerWraps(t *testing.T) {
	f := NewPaletteFiller()
	palette := FallbackPalette()

	for i := 0; i < 2*len(palette); i++ {
		assert.Equal(t, palette[i%len(palette)], f.Fill(nil, i))
	}
	assert.Equal(t, Blue.WithAlpha(0.6), (&PaletteFiller{}).Fill(nil, 3))
}

func TestComplementaryFillerRotatesHue(t *testing.T) {
	f := NewComplementaryFiller()
	seed := RGB(255, 0, 0)

	got := f.Fill(&seed, 0)

	assert.Equal(t, "#00ffff", got.Hex())
	assert.InDelta(t, DefaultStopOpacity, got.A, 1e-9)
	assert.Equal(t, FallbackPalette()[1], f.Fill(nil, 1))
}

func TestComplementaryFillerLiftsGreys(t *testing.T) {
	f := NewComplementaryFiller()
	seed := RGB(0, 0, 0)

	got := f.Fill(&seed, 0)

	assert.NotEqual(t, seed.Hex(), got.Hex())
}
