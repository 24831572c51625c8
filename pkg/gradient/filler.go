package gradient

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Filler produces padding stops when too few samples were accepted.
// seed is the first accepted sample, or nil when nothing was accepted.
// index counts the padding stops produced so far for this extraction.
type Filler interface {
	Fill(seed *Color, index int) Color
}

// FillerFunc adapts a function to the Filler interface.
type FillerFunc func(seed *Color, index int) Color

// Fill implements Filler.
func (f FillerFunc) Fill(seed *Color, index int) Color {
	return f(seed, index)
}

// PaletteFiller walks a fixed palette in order, wrapping around.
type PaletteFiller struct {
	Palette []Color
}

// NewPaletteFiller returns a filler over the fixed fallback set.
func NewPaletteFiller() *PaletteFiller {
	return &PaletteFiller{Palette: FallbackPalette()}
}

// Fill implements Filler. The seed is ignored.
func (f *PaletteFiller) Fill(_ *Color, index int) Color {
	if len(f.Palette) == 0 {
		return Blue.WithAlpha(0.6)
	}
	return f.Palette[index%len(f.Palette)]
}

// complementOffsets are hue rotations, in degrees, for successive padding stops.
var complementOffsets = []float64{180, 150, 210, 120, 240}

// ComplementaryFiller derives padding stops from the first accepted sample by
// rotating its hue. With no sample it defers to Fallback.
type ComplementaryFiller struct {
	Fallback Filler
	Alpha    float64
}

// NewComplementaryFiller returns the default filler used by the extractor.
func NewComplementaryFiller() *ComplementaryFiller {
	return &ComplementaryFiller{
		Fallback: NewPaletteFiller(),
		Alpha:    DefaultStopOpacity,
	}
}

// Fill implements Filler.
func (f *ComplementaryFiller) Fill(seed *Color, index int) Color {
	if seed == nil {
		if f.Fallback == nil {
			return NewPaletteFiller().Fill(nil, index)
		}
		return f.Fallback.Fill(nil, index)
	}

	h, s, v := seed.colorful().Hsv()
	// Greys have no hue to rotate; lift the saturation so the stops still differ.
	if s < 0.15 {
		s = 0.45
	}
	if v < 0.2 {
		v = 0.35
	}

	offset := complementOffsets[index%len(complementOffsets)]
	h = math.Mod(h+offset, 360)

	return fromColorful(colorful.Hsv(h, s, v), f.Alpha)
}

// RandomFiller picks a random entry of the palette for every padding stop.
// Tests inject a seeded source to make the choice reproducible.
type RandomFiller struct {
	Palette []Color

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFiller returns a filler drawing from the fixed fallback set with rng.
func NewRandomFiller(rng *rand.Rand) *RandomFiller {
	return &RandomFiller{Palette: FallbackPalette(), rng: rng}
}

// NewSeededFiller returns a RandomFiller with a PCG source built from seed.
func NewSeededFiller(seed uint64) *RandomFiller {
	return NewRandomFiller(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Fill implements Filler.
func (f *RandomFiller) Fill(_ *Color, _ int) Color {
	if len(f.Palette) == 0 {
		return Blue.WithAlpha(0.6)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rng == nil {
		return f.Palette[rand.IntN(len(f.Palette))]
	}
	return f.Palette[f.rng.IntN(len(f.Palette))]
}
