package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// NoiseLength is the length of a generated noise buffer; playback loops it
const NoiseLength = 2 * time.Second

// noiseAmplitude keeps generated noise comfortably below full scale
const noiseAmplitude = 0.25

// NoiseColor selects the spectrum of generated noise
type NoiseColor int

const (
	WhiteNoise NoiseColor = iota
	BrownNoise
)

// noiseGenerator streams endless noise from a seeded source
type noiseGenerator struct {
	color NoiseColor
	rng   *rand.Rand
	last  [2]float64
}

func newNoiseGenerator(color NoiseColor, seed uint64) *noiseGenerator {
	return &noiseGenerator{
		color: color,
		rng:   rand.New(rand.NewPCG(seed, seed+1)),
	}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		for ch := 0; ch < 2; ch++ {
			white := g.rng.Float64()*2 - 1
			switch g.color {
			case BrownNoise:
				// Leaky integrator keeps the random walk bounded
				g.last[ch] = (g.last[ch] + 0.02*white) / 1.02
				samples[i][ch] = clampSample(g.last[ch] * 3.5)
			default:
				samples[i][ch] = white * noiseAmplitude
			}
		}
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error {
	return nil
}

// NewNoiseBuffer renders a fixed-length noise buffer in format. The same seed
// always produces the same samples.
func NewNoiseBuffer(color NoiseColor, format beep.Format, length time.Duration, seed uint64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(format.SampleRate.N(length), newNoiseGenerator(color, seed)))
	return buf
}

func clampSample(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
