// Package gradient derives decorative gradient stops from a desktop background image.
package gradient

import (
	"image"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

const (
	// DefaultWorkingSize is the edge length of the downscaled working image.
	DefaultWorkingSize = 100

	// DefaultAlphaThreshold is the opacity below which a sample is discarded.
	DefaultAlphaThreshold = 0.1

	// DefaultStopOpacity is forced onto every accepted sample.
	DefaultStopOpacity = 0.7

	// AcceptAllSamples is an AlphaThreshold that keeps fully transparent samples.
	AcceptAllSamples = -1.0
)

// Point is a sample position in normalized working-image space, 0 to 1 on each axis.
type Point struct {
	X, Y float64
}

// SamplePoints are probed in this order; the order decides gradient stop order.
var SamplePoints = [...]Point{
	{0, 0},     // top left
	{1, 0},     // top right
	{0, 1},     // bottom left
	{1, 1},     // bottom right
	{0.5, 0.5}, // center
}

// Options configures an Extractor. Zero values fall back to the defaults.
type Options struct {
	WorkingSize int
	// AlphaThreshold drops samples with a lower opacity. Zero selects
	// DefaultAlphaThreshold; use AcceptAllSamples to keep every sample.
	AlphaThreshold float64
	// StopOpacity must be in (0,1]; other values select DefaultStopOpacity.
	StopOpacity float64
	Filler      Filler
	Decoder     Decoder
	Sampler     Sampler
	Scaler      draw.Scaler
}

// Extractor produces gradient stops from a source image.
// An Extractor holds no mutable state and is safe for concurrent use
// as long as its Filler is.
type Extractor struct {
	workingSize    int
	alphaThreshold float64
	stopOpacity    float64
	filler         Filler
	decoder        Decoder
	sampler        Sampler
	scaler         draw.Scaler
}

// NewExtractor creates an Extractor from opts.
func NewExtractor(opts Options) *Extractor {
	e := &Extractor{
		workingSize:    opts.WorkingSize,
		alphaThreshold: opts.AlphaThreshold,
		stopOpacity:    opts.StopOpacity,
		filler:         opts.Filler,
		decoder:        opts.Decoder,
		sampler:        opts.Sampler,
		scaler:         opts.Scaler,
	}

	if e.workingSize <= 0 {
		e.workingSize = DefaultWorkingSize
	}
	switch {
	case e.alphaThreshold < 0:
		e.alphaThreshold = 0
	case e.alphaThreshold == 0:
		e.alphaThreshold = DefaultAlphaThreshold
	}
	if e.stopOpacity <= 0 || e.stopOpacity > 1 {
		e.stopOpacity = DefaultStopOpacity
	}
	if e.filler == nil {
		e.filler = NewComplementaryFiller()
	}
	if e.decoder == nil {
		e.decoder = ImageDecoder{}
	}
	if e.sampler == nil {
		e.sampler = PixelSampler{}
	}
	if e.scaler == nil {
		e.scaler = draw.CatmullRom
	}

	return e
}

// ExtractFile decodes the image at path and extracts its gradient.
// A missing or undecodable file yields the default gradient.
func (e *Extractor) ExtractFile(path string) Colors {
	if path == "" {
		return DefaultColors()
	}

	file, err := os.Open(path) // #nosec G304 - wallpaper path supplied by the platform or the user
	if err != nil {
		return DefaultColors()
	}
	defer file.Close()

	return e.ExtractReader(file)
}

// ExtractReader decodes r and extracts its gradient.
func (e *Extractor) ExtractReader(r io.Reader) Colors {
	if r == nil {
		return DefaultColors()
	}

	img, err := e.decoder.Decode(r)
	if err != nil {
		return DefaultColors()
	}

	return e.Extract(img)
}

// Extract returns exactly StopCount colors for img. A nil or empty image yields
// the default gradient; too few usable samples are padded by the Filler.
func (e *Extractor) Extract(img image.Image) Colors {
	if img == nil || img.Bounds().Empty() {
		return DefaultColors()
	}

	working := e.downscale(img)
	accepted := e.sample(working)

	var out Colors
	n := copy(out[:], accepted)

	var seed *Color
	if len(accepted) > 0 {
		seed = &accepted[0]
	}
	for i := 0; n < StopCount; i++ {
		out[n] = e.filler.Fill(seed, i)
		n++
	}

	return out
}

// downscale resizes img onto a square working canvas, ignoring aspect ratio.
func (e *Extractor) downscale(img image.Image) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, e.workingSize, e.workingSize))
	e.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// sample probes every SamplePoint and keeps the sufficiently opaque ones, in order.
func (e *Extractor) sample(img image.Image) []Color {
	b := img.Bounds()
	maxX, maxY := b.Dx()-1, b.Dy()-1

	accepted := make([]Color, 0, len(SamplePoints))
	for _, p := range SamplePoints {
		x := int(math.Round(p.X * float64(maxX)))
		y := int(math.Round(p.Y * float64(maxY)))

		c := e.sampler.SampleAt(img, x, y)
		if c.A < e.alphaThreshold {
			continue
		}
		accepted = append(accepted, c.WithAlpha(e.stopOpacity))
	}

	return accepted
}
