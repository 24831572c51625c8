package gradient

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Decoder turns encoded image bytes into a bitmap.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// Sampler reads a single pixel of a bitmap.
type Sampler interface {
	SampleAt(img image.Image, x, y int) Color
}

// ImageDecoder decodes every format registered with the image package.
// Supported formats: JPEG, PNG, GIF, BMP, TIFF, WebP.
type ImageDecoder struct{}

// Decode implements Decoder.
func (ImageDecoder) Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}

// PixelSampler samples pixels in the bitmap's own coordinate space, relative to its bounds.
// Coordinates outside the bitmap yield a fully transparent color.
type PixelSampler struct{}

// SampleAt implements Sampler.
func (PixelSampler) SampleAt(img image.Image, x, y int) Color {
	b := img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return Color{}
	}
	return FromColor(img.At(p.X, p.Y))
}
