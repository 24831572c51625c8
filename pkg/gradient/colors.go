package gradient

// StopCount is the number of stops in every gradient handed to a renderer.
const StopCount = 3

// Colors is an ordered set of gradient stops, first to last.
type Colors [StopCount]Color

// Named system colors the fallbacks are built from.
var (
	Blue   = RGB(0, 122, 255)
	Purple = RGB(175, 82, 222)
	Pink   = RGB(255, 45, 85)
	Orange = RGB(255, 149, 0)
	Green  = RGB(52, 199, 89)
)

// DefaultColors returns the gradient used when nothing can be extracted.
func DefaultColors() Colors {
	return Colors{
		Blue.WithAlpha(0.8),
		Purple.WithAlpha(0.6),
		Pink.WithAlpha(0.4),
	}
}

// FallbackPalette returns the fixed filler set, in order.
func FallbackPalette() []Color {
	return []Color{
		Blue.WithAlpha(0.6),
		Purple.WithAlpha(0.5),
		Pink.WithAlpha(0.4),
		Orange.WithAlpha(0.6),
		Green.WithAlpha(0.5),
	}
}

// Hex returns the #rrggbb form of each stop.
func (cs Colors) Hex() []string {
	out := make([]string, 0, StopCount)
	for _, c := range cs {
		out = append(out, c.Hex())
	}
	return out
}
