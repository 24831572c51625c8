package models

import (
	"image/color"
)

// Theme is a named primary/secondary color pair from the fixed palette.
// Only the name is persisted; the colors are always re-derived from it.
type Theme struct {
	Name      string
	Primary   color.NRGBA
	Secondary color.NRGBA
}

// Palette entry names
const (
	ThemeClassicBlue    = "Classic Blue"
	ThemeOceanDepths    = "Ocean Depths"
	ThemeSunsetGlow     = "Sunset Glow"
	ThemeForestCalm     = "Forest Calm"
	ThemeMidnightPurple = "Midnight Purple"
	ThemeRoseQuartz     = "Rose Quartz"
)

var themes = []Theme{
	{Name: ThemeClassicBlue, Primary: rgb(0x00, 0x7a, 0xff), Secondary: rgb(0xaf, 0x52, 0xde)},
	{Name: ThemeOceanDepths, Primary: rgb(0x00, 0x4e, 0x92), Secondary: rgb(0x00, 0xb4, 0xd8)},
	{Name: ThemeSunsetGlow, Primary: rgb(0xff, 0x7e, 0x5f), Secondary: rgb(0xfe, 0xb4, 0x7b)},
	{Name: ThemeForestCalm, Primary: rgb(0x2d, 0x6a, 0x4f), Secondary: rgb(0x95, 0xd5, 0xb2)},
	{Name: ThemeMidnightPurple, Primary: rgb(0x2c, 0x1a, 0x5b), Secondary: rgb(0x8e, 0x5c, 0xf7)},
	{Name: ThemeRoseQuartz, Primary: rgb(0xf7, 0xca, 0xc9), Secondary: rgb(0x92, 0xa8, 0xd1)},
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Themes returns the palette in display order
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// ThemeNames returns the palette names in display order
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// DefaultTheme returns the palette entry used when nothing valid is stored
func DefaultTheme() Theme {
	return themes[0]
}

// ThemeByName looks up a palette entry
func ThemeByName(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ResolveTheme returns the named palette entry, or the default for unknown names
func ResolveTheme(name string) Theme {
	if t, ok := ThemeByName(name); ok {
		return t
	}
	return DefaultTheme()
}
