package models

import (
	"fmt"
	"math"
)

// Default preference values
const (
	DefaultVolume    = 0.5
	DefaultSoundName = "Rain"
)

// Config holds application configuration
type Config struct {
	Volume        float64 `json:"volume"`          // 0-1
	CurrentSound  string  `json:"current_sound"`   // sound name
	ThemeName     string  `json:"theme_name"`      // palette entry name
	LaunchAtLogin bool    `json:"launch_at_login"` // register with the system autostart
	AutoPlay      bool    `json:"auto_play"`       // start playback on launch
	FadeInOut     bool    `json:"fade_in_out"`     // ramp volume on play and pause
	DefaultVolume float64 `json:"default_volume"`  // volume restored when unmuting
	HotkeyEnabled bool    `json:"hotkey_enabled"`  // global play/pause shortcut
	WallpaperPath string  `json:"wallpaper_path"`  // overrides the system wallpaper when set
	CustomSounds  []Sound `json:"custom_sounds"`   // user added sounds
}

// NewConfig returns a Config populated with defaults
func NewConfig() *Config {
	return &Config{
		Volume:        DefaultVolume,
		CurrentSound:  DefaultSoundName,
		ThemeName:     DefaultTheme().Name,
		FadeInOut:     true,
		DefaultVolume: DefaultVolume,
		HotkeyEnabled: true,
		CustomSounds:  []Sound{},
	}
}

// ClampVolume limits v to [0,1], mapping NaN to 0
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// VolumePercentage formats a volume as a whole percentage, e.g. "50%"
func VolumePercentage(v float64) string {
	return fmt.Sprintf("%d%%", int(ClampVolume(v)*100+0.5))
}

// Sounds returns the built-in sounds followed by the custom ones
func (c *Config) Sounds() []Sound {
	sounds := BuiltinSounds()
	return append(sounds, c.CustomSounds...)
}

// FindSound looks up a sound by name among built-in and custom sounds
func (c *Config) FindSound(name string) (Sound, bool) {
	for _, s := range c.Sounds() {
		if s.Name == name {
			return s, true
		}
	}
	return Sound{}, false
}

// Theme resolves the configured theme name, falling back to the default theme
func (c *Config) Theme() Theme {
	return ResolveTheme(c.ThemeName)
}
