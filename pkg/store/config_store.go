package store

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"github.com/borgmon/focus-wave/pkg/models"
)

// Preference keys
const (
	KeyVolume        = "FocusWave_Volume"
	KeyCurrentSound  = "FocusWave_CurrentSound"
	KeyTheme         = "FocusWave_Theme"
	KeyLaunchAtLogin = "FocusWave_LaunchAtLogin"
	KeyAutoPlay      = "FocusWave_AutoPlay"
	KeyFadeInOut     = "FocusWave_FadeInOut"
	KeyDefaultVolume = "FocusWave_DefaultVolume"
	KeyHotkey        = "FocusWave_Hotkey"
	KeyWallpaperPath = "FocusWave_WallpaperPath"
	KeyCustomSounds  = "FocusWave_CustomSounds"
)

// ConfigStore handles configuration persistence using Fyne preferences
type ConfigStore struct {
	prefs fyne.Preferences

	// Theme publishes the active theme whenever it is saved
	Theme *Value[models.Theme]
}

// NewConfigStore creates a new ConfigStore instance
func NewConfigStore(prefs fyne.Preferences) *ConfigStore {
	cs := &ConfigStore{prefs: prefs}
	cs.Theme = NewValue(cs.LoadTheme())
	return cs
}

// Load loads configuration from preferences
func (cs *ConfigStore) Load() *models.Config {
	defaults := models.NewConfig()

	config := &models.Config{
		Volume:        models.ClampVolume(cs.prefs.FloatWithFallback(KeyVolume, defaults.Volume)),
		CurrentSound:  cs.prefs.StringWithFallback(KeyCurrentSound, defaults.CurrentSound),
		ThemeName:     cs.LoadTheme().Name,
		LaunchAtLogin: cs.prefs.BoolWithFallback(KeyLaunchAtLogin, defaults.LaunchAtLogin),
		AutoPlay:      cs.prefs.BoolWithFallback(KeyAutoPlay, defaults.AutoPlay),
		FadeInOut:     cs.prefs.BoolWithFallback(KeyFadeInOut, defaults.FadeInOut),
		DefaultVolume: models.ClampVolume(cs.prefs.FloatWithFallback(KeyDefaultVolume, defaults.DefaultVolume)),
		HotkeyEnabled: cs.prefs.BoolWithFallback(KeyHotkey, defaults.HotkeyEnabled),
		WallpaperPath: cs.prefs.String(KeyWallpaperPath),
	}

	// Load custom sounds from JSON string
	config.CustomSounds = []models.Sound{}
	if soundsJSON := cs.prefs.String(KeyCustomSounds); soundsJSON != "" {
		var sounds []models.Sound
		if err := json.Unmarshal([]byte(soundsJSON), &sounds); err == nil {
			for _, s := range sounds {
				if s.Validate() {
					config.CustomSounds = append(config.CustomSounds, s)
				}
			}
		}
	}

	// A sound that no longer exists falls back to the default
	if _, ok := config.FindSound(config.CurrentSound); !ok {
		config.CurrentSound = defaults.CurrentSound
	}

	return config
}

// Save saves configuration to preferences
func (cs *ConfigStore) Save(config *models.Config) {
	cs.prefs.SetFloat(KeyVolume, models.ClampVolume(config.Volume))
	cs.prefs.SetString(KeyCurrentSound, config.CurrentSound)
	cs.prefs.SetBool(KeyLaunchAtLogin, config.LaunchAtLogin)
	cs.prefs.SetBool(KeyAutoPlay, config.AutoPlay)
	cs.prefs.SetBool(KeyFadeInOut, config.FadeInOut)
	cs.prefs.SetFloat(KeyDefaultVolume, models.ClampVolume(config.DefaultVolume))
	cs.prefs.SetBool(KeyHotkey, config.HotkeyEnabled)
	cs.prefs.SetString(KeyWallpaperPath, config.WallpaperPath)

	// Save custom sounds as JSON string
	if soundsJSON, err := json.Marshal(config.CustomSounds); err == nil {
		cs.prefs.SetString(KeyCustomSounds, string(soundsJSON))
	}

	cs.SaveTheme(config.ThemeName)
}

// SaveVolume persists only the playback preferences, which change often
func (cs *ConfigStore) SaveVolume(volume float64, sound string) {
	cs.prefs.SetFloat(KeyVolume, models.ClampVolume(volume))
	cs.prefs.SetString(KeyCurrentSound, sound)
}

// LoadTheme resolves the stored theme name; unknown or missing names give the default theme
func (cs *ConfigStore) LoadTheme() models.Theme {
	return models.ResolveTheme(cs.prefs.String(KeyTheme))
}

// SaveTheme stores a theme by name and publishes the resolved theme when it changed
func (cs *ConfigStore) SaveTheme(name string) models.Theme {
	cs.prefs.SetString(KeyTheme, name)

	theme := models.ResolveTheme(name)
	if cs.Theme != nil && cs.Theme.Get().Name != theme.Name {
		cs.Theme.Set(theme)
	}
	return theme
}
