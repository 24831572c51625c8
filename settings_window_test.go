package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/focus-wave/pkg/audio"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsWindow(t *testing.T, cfg *models.Config) *SettingsWindow {
	t.Helper()
	sw := NewSettingsWindow(test.NewTempApp(t), hclog.NewNullLogger(), cfg, nil)
	sw.buildUI()
	t.Cleanup(sw.window.Close)
	return sw
}

func TestSettingsFormStartsUnchanged(t *testing.T) {
	cfg := models.NewConfig()
	cfg.ThemeName = models.ThemeForestCalm
	cfg.AutoPlay = true
	cfg.CustomSounds = []models.Sound{models.NewCustomSound("Cafe", "/sounds/cafe.mp3")}

	sw := newTestSettingsWindow(t, cfg)

	assert.False(t, sw.hasActualChanges())
	assert.True(t, sw.saveButton.Disabled())
	assert.Equal(t, cfg, sw.getConfigFromUI())
}

func TestSettingsFormTracksChanges(t *testing.T) {
	sw := newTestSettingsWindow(t, models.NewConfig())

	sw.themeSelect.SetSelected(models.ThemeSunsetGlow)
	sw.wallpaperEntry.SetText("/pictures/bg.png")
	sw.fadeCheck.SetChecked(false)

	assert.True(t, sw.hasActualChanges())
	assert.False(t, sw.saveButton.Disabled())

	got := sw.getConfigFromUI()
	assert.Equal(t, models.ThemeSunsetGlow, got.ThemeName)
	assert.Equal(t, "/pictures/bg.png", got.WallpaperPath)
	assert.False(t, got.FadeInOut)
	assert.Equal(t, models.DefaultVolume, got.Volume, "fields outside the form are kept")
}

func TestSettingsUnknownThemeShowsDefault(t *testing.T) {
	cfg := models.NewConfig()
	cfg.ThemeName = "Neon Nights"

	sw := newTestSettingsWindow(t, cfg)

	assert.Equal(t, models.DefaultTheme().Name, sw.themeSelect.Selected)
	assert.Len(t, sw.themePreview.Objects, 2)
}

func TestValidateNewSound(t *testing.T) {
	cfg := models.NewConfig()
	cfg.CustomSounds = []models.Sound{models.NewCustomSound("Cafe", "/sounds/cafe.mp3")}
	sw := newTestSettingsWindow(t, cfg)

	tests := []struct {
		name    string
		sound   string
		path    string
		wantErr string
	}{
		{name: "valid", sound: " Forest ", path: "/sounds/forest.WAV"},
		{name: "empty name", sound: "  ", path: "/sounds/forest.wav", wantErr: "enter a name"},
		{name: "unsupported", sound: "Forest", path: "/sounds/forest.ogg", wantErr: audio.ErrUnsupportedFormat.Error()},
		{name: "duplicate custom", sound: "cafe", path: "/sounds/other.mp3", wantErr: "already exists"},
		{name: "duplicate builtin", sound: "Rain", path: "/sounds/rain2.mp3", wantErr: "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sound, err := sw.validateNewSound(tt.sound, tt.path)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Forest", sound.Name)
			assert.Equal(t, models.SoundKindFile, sound.Kind)
			assert.NotEmpty(t, sound.ID)
		})
	}
}

func TestSettingsAddSoundMarksChanged(t *testing.T) {
	sw := newTestSettingsWindow(t, models.NewConfig())

	sound, err := sw.validateNewSound("Forest", "/sounds/forest.mp3")
	require.NoError(t, err)
	sw.soundsList.AddItem(sound)

	assert.True(t, sw.hasActualChanges())
	assert.Equal(t, []models.Sound{sound}, sw.getConfigFromUI().CustomSounds)
}
