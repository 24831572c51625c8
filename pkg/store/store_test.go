package store

import (
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	app := test.NewTempApp(t)
	return NewConfigStore(app.Preferences())
}

func TestThemeRoundTrip(t *testing.T) {
	cs := newTestStore(t)

	cs.SaveTheme(models.ThemeOceanDepths)
	got := NewConfigStore(cs.prefs).LoadTheme()

	want, ok := models.ThemeByName(models.ThemeOceanDepths)
	require.True(t, ok)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Primary, got.Primary)
	assert.Equal(t, want.Secondary, got.Secondary)
}

func TestThemeUnknownNameFallsBackToDefault(t *testing.T) {
	cs := newTestStore(t)

	cs.SaveTheme("Definitely Not A Theme")

	assert.Equal(t, models.DefaultTheme(), cs.LoadTheme())
	assert.Equal(t, models.DefaultTheme().Name, cs.Load().ThemeName)
}

func TestThemeMissingIsDefault(t *testing.T) {
	cs := newTestStore(t)
	assert.Equal(t, models.DefaultTheme(), cs.LoadTheme())
}

func TestSaveThemePublishesChanges(t *testing.T) {
	cs := newTestStore(t)

	var got []string
	cancel := cs.Theme.Subscribe(func(th models.Theme) {
		got = append(got, th.Name)
	})
	defer cancel()

	cs.SaveTheme(models.ThemeSunsetGlow)
	cs.SaveTheme(models.ThemeSunsetGlow)
	cs.SaveTheme("bogus")

	assert.Equal(t, []string{models.ThemeSunsetGlow, models.ThemeClassicBlue}, got)
}

func TestConfigLoadDefaults(t *testing.T) {
	cfg := newTestStore(t).Load()

	assert.Equal(t, models.DefaultVolume, cfg.Volume)
	assert.Equal(t, models.SoundRain, cfg.CurrentSound)
	assert.True(t, cfg.FadeInOut)
	assert.True(t, cfg.HotkeyEnabled)
	assert.Empty(t, cfg.CustomSounds)
	assert.Empty(t, cfg.WallpaperPath)
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	cs := newTestStore(t)

	custom := models.NewCustomSound("Cafe", "/sounds/cafe.mp3")
	in := &models.Config{
		Volume:        0.8,
		CurrentSound:  "Cafe",
		ThemeName:     models.ThemeForestCalm,
		LaunchAtLogin: true,
		AutoPlay:      true,
		FadeInOut:     false,
		DefaultVolume: 0.3,
		HotkeyEnabled: false,
		WallpaperPath: "/pictures/bg.png",
		CustomSounds:  []models.Sound{custom},
	}
	cs.Save(in)

	assert.Equal(t, in, cs.Load())
}

func TestConfigLoadSanitizes(t *testing.T) {
	cs := newTestStore(t)
	cs.prefs.SetFloat(KeyVolume, 7)
	cs.prefs.SetString(KeyCurrentSound, "Removed Sound")
	cs.prefs.SetString(KeyCustomSounds, `[{"id":"x","name":"","kind":"file","path":"a.mp3"},{"id":"y","name":"Ok","kind":"white-noise"}]`)

	cfg := cs.Load()

	assert.Equal(t, 1.0, cfg.Volume)
	assert.Equal(t, models.SoundRain, cfg.CurrentSound)
	require.Len(t, cfg.CustomSounds, 1)
	assert.Equal(t, "Ok", cfg.CustomSounds[0].Name)
}

func TestConfigLoadCorruptCustomSounds(t *testing.T) {
	cs := newTestStore(t)
	cs.prefs.SetString(KeyCustomSounds, "{not json")

	assert.Empty(t, cs.Load().CustomSounds)
}

func TestValueSubscribeAndCancel(t *testing.T) {
	v := NewValue(1)

	var got []int
	cancel := v.Subscribe(func(n int) { got = append(got, n) })

	v.Set(2)
	cancel()
	cancel()
	v.Set(3)

	assert.Equal(t, []int{2}, got)
	assert.Equal(t, 3, v.Get())
}

func TestGradientStoreUpdatesAreWhole(t *testing.T) {
	gs := NewGradientStore()
	assert.Equal(t, gradient.DefaultColors(), gs.Get())

	a := gradient.Colors{gradient.Blue, gradient.Blue, gradient.Blue}
	b := gradient.Colors{gradient.Green, gradient.Green, gradient.Green}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); gs.Set(a) }()
		go func() {
			defer wg.Done()
			got := gs.Get()
			assert.True(t, got == a || got == b || got == gradient.DefaultColors())
		}()
	}
	gs.Set(b)
	wg.Wait()
}
