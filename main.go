package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/borgmon/focus-wave/pkg/audio"
	"github.com/borgmon/focus-wave/pkg/background"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/platform"
	"github.com/borgmon/focus-wave/pkg/store"
	"github.com/borgmon/focus-wave/pkg/wallpaper"
	"github.com/hashicorp/go-hclog"
)

const appID = "com.focuswave.app"

type FocusWave struct {
	app         fyne.App
	logger      hclog.Logger
	configStore *store.ConfigStore
	configMu    sync.RWMutex
	config      *models.Config
	colors      *store.GradientStore
	player      *audio.Player
	background  *background.Manager
	watcher     *wallpaper.Watcher
	hotkey      *playbackHotkey

	// wallpaperFlag overrides both the system wallpaper and the saved override
	wallpaperFlag string

	cancel       context.CancelFunc
	unsubscribe  []func()
	popover      *PopoverWindow
	configWindow *SettingsWindow
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runApp starts the menu bar app and blocks until it quits
func runApp(logger hclog.Logger, opts *cliOptions) error {
	fw := newFocusWave(app.NewWithID(appID), logger, opts.wallpaper)
	if err := fw.initialize(); err != nil {
		return err
	}
	fw.run()
	return nil
}

func newFocusWave(a fyne.App, logger hclog.Logger, wallpaperFlag string) *FocusWave {
	return &FocusWave{
		app:           a,
		logger:        logger,
		configStore:   store.NewConfigStore(a.Preferences()),
		colors:        store.NewGradientStore(),
		wallpaperFlag: wallpaperFlag,
	}
}

func (fw *FocusWave) initialize() error {
	fw.config = fw.configStore.Load()

	// Sync autostart state with config on startup
	if err := setupAutostart(fw.config.LaunchAtLogin, fw.logger); err != nil {
		fw.logger.Warn("failed to setup autostart", "error", err)
	}

	fw.configStore.Save(fw.config)

	var out audio.Output
	if o, err := audio.NewOtoOutput(); err != nil {
		fw.logger.Warn("audio output unavailable, playback disabled", "error", err)
	} else {
		out = o
	}

	sound, _ := fw.config.FindSound(fw.config.CurrentSound)
	fw.player = audio.NewPlayer(audio.PlayerOptions{
		Output:  out,
		Library: audio.NewLibrary(audio.DefaultSoundDirs(fw.app.Storage().RootURI().Path())...),
		Logger:  fw.logger.Named("audio"),
		Volume:  fw.config.Volume,
		Sound:   sound,
		Fade:    fw.config.FadeInOut,
	})

	provider := &wallpaper.OverrideProvider{
		Override: fw.wallpaperOverride,
		Fallback: wallpaper.NewSystemProvider(),
	}
	fw.background = background.NewManager(provider, gradient.NewExtractor(gradient.Options{}), fw.colors, fw.logger.Named("background"))

	fw.setupSystemTray()
	fw.subscribe()
	fw.startBackground()
	fw.applyHotkey(fw.config.HotkeyEnabled)

	if fw.config.AutoPlay {
		fw.play(sound)
	}

	return nil
}

func (fw *FocusWave) run() {
	fw.app.Lifecycle().SetOnStarted(func() {
		platform.SetActivationPolicy()
	})
	fw.app.Run()
}

// subscribe keeps the tray menu and saved playback settings in step with the player
func (fw *FocusWave) subscribe() {
	fw.unsubscribe = append(fw.unsubscribe, fw.player.Changes.Subscribe(func(state audio.State) {
		fw.configStore.SaveVolume(state.Volume, state.Sound)
		fyne.Do(fw.updateSystemTrayMenu)
	}))
}

// currentConfig returns the live configuration. Callers must not modify it.
func (fw *FocusWave) currentConfig() *models.Config {
	fw.configMu.RLock()
	defer fw.configMu.RUnlock()
	return fw.config
}

func (fw *FocusWave) wallpaperOverride() string {
	if fw.wallpaperFlag != "" {
		return fw.wallpaperFlag
	}
	return fw.currentConfig().WallpaperPath
}

// startBackground refreshes the gradient now and again whenever the wallpaper file changes
func (fw *FocusWave) startBackground() {
	ctx, cancel := context.WithCancel(context.Background())
	fw.cancel = cancel

	w, err := wallpaper.NewWatcher(fw.logger.Named("wallpaper"))
	if err != nil {
		fw.logger.Warn("wallpaper watcher unavailable, colors refresh on demand only", "error", err)
		fw.background.RefreshAsync()
		return
	}
	fw.watcher = w
	go fw.background.Watch(ctx, w)
}

func (fw *FocusWave) refreshColors() {
	fw.background.RefreshAsync()
}

// play starts sound, logging rather than failing when it cannot be opened
func (fw *FocusWave) play(sound models.Sound) {
	if err := fw.player.Play(sound); err != nil {
		fw.logger.Error("failed to play sound", "sound", sound.Name, "error", err)
	}
}

func (fw *FocusWave) togglePlayback() {
	if err := fw.player.Toggle(); err != nil {
		fw.logger.Error("failed to toggle playback", "error", err)
	}
}

// toggleMute silences playback, or restores the default volume when already silent
func (fw *FocusWave) toggleMute() {
	if fw.player.Volume() > 0 {
		fw.player.SetVolume(0)
		return
	}
	fw.player.SetVolume(fw.currentConfig().DefaultVolume)
}

func (fw *FocusWave) selectSound(name string) {
	sound, ok := fw.currentConfig().FindSound(name)
	if !ok {
		fw.logger.Warn("unknown sound selected", "sound", name)
		return
	}
	if err := fw.player.SetSound(sound); err != nil {
		fw.logger.Error("failed to switch sound", "sound", name, "error", err)
	}
}

// applyConfig adopts settings saved from the settings window. Call on the UI thread.
func (fw *FocusWave) applyConfig(newConfig *models.Config) {
	// Playback settings are owned by the player, not the settings form
	state := fw.player.State()
	newConfig.Volume = state.Volume
	newConfig.CurrentSound = state.Sound

	// The current sound may have been a custom sound that was removed
	removed := false
	if _, ok := newConfig.FindSound(state.Sound); !ok {
		newConfig.CurrentSound = models.DefaultSoundName
		removed = true
	}

	fw.configMu.Lock()
	previous := fw.config
	fw.config = newConfig
	fw.configMu.Unlock()
	fw.configStore.Save(newConfig)

	fw.player.SetFade(newConfig.FadeInOut)
	if newConfig.HotkeyEnabled != previous.HotkeyEnabled {
		fw.applyHotkey(newConfig.HotkeyEnabled)
	}
	if newConfig.WallpaperPath != previous.WallpaperPath {
		fw.refreshColors()
	}

	if removed {
		fw.selectSound(models.DefaultSoundName)
	}

	fw.updateSystemTrayMenu()
	if fw.popover != nil {
		fw.popover.refreshSounds()
	}
}

func (fw *FocusWave) quit() {
	if fw.cancel != nil {
		fw.cancel()
	}
	if fw.watcher != nil {
		if err := fw.watcher.Close(); err != nil {
			fw.logger.Warn("failed to close wallpaper watcher", "error", err)
		}
	}
	for _, cancel := range fw.unsubscribe {
		cancel()
	}
	fw.applyHotkey(false)
	if fw.popover != nil {
		fw.popover.close()
	}
	fw.player.Close()
	fw.app.Quit()
}
