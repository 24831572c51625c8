package main

import (
	"math"
	"slices"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/platform"
	"github.com/borgmon/focus-wave/pkg/ui/components"
	"github.com/hashicorp/go-hclog"
)

const savedMessage = "Settings saved successfully"

type SettingsWindow struct {
	window fyne.Window
	app    fyne.App
	logger hclog.Logger
	config *models.Config
	onSave func(*models.Config)

	// Actions the settings window triggers on the running app
	refreshColors func()
	colors        *components.GradientBackground
	cancelColors  func()

	// General tab
	launchAtLoginCheck *widget.Check
	autoPlayCheck      *widget.Check
	fadeCheck          *widget.Check
	defaultVolume      *widget.Slider
	defaultVolumeLabel *widget.Label
	hotkeyCheck        *widget.Check

	// Appearance tab
	themeSelect    *widget.Select
	themePreview   *fyne.Container
	wallpaperEntry *widget.Entry

	// Sounds tab
	soundsList *components.ListManager[models.Sound]

	// UI state
	hasUnsavedChanges bool
	saveStatusLabel   *widget.Label
	saveButton        *widget.Button
}

func NewSettingsWindow(app fyne.App, logger hclog.Logger, config *models.Config, onSave func(*models.Config)) *SettingsWindow {
	sw := &SettingsWindow{
		app:    app,
		logger: logger,
		config: config,
		onSave: onSave,
	}

	sw.window = app.NewWindow("Focus Wave - Settings")
	return sw
}

func (sw *SettingsWindow) buildUI() {
	if sw.colors == nil {
		sw.colors = components.NewGradientBackground(gradient.DefaultColors())
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("General", sw.buildGeneralTab()),
		container.NewTabItem("Appearance", sw.buildAppearanceTab()),
		container.NewTabItem("Sounds", sw.buildSoundsTab()),
		container.NewTabItem("About", sw.buildAboutTab()),
	)

	sw.saveStatusLabel = widget.NewLabel("")
	sw.saveStatusLabel.Importance = widget.SuccessImportance

	sw.saveButton = widget.NewButton("Save", sw.save)
	sw.saveButton.Importance = widget.HighImportance
	sw.saveButton.Disable() // Initially disabled until changes are made

	closeButton := widget.NewButton("Done", func() {
		sw.handleClose()
	})

	buttonRow := container.NewBorder(
		nil,
		nil,
		container.NewHBox(sw.saveButton, sw.saveStatusLabel),
		closeButton,
		container.NewHBox(),
	)

	content := container.NewBorder(
		nil,
		container.NewPadded(buttonRow),
		nil,
		nil,
		tabs,
	)

	sw.window.SetContent(content)
	sw.window.Resize(fyne.NewSize(520, 480))
	sw.window.CenterOnScreen()

	sw.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if key.Name == fyne.KeyEscape {
			sw.handleClose()
		}
	})

	sw.window.SetCloseIntercept(func() {
		sw.handleClose()
	})

	// Populating the form fires change callbacks
	sw.hasUnsavedChanges = false
	sw.updateSaveButtonState()
}

// save persists the form. Autostart registration touches the file system so
// it runs off the UI thread.
func (sw *SettingsWindow) save() {
	sw.saveButton.Disable()
	sw.saveStatusLabel.SetText("Saving...")
	sw.saveStatusLabel.Importance = widget.MediumImportance
	sw.saveStatusLabel.Refresh()

	newConfig := sw.getConfigFromUI()
	go func() {
		if err := setupAutostart(newConfig.LaunchAtLogin, sw.logger); err != nil {
			sw.logger.Error("failed to set launch at login", "error", err)
			fyne.Do(func() {
				sw.saveStatusLabel.SetText("Error: Failed to set launch at login")
				sw.saveStatusLabel.Importance = widget.DangerImportance
				sw.saveStatusLabel.Refresh()
				sw.updateSaveButtonState()
			})
			return
		}

		fyne.Do(func() {
			sw.config = newConfig
			if sw.onSave != nil {
				sw.onSave(newConfig)
			}

			sw.hasUnsavedChanges = false
			sw.saveStatusLabel.SetText(savedMessage)
			sw.saveStatusLabel.Importance = widget.SuccessImportance
			sw.saveStatusLabel.Refresh()
			sw.updateSaveButtonState()

			// Clear success message after 3 seconds
			go func() {
				time.Sleep(3 * time.Second)
				fyne.Do(func() {
					if sw.saveStatusLabel.Text == savedMessage {
						sw.saveStatusLabel.SetText("")
					}
				})
			}()
		})
	}()
}

// getConfigFromUI builds a config from the form, keeping the fields the form does not show
func (sw *SettingsWindow) getConfigFromUI() *models.Config {
	cfg := *sw.config
	cfg.LaunchAtLogin = sw.launchAtLoginCheck.Checked
	cfg.AutoPlay = sw.autoPlayCheck.Checked
	cfg.FadeInOut = sw.fadeCheck.Checked
	cfg.DefaultVolume = models.ClampVolume(math.Round(sw.defaultVolume.Value*100) / 100)
	cfg.HotkeyEnabled = sw.hotkeyCheck.Checked
	cfg.ThemeName = sw.themeSelect.Selected
	cfg.WallpaperPath = sw.wallpaperEntry.Text
	cfg.CustomSounds = sw.soundsList.Items()
	return &cfg
}

func (sw *SettingsWindow) Show() {
	sw.window.Show()
}

// markChanged marks the config as having unsaved changes
func (sw *SettingsWindow) markChanged() {
	sw.hasUnsavedChanges = true
	sw.updateSaveButtonState()
}

// updateSaveButtonState enables or disables the save button based on changes
func (sw *SettingsWindow) updateSaveButtonState() {
	if sw.saveButton == nil {
		return
	}
	if sw.hasUnsavedChanges {
		sw.saveButton.Enable()
	} else {
		sw.saveButton.Disable()
	}
}

// handleClose handles window close with unsaved changes check
func (sw *SettingsWindow) handleClose() {
	if sw.hasActualChanges() {
		dialog.ShowConfirm("Unsaved Changes",
			"You have unsaved changes. Are you sure you want to close?",
			func(confirmed bool) {
				if confirmed {
					sw.window.Close()
				}
			}, sw.window)
		return
	}
	sw.window.Close()
}

// hasActualChanges checks if the current UI state differs from the saved config
func (sw *SettingsWindow) hasActualChanges() bool {
	current := sw.getConfigFromUI()
	saved := sw.config

	if current.LaunchAtLogin != saved.LaunchAtLogin ||
		current.AutoPlay != saved.AutoPlay ||
		current.FadeInOut != saved.FadeInOut ||
		current.DefaultVolume != saved.DefaultVolume ||
		current.HotkeyEnabled != saved.HotkeyEnabled ||
		current.ThemeName != saved.ThemeName ||
		current.WallpaperPath != saved.WallpaperPath {
		return true
	}

	return !slices.Equal(current.CustomSounds, saved.CustomSounds)
}

func (fw *FocusWave) showConfigWindow() {
	platform.ActivateApp()

	// If settings window already exists and is showing, just bring it to front
	if fw.configWindow != nil {
		fw.configWindow.window.RequestFocus()
		fw.configWindow.window.Show()
		return
	}

	// The window edits a snapshot that includes the live playback settings
	snapshot := *fw.currentConfig()
	state := fw.player.State()
	snapshot.Volume = state.Volume
	snapshot.CurrentSound = state.Sound

	sw := NewSettingsWindow(fw.app, fw.logger.Named("settings"), &snapshot, fw.applyConfig)
	sw.refreshColors = fw.refreshColors
	sw.colors = components.NewGradientBackground(fw.colors.Get())
	sw.cancelColors = sw.colors.Bind(fw.colors.Value)
	sw.buildUI()

	sw.window.SetOnClosed(func() {
		sw.cancelColors()
		fw.configWindow = nil
	})

	fw.configWindow = sw
	sw.Show()
}
