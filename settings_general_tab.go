package main

import (
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/models"
)

func (sw *SettingsWindow) buildGeneralTab() fyne.CanvasObject {
	sw.launchAtLoginCheck = widget.NewCheck("Launch Focus Wave at login", func(bool) {
		sw.markChanged()
	})
	sw.launchAtLoginCheck.SetChecked(sw.config.LaunchAtLogin)

	sw.autoPlayCheck = widget.NewCheck("Auto-start playback on launch", func(bool) {
		sw.markChanged()
	})
	sw.autoPlayCheck.SetChecked(sw.config.AutoPlay)

	sw.fadeCheck = widget.NewCheck("Fade in/out", func(bool) {
		sw.markChanged()
	})
	sw.fadeCheck.SetChecked(sw.config.FadeInOut)

	sw.defaultVolumeLabel = widget.NewLabel(models.VolumePercentage(sw.config.DefaultVolume))
	sw.defaultVolume = widget.NewSlider(0, 1)
	sw.defaultVolume.Step = 0.01
	sw.defaultVolume.SetValue(sw.config.DefaultVolume)
	sw.defaultVolume.OnChanged = func(v float64) {
		sw.defaultVolumeLabel.SetText(models.VolumePercentage(v))
		sw.markChanged()
	}

	sw.hotkeyCheck = widget.NewCheck("Ctrl+Shift+Space toggles playback", func(bool) {
		sw.markChanged()
	})
	sw.hotkeyCheck.SetChecked(sw.config.HotkeyEnabled)

	// Storage root URI display (read-only)
	storageURIEntry := widget.NewEntry()
	storageURIEntry.SetText(sw.app.Storage().RootURI().String())
	storageURIEntry.Disable()

	openStorageButton := widget.NewButton("Open in File Manager", func() {
		sw.openInFileManager(sw.app.Storage().RootURI().Path())
	})

	storageHelp := widget.NewLabel("Settings and custom sounds are stored here")
	storageHelp.Wrapping = fyne.TextWrapWord
	storageHelp.Importance = widget.MediumImportance

	storageContainer := container.NewBorder(
		nil,
		container.NewPadded(openStorageButton),
		nil,
		nil,
		storageURIEntry,
	)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Startup:"),
		container.NewVBox(sw.launchAtLoginCheck, sw.autoPlayCheck),

		widget.NewLabel("Playback:"),
		sw.fadeCheck,

		widget.NewLabel("Default Volume:"),
		container.NewBorder(nil, nil, nil, sw.defaultVolumeLabel, sw.defaultVolume),

		widget.NewLabel("Shortcut:"),
		sw.hotkeyCheck,

		container.NewVBox(widget.NewLabel("Storage Location:"), storageHelp),
		storageContainer,
	)

	content := container.NewVBox(
		widget.NewLabel("General Settings"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

func (sw *SettingsWindow) openInFileManager(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		sw.logger.Warn("unsupported OS for file manager", "os", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		sw.logger.Error("error opening file manager", "error", err)
	}
}
