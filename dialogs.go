package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/audio"
	"github.com/borgmon/focus-wave/pkg/models"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func (sw *SettingsWindow) showAddSoundDialog() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		sw.showNameSoundDialog(path)
	}, sw.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(audio.SupportedExtensions()))
	fileDialog.Show()
}

// showNameSoundDialog asks for the display name of a newly picked sound file
func (sw *SettingsWindow) showNameSoundDialog(path string) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("File", widget.NewLabel(filepath.Base(path))),
	}

	dialog.ShowForm("Add Sound", "Add", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		sound, err := sw.validateNewSound(nameEntry.Text, path)
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}
		sw.soundsList.AddItem(sound)
	}, sw.window)
}

// validateNewSound checks a custom sound against the sounds already listed
func (sw *SettingsWindow) validateNewSound(name, path string) (models.Sound, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Sound{}, fmt.Errorf("please enter a name for the sound")
	}

	ext := strings.ToLower(filepath.Ext(path))
	supported := false
	for _, e := range audio.SupportedExtensions() {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return models.Sound{}, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, filepath.Base(path))
	}

	existing := append(models.BuiltinSounds(), sw.soundsList.Items()...)
	for _, s := range existing {
		if strings.EqualFold(s.Name, name) {
			return models.Sound{}, fmt.Errorf("a sound named %q already exists", s.Name)
		}
	}

	sound := models.NewCustomSound(name, path)
	if !sound.Validate() {
		return models.Sound{}, fmt.Errorf("invalid sound %q", name)
	}
	return sound, nil
}

func (sw *SettingsWindow) showWallpaperDialog() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sw.window)
			return
		}
		if reader == nil {
			return
		}
		sw.wallpaperEntry.SetText(reader.URI().Path())
		_ = reader.Close()
	}, sw.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fileDialog.Show()
}
