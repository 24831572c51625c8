package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/ui/components"
)

func (sw *SettingsWindow) buildSoundsTab() fyne.CanvasObject {
	builtins := make([]string, 0, 3)
	for _, s := range models.BuiltinSounds() {
		builtins = append(builtins, s.Name)
	}
	builtinLabel := widget.NewLabel(strings.Join(builtins, ", "))
	builtinLabel.Wrapping = fyne.TextWrapWord

	var listContainer *fyne.Container
	sw.soundsList, listContainer = components.NewListManager(sw.config.CustomSounds, components.ListManagerConfig[models.Sound]{
		Render: func(s models.Sound) string {
			return fmt.Sprintf("%s  (%s)", s.Name, s.Path)
		},
		OnAdd: func() {
			sw.showAddSoundDialog()
		},
		OnChange: func([]models.Sound) {
			sw.markChanged()
		},
	})

	help := widget.NewLabel("Add MP3 or WAV files to loop them like the built-in sounds")
	help.Wrapping = fyne.TextWrapWord
	help.Importance = widget.MediumImportance

	content := container.NewVBox(
		widget.NewLabel("Built-in Sounds"),
		widget.NewSeparator(),
		builtinLabel,
		widget.NewLabel("Custom Sounds"),
		widget.NewSeparator(),
		help,
		listContainer,
	)

	return container.NewPadded(container.NewVScroll(content))
}
