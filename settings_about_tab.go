package main

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

func (sw *SettingsWindow) buildAboutTab() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Focus Wave", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	tagline := widget.NewLabel("Ambient sounds for deep work, tinted to match your desktop")
	tagline.Wrapping = fyne.TextWrapWord

	versionLabel := widget.NewLabel(version)
	versionLabel.Importance = widget.MediumImportance

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Version"),
		versionLabel,
		widget.NewLabel("Platform"),
		widget.NewLabel(runtime.GOOS+"/"+runtime.GOARCH),
	)

	return container.NewPadded(container.NewVBox(title, tagline, widget.NewSeparator(), form))
}
