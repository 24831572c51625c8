package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/models"
)

func (sw *SettingsWindow) buildAppearanceTab() fyne.CanvasObject {
	sw.themePreview = container.NewGridWithColumns(2)
	sw.themeSelect = widget.NewSelect(models.ThemeNames(), func(name string) {
		sw.updateThemePreview(name)
		sw.markChanged()
	})
	sw.themeSelect.SetSelected(sw.config.Theme().Name)

	sw.wallpaperEntry = widget.NewEntry()
	sw.wallpaperEntry.SetPlaceHolder("Use the desktop wallpaper")
	sw.wallpaperEntry.SetText(sw.config.WallpaperPath)
	sw.wallpaperEntry.OnChanged = func(string) {
		sw.markChanged()
	}

	browseButton := widget.NewButton("Browse...", func() {
		sw.showWallpaperDialog()
	})
	clearButton := widget.NewButton("Clear", func() {
		sw.wallpaperEntry.SetText("")
	})

	wallpaperHelp := widget.NewLabel("The popover background is tinted with colors sampled from this image")
	wallpaperHelp.Wrapping = fyne.TextWrapWord
	wallpaperHelp.Importance = widget.MediumImportance

	refreshButton := widget.NewButton("Refresh Colors", func() {
		if sw.refreshColors != nil {
			sw.refreshColors()
		}
	})

	preview := container.NewGridWrap(fyne.NewSize(240, 120), sw.colors)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Theme:"),
		container.NewVBox(sw.themeSelect, sw.themePreview),

		container.NewVBox(widget.NewLabel("Wallpaper:"), wallpaperHelp),
		container.NewBorder(nil, nil, nil, container.NewHBox(browseButton, clearButton), sw.wallpaperEntry),

		widget.NewLabel("Background:"),
		container.NewVBox(preview, container.NewHBox(refreshButton)),
	)

	content := container.NewVBox(
		widget.NewLabel("Appearance"),
		widget.NewSeparator(),
		form,
	)

	return container.NewPadded(container.NewVScroll(content))
}

// updateThemePreview shows the primary and secondary swatches of the named theme
func (sw *SettingsWindow) updateThemePreview(name string) {
	th := models.ResolveTheme(name)

	primary := canvas.NewRectangle(th.Primary)
	primary.SetMinSize(fyne.NewSize(60, 24))
	primary.CornerRadius = 4
	secondary := canvas.NewRectangle(th.Secondary)
	secondary.SetMinSize(fyne.NewSize(60, 24))
	secondary.CornerRadius = 4

	sw.themePreview.Objects = []fyne.CanvasObject{primary, secondary}
	sw.themePreview.Refresh()
}
