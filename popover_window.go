package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/audio"
	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/platform"
	"github.com/borgmon/focus-wave/pkg/ui/components"
)

// popoverSize matches the menu bar panel
var popoverSize = fyne.NewSize(280, 320)

// PopoverWindow is the small player panel opened from the menu bar
type PopoverWindow struct {
	window fyne.Window
	fw     *FocusWave

	background   *components.GradientBackground
	headerIcon   *canvas.Image
	accent       *canvas.Rectangle
	soundSelect  *widget.Select
	volumeSlider *widget.Slider
	volumeLabel  *widget.Label
	timeLabel    *widget.Label
	playButton   *widget.Button

	// updating suppresses widget callbacks while state is pushed into the widgets
	updating bool
	cancels  []func()
	ticker   *time.Ticker
	stopTick chan struct{}
}

func NewPopoverWindow(fw *FocusWave) *PopoverWindow {
	pw := &PopoverWindow{
		fw:     fw,
		window: fw.app.NewWindow("Focus Wave"),
	}
	pw.buildUI()
	return pw
}

func (pw *PopoverWindow) buildUI() {
	pw.background = components.NewGradientBackground(pw.fw.colors.Get())

	// Header
	pw.headerIcon = canvas.NewImageFromResource(theme.NewColoredResource(theme.MediaMusicIcon(), theme.ColorNamePrimary))
	pw.headerIcon.SetMinSize(fyne.NewSize(24, 24))
	title := widget.NewLabelWithStyle("Focus Wave", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewHBox(pw.headerIcon, title, layout.NewSpacer())

	// Sound selection
	pw.soundSelect = widget.NewSelect(nil, func(name string) {
		if pw.updating {
			return
		}
		pw.fw.selectSound(name)
	})
	soundSection := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		pw.soundSelect,
	)

	// Volume control
	pw.volumeLabel = widget.NewLabel("")
	pw.volumeSlider = widget.NewSlider(0, 1)
	pw.volumeSlider.Step = 0.01
	pw.volumeSlider.OnChanged = func(v float64) {
		pw.volumeLabel.SetText(models.VolumePercentage(v))
		if pw.updating {
			return
		}
		pw.fw.player.SetVolume(v)
	}
	volumeSection := container.NewVBox(
		container.NewHBox(
			widget.NewLabelWithStyle("Volume", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			pw.volumeLabel,
		),
		pw.volumeSlider,
	)

	// Play/Stop button drawn over a theme colored bar
	pw.accent = canvas.NewRectangle(pw.fw.configStore.Theme.Get().Primary)
	pw.accent.CornerRadius = 8
	pw.playButton = widget.NewButtonWithIcon("Play", theme.MediaPlayIcon(), func() {
		pw.fw.togglePlayback()
	})
	pw.timeLabel = widget.NewLabel("")
	pw.timeLabel.Alignment = fyne.TextAlignCenter
	playSection := container.NewVBox(
		container.NewStack(pw.accent, pw.playButton),
		pw.timeLabel,
	)

	// Quick actions
	muteButton := widget.NewButtonWithIcon("", theme.VolumeMuteIcon(), func() {
		pw.fw.toggleMute()
	})
	muteButton.Importance = widget.LowImportance
	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		pw.fw.showConfigWindow()
	})
	settingsButton.Importance = widget.LowImportance
	quickActions := container.NewHBox(muteButton, layout.NewSpacer(), settingsButton)

	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		soundSection,
		volumeSection,
		playSection,
		quickActions,
	)

	pw.window.SetContent(container.NewStack(pw.background, container.NewPadded(content)))
	pw.window.Resize(popoverSize)
	pw.window.SetFixedSize(true)
	pw.window.CenterOnScreen()

	pw.refreshSounds()
	pw.applyState(pw.fw.player.State())
	pw.applyTheme(pw.fw.configStore.Theme.Get())

	pw.cancels = append(pw.cancels,
		pw.background.Bind(pw.fw.colors.Value),
		pw.fw.player.Changes.Subscribe(func(state audio.State) {
			fyne.Do(func() { pw.applyState(state) })
		}),
		pw.fw.configStore.Theme.Subscribe(func(th models.Theme) {
			fyne.Do(func() { pw.applyTheme(th) })
		}),
	)

	// Closing a menu bar panel only hides it
	pw.window.SetCloseIntercept(func() {
		pw.stopTicker()
		pw.window.Hide()
	})
}

// refreshSounds reloads the sound picker after custom sounds changed
func (pw *PopoverWindow) refreshSounds() {
	pw.updating = true
	defer func() { pw.updating = false }()

	pw.soundSelect.Options = soundNames(pw.fw.currentConfig().Sounds())
	pw.soundSelect.SetSelected(pw.fw.player.Sound().Name)
	pw.soundSelect.Refresh()
}

func (pw *PopoverWindow) applyState(state audio.State) {
	pw.updating = true
	defer func() { pw.updating = false }()

	pw.soundSelect.SetSelected(state.Sound)
	pw.volumeSlider.SetValue(state.Volume)
	pw.volumeLabel.SetText(models.VolumePercentage(state.Volume))

	if state.Playing {
		pw.playButton.SetText("Stop")
		pw.playButton.SetIcon(theme.MediaStopIcon())
		pw.playButton.Importance = widget.DangerImportance
		pw.startTicker()
	} else {
		pw.playButton.SetText("Play")
		pw.playButton.SetIcon(theme.MediaPlayIcon())
		pw.playButton.Importance = widget.HighImportance
		pw.stopTicker()
	}
	pw.playButton.Refresh()
	pw.updateTime()
}

func (pw *PopoverWindow) applyTheme(th models.Theme) {
	pw.accent.FillColor = th.Primary
	pw.accent.StrokeColor = th.Secondary
	pw.accent.StrokeWidth = 1
	pw.accent.Refresh()
}

func (pw *PopoverWindow) updateTime() {
	duration := pw.fw.player.Duration()
	if duration == 0 {
		pw.timeLabel.SetText("")
		return
	}
	pw.timeLabel.SetText(fmt.Sprintf("%s / %s",
		audio.FormatTime(pw.fw.player.Position()),
		audio.FormatTime(duration)))
}

// startTicker updates the position label once a second while playing
func (pw *PopoverWindow) startTicker() {
	if pw.ticker != nil {
		return
	}
	pw.ticker = time.NewTicker(time.Second)
	pw.stopTick = make(chan struct{})

	ticker, stop := pw.ticker, pw.stopTick
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(pw.updateTime)
			}
		}
	}()
}

func (pw *PopoverWindow) stopTicker() {
	if pw.ticker == nil {
		return
	}
	pw.ticker.Stop()
	close(pw.stopTick)
	pw.ticker = nil
}

func (pw *PopoverWindow) Show() {
	pw.applyState(pw.fw.player.State())
	pw.window.Show()
	pw.window.RequestFocus()
}

func (pw *PopoverWindow) close() {
	pw.stopTicker()
	for _, cancel := range pw.cancels {
		cancel()
	}
	pw.window.Close()
}

func (fw *FocusWave) showPopover() {
	platform.ActivateApp()
	if fw.popover == nil {
		fw.popover = NewPopoverWindow(fw)
	}
	fw.popover.Show()
}
