package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/borgmon/focus-wave/pkg/models"
)

func (fw *FocusWave) setupSystemTray() {
	fw.updateSystemTrayMenu()
}

func (fw *FocusWave) updateSystemTrayMenu() {
	desk, ok := fw.app.(desktop.App)
	if !ok {
		return
	}

	desk.SetSystemTrayMenu(fw.buildTrayMenu())
	desk.SetSystemTrayIcon(theme.MediaMusicIcon())
}

func (fw *FocusWave) buildTrayMenu() *fyne.Menu {
	state := fw.player.State()

	playLabel := "Play"
	if state.Playing {
		playLabel = "Pause"
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		fw.quit()
	})
	quitItem.IsQuit = true

	return fyne.NewMenu("Focus Wave",
		fyne.NewMenuItem("Open Focus Wave", func() {
			fw.showPopover()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(playLabel, func() {
			fw.togglePlayback()
		}),
		fw.buildSoundMenuItem(state.Sound),
		fyne.NewMenuItem("Refresh Colors", func() {
			fw.refreshColors()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			fw.showConfigWindow()
		}),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}

// buildSoundMenuItem lists every sound with a check next to the current one
func (fw *FocusWave) buildSoundMenuItem(current string) *fyne.MenuItem {
	sounds := fw.currentConfig().Sounds()
	items := make([]*fyne.MenuItem, 0, len(sounds))
	for _, sound := range sounds {
		name := sound.Name
		item := fyne.NewMenuItem(name, func() {
			fw.selectSound(name)
		})
		item.Checked = name == current
		items = append(items, item)
	}

	soundItem := fyne.NewMenuItem("Sound", nil)
	soundItem.ChildMenu = fyne.NewMenu("Sound", items...)
	return soundItem
}

// soundNames returns the picker entries in display order
func soundNames(sounds []models.Sound) []string {
	names := make([]string, 0, len(sounds))
	for _, s := range sounds {
		names = append(names, s.Name)
	}
	return names
}
