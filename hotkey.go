package main

import (
	"fyne.io/fyne/v2"
	"golang.design/x/hotkey"
)

// playbackHotkey toggles playback from anywhere with Ctrl+Shift+Space
type playbackHotkey struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

func registerPlaybackHotkey(onPress func()) (*playbackHotkey, error) {
	hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeySpace)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	ph := &playbackHotkey{hk: hk, done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-ph.done:
				return
			case _, ok := <-hk.Keydown():
				if !ok {
					return
				}
				onPress()
			}
		}
	}()
	return ph, nil
}

func (ph *playbackHotkey) unregister() error {
	close(ph.done)
	return ph.hk.Unregister()
}

// applyHotkey registers or removes the global shortcut. Call on the UI thread.
func (fw *FocusWave) applyHotkey(enabled bool) {
	if !enabled {
		if fw.hotkey != nil {
			if err := fw.hotkey.unregister(); err != nil {
				fw.logger.Warn("failed to unregister hotkey", "error", err)
			}
			fw.hotkey = nil
		}
		return
	}
	if fw.hotkey != nil {
		return
	}

	// Registration blocks on the platform event loop, so it runs off the UI thread
	go func() {
		ph, err := registerPlaybackHotkey(fw.togglePlayback)
		if err != nil {
			fw.logger.Warn("failed to register playback hotkey", "error", err)
			return
		}
		fyne.Do(func() {
			// Disabled again, or registered twice, while this one was pending
			if fw.hotkey != nil || !fw.currentConfig().HotkeyEnabled {
				_ = ph.unregister()
				return
			}
			fw.hotkey = ph
			fw.logger.Debug("playback hotkey registered", "keys", "ctrl+shift+space")
		})
	}()
}
