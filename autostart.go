package main

import (
	"os"
	"path/filepath"

	"github.com/emersion/go-autostart"
	"github.com/hashicorp/go-hclog"
)

func setupAutostart(enable bool, logger hclog.Logger) error {
	// Get the executable path
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	// Resolve symlinks if any
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return err
	}

	app := &autostart.App{
		Name:        "focus-wave",
		DisplayName: "Focus Wave",
		Exec:        []string{execPath},
	}

	switch {
	case enable && !app.IsEnabled():
		if err := app.Enable(); err != nil {
			return err
		}
		logger.Info("launch at login enabled")
	case !enable && app.IsEnabled():
		if err := app.Disable(); err != nil {
			return err
		}
		logger.Info("launch at login disabled")
	}

	return nil
}
