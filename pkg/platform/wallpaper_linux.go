//go:build linux

package platform

import (
	"context"
	"fmt"
	"os/exec"
)

// DesktopImagePath asks GNOME for the wallpaper file, or returns "" if none is set
func DesktopImagePath(ctx context.Context) (string, error) {
	if _, err := exec.LookPath("gsettings"); err != nil {
		return "", nil
	}

	// Older GNOME has no color-scheme key; that reads as a light session
	scheme, _ := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()

	var lastErr error
	for _, key := range BackgroundKeys(string(scheme)) {
		out, err := exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.background", key).Output()
		if err != nil {
			lastErr = err
			continue
		}
		if path := ParseGSettingsURI(string(out)); path != "" {
			return path, nil
		}
	}
	if lastErr != nil {
		return "", fmt.Errorf("failed to query gsettings: %w", lastErr)
	}
	return "", nil
}
