//go:build !darwin && !linux

package platform

import "context"

// DesktopImagePath is not supported on this platform and always reports no wallpaper
func DesktopImagePath(_ context.Context) (string, error) {
	return "", nil
}
