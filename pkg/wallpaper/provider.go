// Package wallpaper locates the current desktop background and reports when it changes.
package wallpaper

import (
	"context"
	"errors"
	"os"

	"github.com/borgmon/focus-wave/pkg/platform"
)

// ErrNoWallpaper means the platform reported no usable wallpaper file
var ErrNoWallpaper = errors.New("no desktop wallpaper")

// Provider reports the path of the current wallpaper image
type Provider interface {
	Path(ctx context.Context) (string, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context) (string, error)

// Path implements Provider
func (f ProviderFunc) Path(ctx context.Context) (string, error) {
	return f(ctx)
}

// SystemProvider asks the operating system for the main screen's wallpaper
type SystemProvider struct {
	lookup func(ctx context.Context) (string, error)
}

// NewSystemProvider creates a SystemProvider for the current platform
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{lookup: platform.DesktopImagePath}
}

// Path implements Provider
func (p *SystemProvider) Path(ctx context.Context) (string, error) {
	path, err := p.lookup(ctx)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrNoWallpaper
	}
	return path, nil
}

// OverrideProvider prefers a user-chosen image and falls back to another provider
type OverrideProvider struct {
	Override func() string
	Fallback Provider
}

// Path implements Provider. An override pointing at a missing file is still
// returned so the extractor falls back to the default gradient, matching what
// the user asked for.
func (p *OverrideProvider) Path(ctx context.Context) (string, error) {
	if p.Override != nil {
		if path := p.Override(); path != "" {
			return path, nil
		}
	}
	if p.Fallback == nil {
		return "", ErrNoWallpaper
	}
	return p.Fallback.Path(ctx)
}

// Static returns a Provider that always reports path, or ErrNoWallpaper when empty
func Static(path string) Provider {
	return ProviderFunc(func(context.Context) (string, error) {
		if path == "" {
			return "", ErrNoWallpaper
		}
		return path, nil
	})
}

// Exists reports whether path names a regular file
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
