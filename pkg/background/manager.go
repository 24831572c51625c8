// Package background keeps the published gradient in sync with the desktop wallpaper.
package background

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/store"
	"github.com/borgmon/focus-wave/pkg/wallpaper"
	"github.com/hashicorp/go-hclog"
)

// Extractor turns an image file into gradient stops
type Extractor interface {
	ExtractFile(path string) gradient.Colors
}

// Manager runs the wallpaper -> extractor -> store pipeline
type Manager struct {
	provider  wallpaper.Provider
	extractor Extractor
	colors    *store.GradientStore
	logger    hclog.Logger

	// watcher follows every resolved wallpaper path while Watch runs
	watcher atomic.Pointer[wallpaper.Watcher]
}

// NewManager creates a Manager. A nil extractor uses the default settings.
func NewManager(provider wallpaper.Provider, extractor Extractor, colors *store.GradientStore, logger hclog.Logger) *Manager {
	if extractor == nil {
		extractor = gradient.NewExtractor(gradient.Options{})
	}
	if colors == nil {
		colors = store.NewGradientStore()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Manager{
		provider:  provider,
		extractor: extractor,
		colors:    colors,
		logger:    logger,
	}
}

// Colors returns the store the manager publishes to
func (m *Manager) Colors() *store.GradientStore {
	return m.colors
}

// Refresh extracts colors from the current wallpaper and publishes them.
// Missing or unreadable wallpapers publish the default gradient.
func (m *Manager) Refresh(ctx context.Context) gradient.Colors {
	path := ""
	if m.provider != nil {
		p, err := m.provider.Path(ctx)
		switch {
		case errors.Is(err, wallpaper.ErrNoWallpaper):
			m.logger.Debug("no wallpaper available, using default gradient")
		case err != nil:
			m.logger.Debug("failed to resolve wallpaper", "error", err)
		default:
			path = p
		}
	}

	if w := m.watcher.Load(); w != nil && path != "" {
		if err := w.SetTarget(path); err != nil {
			m.logger.Warn("failed to watch wallpaper", "path", path, "error", err)
		}
	}

	// A cancelled refresh must not overwrite a newer one
	if ctx.Err() != nil {
		return m.colors.Get()
	}

	if path != "" && !wallpaper.Exists(path) {
		m.logger.Debug("wallpaper file is missing", "path", path)
	}
	colors := m.extractor.ExtractFile(path)
	m.colors.Set(colors)
	m.logger.Info("gradient refreshed", "path", path, "colors", colors.Hex())
	return colors
}

// RefreshAsync runs Refresh in the background. The returned channel receives
// the published colors and is then closed.
func (m *Manager) RefreshAsync() <-chan gradient.Colors {
	done := make(chan gradient.Colors, 1)
	go func() {
		defer close(done)
		done <- m.Refresh(context.Background())
	}()
	return done
}

// Watch refreshes after every wallpaper file change until ctx is done. The
// watcher is retargeted whenever a refresh resolves a different wallpaper.
func (m *Manager) Watch(ctx context.Context, w *wallpaper.Watcher) {
	m.watcher.Store(w)
	defer m.watcher.CompareAndSwap(w, nil)

	m.Refresh(ctx)
	w.Run(ctx, func(path string) {
		m.logger.Debug("wallpaper changed", "path", path)
		m.Refresh(ctx)
	})
}
