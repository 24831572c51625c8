package components

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/store"
)

// GradientBackground paints the three gradient stops from top to bottom.
// Fyne gradients only take two colors, so the widget stacks two halves
// meeting at the middle stop.
type GradientBackground struct {
	widget.BaseWidget

	mu     sync.RWMutex
	colors gradient.Colors
}

// NewGradientBackground creates a background showing colors
func NewGradientBackground(colors gradient.Colors) *GradientBackground {
	g := &GradientBackground{colors: colors}
	g.ExtendBaseWidget(g)
	return g
}

// Colors returns the stops currently shown
func (g *GradientBackground) Colors() gradient.Colors {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.colors
}

// SetColors replaces all stops at once
func (g *GradientBackground) SetColors(colors gradient.Colors) {
	g.mu.Lock()
	g.colors = colors
	g.mu.Unlock()
	g.Refresh()
}

// Bind keeps the background in sync with a gradient value until cancel is called.
// Updates arriving from other goroutines are applied on the UI thread.
func (g *GradientBackground) Bind(v *store.Value[gradient.Colors]) (cancel func()) {
	g.SetColors(v.Get())
	return v.Subscribe(func(colors gradient.Colors) {
		fyne.Do(func() {
			g.SetColors(colors)
		})
	})
}

// CreateRenderer implements fyne.Widget
func (g *GradientBackground) CreateRenderer() fyne.WidgetRenderer {
	r := &gradientBackgroundRenderer{
		background: g,
		top:        canvas.NewVerticalGradient(color.Transparent, color.Transparent),
		bottom:     canvas.NewVerticalGradient(color.Transparent, color.Transparent),
	}
	r.applyColors()
	return r
}

type gradientBackgroundRenderer struct {
	background *GradientBackground
	top        *canvas.LinearGradient
	bottom     *canvas.LinearGradient
}

func (r *gradientBackgroundRenderer) Layout(size fyne.Size) {
	half := size.Height / 2
	r.top.Move(fyne.NewPos(0, 0))
	r.top.Resize(fyne.NewSize(size.Width, half))
	r.bottom.Move(fyne.NewPos(0, half))
	r.bottom.Resize(fyne.NewSize(size.Width, size.Height-half))
}

func (r *gradientBackgroundRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *gradientBackgroundRenderer) Refresh() {
	r.applyColors()
	r.top.Refresh()
	r.bottom.Refresh()
}

func (r *gradientBackgroundRenderer) applyColors() {
	colors := r.background.Colors()
	r.top.StartColor = colors[0].NRGBA()
	r.top.EndColor = colors[1].NRGBA()
	r.bottom.StartColor = colors[1].NRGBA()
	r.bottom.EndColor = colors[2].NRGBA()
}

func (r *gradientBackgroundRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.top, r.bottom}
}

func (r *gradientBackgroundRenderer) Destroy() {}
