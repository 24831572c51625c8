package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/borgmon/focus-wave/pkg/gradient"
	"github.com/borgmon/focus-wave/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func halves(t *testing.T, g *GradientBackground) (*canvas.LinearGradient, *canvas.LinearGradient) {
	t.Helper()
	objects := test.WidgetRenderer(g).Objects()
	require.Len(t, objects, 2)
	return objects[0].(*canvas.LinearGradient), objects[1].(*canvas.LinearGradient)
}

func TestGradientBackgroundStops(t *testing.T) {
	test.NewTempApp(t)
	colors := gradient.DefaultColors()
	g := NewGradientBackground(colors)
	g.Resize(fyne.NewSize(280, 320))

	top, bottom := halves(t, g)

	assert.Equal(t, colors[0].NRGBA(), top.StartColor)
	assert.Equal(t, colors[1].NRGBA(), top.EndColor)
	assert.Equal(t, colors[1].NRGBA(), bottom.StartColor)
	assert.Equal(t, colors[2].NRGBA(), bottom.EndColor)
	assert.Equal(t, fyne.NewSize(280, 160), top.Size())
	assert.Equal(t, fyne.NewPos(0, 160), bottom.Position())
}

func TestGradientBackgroundSetColors(t *testing.T) {
	test.NewTempApp(t)
	g := NewGradientBackground(gradient.DefaultColors())
	next := gradient.Colors{gradient.Orange, gradient.Green, gradient.Blue}

	g.SetColors(next)

	top, bottom := halves(t, g)
	assert.Equal(t, next, g.Colors())
	assert.Equal(t, gradient.Orange.NRGBA(), top.StartColor)
	assert.Equal(t, gradient.Blue.NRGBA(), bottom.EndColor)
}

func TestGradientBackgroundBind(t *testing.T) {
	test.NewTempApp(t)
	colors := store.NewGradientStore()
	colors.Set(gradient.Colors{gradient.Pink, gradient.Pink, gradient.Pink})

	g := NewGradientBackground(gradient.DefaultColors())
	cancel := g.Bind(colors.Value)
	assert.Equal(t, colors.Get(), g.Colors())

	cancel()
	colors.Set(gradient.DefaultColors())
	assert.Equal(t, gradient.Pink, g.Colors()[0])
}

func TestListManagerAddRemove(t *testing.T) {
	test.NewTempApp(t)

	var changes [][]string
	var removed []string
	adds := 0
	lm, content := NewListManager([]string{"a", "b"}, ListManagerConfig[string]{
		Render:   func(s string) string { return "item " + s },
		OnAdd:    func() { adds++ },
		OnRemove: func(_ int, s string) { removed = append(removed, s) },
		OnChange: func(items []string) { changes = append(changes, items) },
	})
	require.NotNil(t, content)

	assert.Equal(t, "item b", lm.Text(1))
	assert.True(t, lm.RemoveButton.Disabled())

	test.Tap(lm.AddButton)
	assert.Equal(t, 1, adds)

	lm.AddItem("c")
	lm.Select(0)
	assert.False(t, lm.RemoveButton.Disabled())
	test.Tap(lm.RemoveButton)

	assert.Equal(t, []string{"b", "c"}, lm.Items())
	assert.Equal(t, []string{"a"}, removed)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"b", "c"}}, changes)
	assert.True(t, lm.RemoveButton.Disabled())

	lm.RemoveSelected()
	assert.Len(t, lm.Items(), 2)
}

func TestListManagerSetItemsIsSilent(t *testing.T) {
	test.NewTempApp(t)
	called := false
	lm, _ := NewListManager([]int{1}, ListManagerConfig[int]{
		OnChange: func([]int) { called = true },
	})

	lm.SetItems([]int{4, 5})

	assert.Equal(t, []int{4, 5}, lm.Items())
	assert.False(t, called)
}
