package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ListManager provides a reusable component for managing lists with add/remove functionality
type ListManager[T any] struct {
	list        *widget.List
	data        []T
	selectedIdx int
	onRemove    func(int, T)
	onChange    func([]T)
	render      func(T) string

	AddButton    *widget.Button
	RemoveButton *widget.Button
}

// ListManagerConfig configures the list manager
type ListManagerConfig[T any] struct {
	Render     func(T) string    // Renders an item for display
	OnAdd      func()            // Called when the add button is pressed; call AddItem to insert
	OnRemove   func(int, T)      // Called before an item is removed
	OnChange   func([]T)         // Called with the new items after any change
	AddControl fyne.CanvasObject // Custom add control (optional)
}

// NewListManager creates a new list manager component
func NewListManager[T any](data []T, config ListManagerConfig[T]) (*ListManager[T], *fyne.Container) {
	lm := &ListManager[T]{
		data:        append([]T(nil), data...),
		selectedIdx: -1,
		onRemove:    config.OnRemove,
		onChange:    config.OnChange,
		render:      config.Render,
	}

	lm.list = widget.NewList(
		func() int {
			return len(lm.data)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i < len(lm.data) {
				o.(*widget.Label).SetText(lm.Text(i))
			}
		})

	lm.list.OnSelected = func(id widget.ListItemID) {
		lm.selectedIdx = id
		lm.RemoveButton.Enable()
	}
	lm.list.OnUnselected = func(widget.ListItemID) {
		lm.selectedIdx = -1
		lm.RemoveButton.Disable()
	}

	lm.AddButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if config.OnAdd != nil {
			config.OnAdd()
		}
	})
	lm.RemoveButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), lm.RemoveSelected)
	lm.RemoveButton.Disable()

	var addControls *fyne.Container
	if config.AddControl != nil {
		addControls = container.NewBorder(nil, nil, nil,
			container.NewHBox(lm.AddButton, lm.RemoveButton),
			config.AddControl)
	} else {
		addControls = container.NewHBox(lm.AddButton, lm.RemoveButton)
	}

	listScroll := container.NewScroll(lm.list)
	listScroll.SetMinSize(fyne.NewSize(0, 150))

	listWithBorder := container.NewBorder(
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		widget.NewSeparator(),
		listScroll,
	)

	return lm, container.NewVBox(listWithBorder, addControls)
}

// Text returns the display text of item i
func (lm *ListManager[T]) Text(i int) string {
	if lm.render != nil {
		return lm.render(lm.data[i])
	}
	return ""
}

// Refresh refreshes the list display
func (lm *ListManager[T]) Refresh() {
	lm.list.Refresh()
}

// Items returns a copy of the current items
func (lm *ListManager[T]) Items() []T {
	return append([]T(nil), lm.data...)
}

// SetItems replaces the items without calling OnChange
func (lm *ListManager[T]) SetItems(data []T) {
	lm.data = append([]T(nil), data...)
	lm.list.UnselectAll()
	lm.selectedIdx = -1
	lm.list.Refresh()
}

// AddItem appends an item
func (lm *ListManager[T]) AddItem(item T) {
	lm.data = append(lm.data, item)
	lm.list.Refresh()
	lm.changed()
}

// Select marks item i as selected
func (lm *ListManager[T]) Select(i int) {
	lm.list.Select(i)
}

// RemoveSelected removes the currently selected item
func (lm *ListManager[T]) RemoveSelected() {
	if lm.selectedIdx < 0 || lm.selectedIdx >= len(lm.data) {
		return
	}
	idx := lm.selectedIdx
	if lm.onRemove != nil {
		lm.onRemove(idx, lm.data[idx])
	}
	lm.data = append(lm.data[:idx], lm.data[idx+1:]...)
	lm.list.UnselectAll()
	lm.selectedIdx = -1
	lm.RemoveButton.Disable()
	lm.list.Refresh()
	lm.changed()
}

func (lm *ListManager[T]) changed() {
	if lm.onChange != nil {
		lm.onChange(lm.Items())
	}
}
