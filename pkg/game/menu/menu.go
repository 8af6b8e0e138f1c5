// Package menu provides a generic menu model driven once per frame.
package menu

import (
	"tileworld/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated.
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// Keys is the per-frame input a menu reads.
type Keys interface {
	JustPressed(a input.Action) bool
}

// Menu is the state of one open menu. It closes after the first activation
// whose handler asks to close, and ignores input from then on.
type Menu struct {
	items    []MenuItem
	handler  MenuHandler
	selected int
	helpText string
	closed   bool
}

// New opens a menu with the first selectable item selected.
func New(items []MenuItem, handler MenuHandler) *Menu {
	m := &Menu{items: items, handler: handler, selected: -1}
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
	return m
}

// IsTrigger reports whether the keys activate the selected item this frame.
func IsTrigger(keys Keys) bool {
	return keys.JustPressed(input.ActionConfirm) || keys.JustPressed(input.ActionZ)
}

// Update applies one frame of input.
func (m *Menu) Update(keys Keys) {
	if m.closed {
		return
	}
	switch {
	case keys.JustPressed(input.ActionUp):
		m.moveUp()
	case keys.JustPressed(input.ActionDown):
		m.moveDown()
	case IsTrigger(keys):
		m.Activate()
	}
}

// moveUp moves selection up to the previous selectable item (with wrap-around)
func (m *Menu) moveUp() {
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	// If no item found above, wrap to the last selectable item
	for i := len(m.items) - 1; i > m.selected; i-- {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

// moveDown moves selection down to the next selectable item (with wrap-around)
func (m *Menu) moveDown() {
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	// If no item found below, wrap to the first selectable item
	for i := 0; i < m.selected; i++ {
		if m.items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

func (m *Menu) selectIndex(i int) {
	m.selected = i
	m.helpText = "" // Clear help text when navigating
	m.handler.OnSelect(m.items[i], i)
}

// Select moves the selection to index i, e.g. when the mouse hovers it.
// Non-selectable or out-of-range indexes are ignored.
func (m *Menu) Select(i int) {
	if m.closed || i == m.selected || i < 0 || i >= len(m.items) || !m.items[i].IsSelectable() {
		return
	}
	m.selectIndex(i)
}

// Activate activates the selected item.
func (m *Menu) Activate() {
	if m.closed || m.selected < 0 || m.selected >= len(m.items) || !m.items[m.selected].IsSelectable() {
		return
	}
	shouldClose, helpText := m.handler.OnActivate(m.items[m.selected], m.selected)
	m.helpText = helpText
	if shouldClose {
		m.closed = true
	}
}

// SetItems replaces the items, keeping the selection when it is still valid.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = items
	if m.selected >= 0 && m.selected < len(items) && items[m.selected].IsSelectable() {
		return
	}
	m.selected = -1
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
}

// Items returns the menu items.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the selected item, or -1.
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil.
func (m *Menu) SelectedItem() MenuItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// HelpText returns the text set by the last activation, or the selected
// item's help when there is none.
func (m *Menu) HelpText() string {
	if m.helpText != "" {
		return m.helpText
	}
	if item := m.SelectedItem(); item != nil {
		return item.GetHelpText()
	}
	return ""
}

// Title returns the handler's title.
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Instructions returns the handler's instructions for the selected item.
func (m *Menu) Instructions() string {
	return m.handler.GetInstructions(m.SelectedItem())
}

// Closed reports whether the menu was closed by an activation.
func (m *Menu) Closed() bool {
	return m.closed
}
