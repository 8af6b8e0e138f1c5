// Package menu provides the pause menu shown over the running world.
package menu

import (
	"tileworld/pkg/game/i18n"
)

// PauseMenuAction represents the action type for pause menu items.
type PauseMenuAction int

const (
	PauseMenuActionResume PauseMenuAction = iota
	PauseMenuActionQuitToTitle
)

// PauseMenuItem represents a menu item in the pause menu.
type PauseMenuItem struct {
	Label  string
	Action PauseMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *PauseMenuItem) GetLabel() string {
	return i18n.T(m.Label)
}

// IsSelectable returns whether this item can be selected.
func (m *PauseMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *PauseMenuItem) GetHelpText() string {
	switch m.Action {
	case PauseMenuActionResume:
		return i18n.T("HELP_RESUME")
	case PauseMenuActionQuitToTitle:
		return i18n.T("HELP_QUIT_TO_TITLE")
	default:
		return ""
	}
}

// PauseMenuHandler handles the pause menu.
type PauseMenuHandler struct {
	choose func(PauseMenuAction)
}

// NewPauseMenuHandler creates a new pause menu handler.
func NewPauseMenuHandler(choose func(PauseMenuAction)) *PauseMenuHandler {
	return &PauseMenuHandler{choose: choose}
}

// GetTitle returns the menu title.
func (h *PauseMenuHandler) GetTitle() string {
	return i18n.T("PAUSE_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *PauseMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("PAUSE_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *PauseMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *PauseMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	pauseItem, ok := item.(*PauseMenuItem)
	if !ok {
		return false, ""
	}
	if h.choose != nil {
		h.choose(pauseItem.Action)
	}
	return true, ""
}

// GetMenuItems returns the menu items for the pause menu.
func (h *PauseMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&PauseMenuItem{Label: "MENU_RESUME", Action: PauseMenuActionResume},
		&PauseMenuItem{Label: "MENU_QUIT_TO_TITLE", Action: PauseMenuActionQuitToTitle},
	}
}

// NewPauseMenu opens the pause menu.
func NewPauseMenu(choose func(PauseMenuAction)) *Menu {
	h := NewPauseMenuHandler(choose)
	return New(h.GetMenuItems(), h)
}
