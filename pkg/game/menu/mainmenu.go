// Package menu provides main menu implementation using the generic menu system.
package menu

import (
	"tileworld/pkg/game/i18n"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionStart MainMenuAction = iota
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return i18n.T(m.Label)
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionStart:
		return i18n.T("HELP_START")
	case MainMenuActionControls:
		return i18n.T("HELP_CONTROLS")
	case MainMenuActionQuit:
		return i18n.T("HELP_QUIT")
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu. choose is called once with the
// activated action.
type MainMenuHandler struct {
	choose func(MainMenuAction)
}

// NewMainMenuHandler creates a new main menu handler.
func NewMainMenuHandler(choose func(MainMenuAction)) *MainMenuHandler {
	return &MainMenuHandler{choose: choose}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return i18n.T("GAME_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}
	if h.choose != nil {
		h.choose(mainItem.Action)
	}
	return true, ""
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: "MENU_START", Action: MainMenuActionStart},
		&MainMenuItem{Label: "MENU_CONTROLS", Action: MainMenuActionControls},
		&MainMenuItem{Label: "MENU_QUIT", Action: MainMenuActionQuit},
	}
}

// NewMainMenu opens the main menu.
func NewMainMenu(choose func(MainMenuAction)) *Menu {
	h := NewMainMenuHandler(choose)
	return New(h.GetMenuItems(), h)
}
