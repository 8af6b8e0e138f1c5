package menu

import (
	"tileworld/pkg/game/i18n"
)

// EndMenuAction is chosen on the game-over and game-won screens.
type EndMenuAction int

const (
	EndMenuActionRetry EndMenuAction = iota
	EndMenuActionMainMenu
)

// EndMenuItem represents a menu item on an end screen.
type EndMenuItem struct {
	Label  string
	Action EndMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *EndMenuItem) GetLabel() string {
	return i18n.T(m.Label)
}

// IsSelectable returns whether this item can be selected.
func (m *EndMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *EndMenuItem) GetHelpText() string {
	return ""
}

// EndMenuHandler handles the game-over and game-won menus.
type EndMenuHandler struct {
	title    string
	subtitle string
	retry    string
	choose   func(EndMenuAction)
}

// NewGameOverHandler creates the handler for the game-over screen.
func NewGameOverHandler(subtitle string, choose func(EndMenuAction)) *EndMenuHandler {
	return &EndMenuHandler{title: "GAME_OVER_TITLE", subtitle: subtitle, retry: "MENU_TRY_AGAIN", choose: choose}
}

// NewGameWonHandler creates the handler for the game-won screen.
func NewGameWonHandler(subtitle string, choose func(EndMenuAction)) *EndMenuHandler {
	return &EndMenuHandler{title: "GAME_WON_TITLE", subtitle: subtitle, retry: "MENU_PLAY_AGAIN", choose: choose}
}

// GetTitle returns the menu title.
func (h *EndMenuHandler) GetTitle() string {
	return i18n.T(h.title)
}

// GetInstructions returns the result line shown under the title.
func (h *EndMenuHandler) GetInstructions(selected MenuItem) string {
	return h.subtitle
}

// OnSelect is called when an item is selected.
func (h *EndMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *EndMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	endItem, ok := item.(*EndMenuItem)
	if !ok {
		return false, ""
	}
	if h.choose != nil {
		h.choose(endItem.Action)
	}
	return true, ""
}

// GetMenuItems returns the menu items for the end screen.
func (h *EndMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&EndMenuItem{Label: h.retry, Action: EndMenuActionRetry},
		&EndMenuItem{Label: "MENU_MAIN_MENU", Action: EndMenuActionMainMenu},
	}
}

// NewEndMenu opens an end screen menu for h.
func NewEndMenu(h *EndMenuHandler) *Menu {
	return New(h.GetMenuItems(), h)
}
