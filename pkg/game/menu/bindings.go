// Package menu provides the controls menu: current bindings per action,
// with rebinding of the non-fixed ones.
package menu

import (
	"fmt"
	"strings"

	"tileworld/pkg/engine/input"
	"tileworld/pkg/game/i18n"
)

// cancelCode aborts a pending rebind.
const cancelCode = "escape"

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action        input.Action
	Codes         []string
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = i18n.T("BINDING_UNBOUND")
	}
	label := input.ActionName(b.Action) + ": " + codeText
	if b.NonRebindable {
		label += " " + i18n.T("BINDING_FIXED")
	}
	return label
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	if b.NonRebindable {
		return ""
	}
	return fmt.Sprintf(i18n.T("BINDING_EDIT_HELP"), input.ActionName(b.Action))
}

// BackMenuItem leaves the controls menu.
type BackMenuItem struct{}

// GetLabel returns the display label for this menu item.
func (BackMenuItem) GetLabel() string { return i18n.T("MENU_BACK") }

// IsSelectable returns whether this item can be selected.
func (BackMenuItem) IsSelectable() bool { return true }

// GetHelpText returns help text for this menu item.
func (BackMenuItem) GetHelpText() string { return "" }

// BindingsMenuHandler handles the controls menu.
type BindingsMenuHandler struct {
	bindings *input.Bindings
	actions  []input.Action

	capturing input.Action
	changed   func(action input.Action, code string)
	back      func()
}

// NewBindingsMenuHandler creates a new bindings menu handler. changed is
// called after every rebind; back when the menu is left.
func NewBindingsMenuHandler(b *input.Bindings, changed func(input.Action, string), back func()) *BindingsMenuHandler {
	var actions []input.Action
	for _, a := range input.AllActions() {
		if a != input.ActionNone {
			actions = append(actions, a)
		}
	}
	return &BindingsMenuHandler{bindings: b, actions: actions, changed: changed, back: back}
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return i18n.T("CONTROLS_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	if h.Capturing() {
		return fmt.Sprintf(i18n.T("BINDING_CAPTURE"), input.ActionName(h.capturing))
	}
	if item, ok := selected.(*BindingMenuItem); ok && !item.NonRebindable {
		return i18n.T("CONTROLS_INSTRUCTIONS_EDIT")
	}
	return i18n.T("CONTROLS_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *BindingsMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate starts capturing a new code for a rebindable action.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	switch it := item.(type) {
	case BackMenuItem:
		if h.back != nil {
			h.back()
		}
		return true, ""
	case *BindingMenuItem:
		if it.NonRebindable {
			return false, ""
		}
		h.capturing = it.Action
		return false, fmt.Sprintf(i18n.T("BINDING_CAPTURE"), input.ActionName(it.Action))
	}
	return false, ""
}

// Capturing reports whether the next raw code will be bound.
func (h *BindingsMenuHandler) Capturing() bool {
	return h.capturing != input.ActionNone
}

// Capture binds code to the action being captured. It returns the help
// text to show. escape cancels.
func (h *BindingsMenuHandler) Capture(code string) string {
	action := h.capturing
	h.capturing = input.ActionNone
	if code == "" || code == cancelCode {
		return ""
	}
	if h.bindings.IsProtected(code) {
		return fmt.Sprintf(i18n.T("BINDING_RESERVED"), code)
	}
	h.bindings.SetSingle(action, code)
	if h.changed != nil {
		h.changed(action, code)
	}
	return fmt.Sprintf(i18n.T("BINDING_SET"), input.ActionName(action), code)
}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	byAction := h.bindings.ByAction()
	items := make([]MenuItem, 0, len(h.actions)+1)
	for _, action := range h.actions {
		items = append(items, &BindingMenuItem{
			Action:        action,
			Codes:         byAction[action],
			NonRebindable: input.IsFixed(action),
		})
	}
	return append(items, BackMenuItem{})
}

// BindingsMenu couples the controls menu with its handler so raw codes
// can be fed in while a rebind is pending.
type BindingsMenu struct {
	*Menu
	handler *BindingsMenuHandler
	notice  string
}

// NewBindingsMenu opens the controls menu.
func NewBindingsMenu(b *input.Bindings, changed func(input.Action, string), back func()) *BindingsMenu {
	h := NewBindingsMenuHandler(b, changed, back)
	return &BindingsMenu{Menu: New(h.GetMenuItems(), h), handler: h}
}

// Update applies one frame of input. While capturing, the first raw code
// pressed is bound instead of navigating; Back leaves the menu otherwise.
func (m *BindingsMenu) Update(keys Keys, codes []string) {
	if m.Closed() {
		return
	}
	if m.handler.Capturing() {
		if len(codes) == 0 {
			return
		}
		m.notice = m.handler.Capture(codes[0])
		m.helpText = ""
		m.SetItems(m.handler.GetMenuItems())
		return
	}
	if keys.JustPressed(input.ActionBack) {
		m.closed = true
		if m.handler.back != nil {
			m.handler.back()
		}
		return
	}
	before := m.Selected()
	m.Menu.Update(keys)
	if m.Selected() != before {
		m.notice = ""
	}
}

// Capturing reports whether a rebind is pending.
func (m *BindingsMenu) Capturing() bool {
	return m.handler.Capturing()
}

// HelpText returns the rebind result, the capture prompt or the item help.
func (m *BindingsMenu) HelpText() string {
	if m.notice != "" && !m.Capturing() {
		return m.notice
	}
	return m.Menu.HelpText()
}
