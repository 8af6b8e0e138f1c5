package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileworld/pkg/engine/input"
)

type testItem struct {
	label      string
	selectable bool
}

func (i *testItem) GetLabel() string    { return i.label }
func (i *testItem) IsSelectable() bool  { return i.selectable }
func (i *testItem) GetHelpText() string { return "help " + i.label }

type testHandler struct {
	selected  []int
	activated []int
	close     bool
}

func (h *testHandler) OnSelect(_ MenuItem, index int) { h.selected = append(h.selected, index) }
func (h *testHandler) OnActivate(_ MenuItem, index int) (bool, string) {
	h.activated = append(h.activated, index)
	return h.close, "activated"
}
func (h *testHandler) GetTitle() string                { return "Test" }
func (h *testHandler) GetInstructions(MenuItem) string { return "instructions" }

func items() []MenuItem {
	return []MenuItem{
		&testItem{"header", false},
		&testItem{"a", true},
		&testItem{"spacer", false},
		&testItem{"b", true},
		&testItem{"c", true},
	}
}

func TestMenu_StartsOnFirstSelectable(t *testing.T) {
	m := New(items(), &testHandler{})
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, "help a", m.HelpText())
}

func TestMenu_NavigationWrapsAndSkips(t *testing.T) {
	h := &testHandler{}
	m := New(items(), h)
	down := input.Pressed(input.ActionDown)
	up := input.Pressed(input.ActionUp)

	m.Update(down)
	assert.Equal(t, 3, m.Selected(), "skips the spacer")
	m.Update(down)
	assert.Equal(t, 4, m.Selected())
	m.Update(down)
	assert.Equal(t, 1, m.Selected(), "wraps to the first selectable")
	m.Update(up)
	assert.Equal(t, 4, m.Selected(), "wraps to the last selectable")

	assert.Equal(t, []int{3, 4, 1, 4}, h.selected)
}

func TestMenu_HeldKeysDoNotRepeat(t *testing.T) {
	m := New(items(), &testHandler{})
	m.Update(input.Held(input.ActionDown))
	assert.Equal(t, 1, m.Selected())
}

func TestMenu_TriggerIsOneShot(t *testing.T) {
	h := &testHandler{close: true}
	m := New(items(), h)

	m.Update(input.Pressed(input.ActionConfirm))
	m.Update(input.Pressed(input.ActionConfirm))
	m.Update(input.Pressed(input.ActionZ))
	m.Activate()

	assert.Equal(t, []int{1}, h.activated)
	assert.True(t, m.Closed())
	m.Update(input.Pressed(input.ActionDown))
	assert.Equal(t, 1, m.Selected(), "closed menus ignore navigation")
}

func TestMenu_ZTriggers(t *testing.T) {
	h := &testHandler{}
	m := New(items(), h)
	m.Update(input.Pressed(input.ActionZ))
	assert.Equal(t, []int{1}, h.activated)
	assert.False(t, m.Closed())
	assert.Equal(t, "activated", m.HelpText())

	m.Update(input.Pressed(input.ActionDown))
	assert.Equal(t, "help b", m.HelpText(), "navigation clears activation text")
}

func TestMenu_Select(t *testing.T) {
	h := &testHandler{}
	m := New(items(), h)
	m.Select(2)
	assert.Equal(t, 1, m.Selected(), "non-selectable ignored")
	m.Select(9)
	assert.Equal(t, 1, m.Selected())
	m.Select(4)
	assert.Equal(t, 4, m.Selected())
	m.Select(4)
	assert.Equal(t, []int{4}, h.selected, "re-selecting is a no-op")
}

func TestMenu_NothingSelectable(t *testing.T) {
	h := &testHandler{}
	m := New([]MenuItem{&testItem{"x", false}}, h)
	assert.Equal(t, -1, m.Selected())
	m.Update(input.Pressed(input.ActionDown))
	m.Activate()
	assert.Empty(t, h.activated)
	assert.Nil(t, m.SelectedItem())
}

func TestMainMenu_StartIsDefault(t *testing.T) {
	var chosen []MainMenuAction
	m := NewMainMenu(func(a MainMenuAction) { chosen = append(chosen, a) })

	m.Update(input.Pressed(input.ActionConfirm))
	m.Update(input.Pressed(input.ActionConfirm))

	assert.Equal(t, []MainMenuAction{MainMenuActionStart}, chosen)
	assert.True(t, m.Closed())
}

func TestMainMenu_Quit(t *testing.T) {
	var chosen MainMenuAction = -1
	m := NewMainMenu(func(a MainMenuAction) { chosen = a })
	m.Update(input.Pressed(input.ActionUp))
	m.Update(input.Pressed(input.ActionZ))
	assert.Equal(t, MainMenuActionQuit, chosen)
}

func TestEndMenus(t *testing.T) {
	var chosen []EndMenuAction
	record := func(a EndMenuAction) { chosen = append(chosen, a) }

	over := NewEndMenu(NewGameOverHandler("subtitle", record))
	assert.Equal(t, "subtitle", over.Instructions())
	over.Update(input.Pressed(input.ActionConfirm))

	won := NewEndMenu(NewGameWonHandler("", record))
	won.Update(input.Pressed(input.ActionDown))
	won.Update(input.Pressed(input.ActionConfirm))

	assert.Equal(t, []EndMenuAction{EndMenuActionRetry, EndMenuActionMainMenu}, chosen)
}

func TestPauseMenu(t *testing.T) {
	var chosen PauseMenuAction = -1
	m := NewPauseMenu(func(a PauseMenuAction) { chosen = a })
	m.Update(input.Pressed(input.ActionConfirm))
	assert.Equal(t, PauseMenuActionResume, chosen)
}

func TestBindingsMenu_Rebind(t *testing.T) {
	b := input.NewBindings()
	var changed []string
	m := NewBindingsMenu(b, func(a input.Action, code string) {
		changed = append(changed, input.ActionName(a)+"="+code)
	}, nil)

	require.Equal(t, input.ActionUp, m.SelectedItem().(*BindingMenuItem).Action)
	m.Update(input.Pressed(input.ActionConfirm), []string{"enter"})
	require.True(t, m.Capturing())

	// no code this frame
	m.Update(input.NewSnapshot(), nil)
	require.True(t, m.Capturing())

	m.Update(input.Pressed(input.ActionY), []string{"i"})
	assert.False(t, m.Capturing())
	assert.Equal(t, input.ActionUp, b.Lookup("i"))
	assert.Equal(t, input.ActionNone, b.Lookup("w"))
	assert.Equal(t, []string{"Up=i"}, changed)
	assert.Contains(t, m.HelpText(), "i")
	assert.Contains(t, m.Items()[0].GetLabel(), "i")
}

func TestBindingsMenu_ReservedAndCancel(t *testing.T) {
	b := input.NewBindings()
	m := NewBindingsMenu(b, nil, nil)

	m.Update(input.Pressed(input.ActionConfirm), []string{"enter"})
	m.Update(input.Pressed(input.ActionConfirm), []string{"mouse_left"})
	assert.Equal(t, input.ActionUp, b.Lookup("w"), "reserved code leaves bindings alone")
	assert.Contains(t, m.HelpText(), "mouse_left")

	m.Update(input.Pressed(input.ActionConfirm), []string{"enter"})
	m.Update(input.Pressed(input.ActionBack), []string{"escape"})
	assert.False(t, m.Capturing())
	assert.Equal(t, input.ActionUp, b.Lookup("w"))
	assert.False(t, m.Closed(), "escape while capturing only cancels")
}

func TestBindingsMenu_RefusesZoomKeys(t *testing.T) {
	b := input.NewBindings()
	var changed []string
	m := NewBindingsMenu(b, func(_ input.Action, code string) { changed = append(changed, code) }, nil)

	m.Update(input.Pressed(input.ActionConfirm), []string{"enter"})
	m.Update(input.Pressed(input.ActionConfirm), []string{"="})
	assert.Equal(t, input.ActionZoomIn, b.Lookup("="))
	assert.Equal(t, input.ActionUp, b.Lookup("w"))
	assert.Empty(t, changed)
	assert.Contains(t, m.HelpText(), "=")
}

func TestBindingsMenu_BackLeaves(t *testing.T) {
	left := 0
	m := NewBindingsMenu(input.NewBindings(), nil, func() { left++ })
	m.Update(input.Pressed(input.ActionBack), []string{"escape"})
	assert.True(t, m.Closed())
	assert.Equal(t, 1, left)

	m2 := NewBindingsMenu(input.NewBindings(), nil, func() { left++ })
	m2.Update(input.Pressed(input.ActionUp), nil)
	_, isBack := m2.SelectedItem().(BackMenuItem)
	require.True(t, isBack, "up wraps to Back")
	m2.Update(input.Pressed(input.ActionConfirm), nil)
	assert.Equal(t, 2, left)
}

func TestBindingsMenu_FixedActionsNotEditable(t *testing.T) {
	h := NewBindingsMenuHandler(input.NewBindings(), nil, nil)
	for _, item := range h.GetMenuItems() {
		if bi, ok := item.(*BindingMenuItem); ok && bi.Action == input.ActionConfirm {
			closeMenu, _ := h.OnActivate(bi, 0)
			assert.False(t, closeMenu)
			assert.False(t, h.Capturing())
			assert.Contains(t, bi.GetLabel(), "(fixed)")
			return
		}
	}
	t.Fatal("confirm action not listed")
}
