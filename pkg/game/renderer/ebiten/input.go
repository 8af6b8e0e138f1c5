package ebiten

import (
	"image"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/zyedidia/generic/mapset"

	"tileworld/pkg/engine/scene"
)

// namedKeys maps keys whose code is not their lower-cased name.
var namedKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyShiftLeft:      "shift",
	ebiten.KeyShiftRight:     "shift",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyNumpadEnter:    "enter",
	ebiten.KeySpace:          "space",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyTab:            "tab",
	ebiten.KeyBackspace:      "backspace",
}

// keyCode returns the binding code of a key, or "" for keys that cannot
// be bound. Letters and digits use their lower-case character.
func keyCode(k ebiten.Key) string {
	if code, ok := namedKeys[k]; ok {
		return code
	}
	name := k.String()
	switch {
	case len(name) == 1:
		return strings.ToLower(name)
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit0"):
		return name[len("Digit"):]
	}
	return ""
}

// standardButtons maps standard-layout gamepad buttons to codes.
var standardButtons = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// heldCodes collects the codes of every key, button and stick direction
// held right now.
func (e *EbitenRenderer) heldCodes() mapset.Set[string] {
	held := mapset.New[string]()

	for _, k := range inpututil.AppendPressedKeys(nil) {
		if code := keyCode(k); code != "" {
			held.Put(code)
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, code := range standardButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				held.Put(code)
			}
		}
		// Left stick counts as the d-pad
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		switch {
		case x < -stickDeadZone:
			held.Put("gamepad_dpad_left")
		case x > stickDeadZone:
			held.Put("gamepad_dpad_right")
		}
		switch {
		case y < -stickDeadZone:
			held.Put("gamepad_dpad_up")
		case y > stickDeadZone:
			held.Put("gamepad_dpad_down")
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		held.Put("mouse_left")
	}
	return held
}

// pollFrame builds the frame for this tick: held and just-pressed codes
// resolved through the bindings.
func (e *EbitenRenderer) pollFrame() *scene.Frame {
	held := e.heldCodes()
	e.hoverMenu()

	var heldList, pressed []string
	held.Each(func(code string) {
		heldList = append(heldList, code)
		if e.prevHeld.Has(code) {
			return
		}
		// A click only confirms when it lands on a menu item
		if code == "mouse_left" && !e.cursorOnMenuRow() {
			return
		}
		pressed = append(pressed, code)
	})
	e.prevHeld = held

	sort.Strings(heldList)
	sort.Strings(pressed)

	e.tick++
	return &scene.Frame{
		Tick:      e.tick,
		DeltaTime: 1 / float64(ebiten.TPS()),
		Input:     e.bindings.Snapshot(heldList, pressed),
		Codes:     pressed,
	}
}

// hoverMenu selects the menu item under the mouse cursor once the cursor
// moves, so a resting cursor does not fight keyboard navigation.
func (e *EbitenRenderer) hoverMenu() {
	x, y := ebiten.CursorPosition()
	moved := image.Pt(x, y) != e.cursor
	e.cursor = image.Pt(x, y)
	if !moved {
		return
	}
	m := e.activeMenu()
	if m == nil || m.menu == nil {
		return
	}
	if i, ok := e.menuRowAtCursor(); ok {
		m.menu.Select(i)
	}
}

func (e *EbitenRenderer) cursorOnMenuRow() bool {
	_, ok := e.menuRowAtCursor()
	return ok
}

func (e *EbitenRenderer) menuRowAtCursor() (int, bool) {
	for _, row := range e.menuRows {
		if e.cursor.In(row.rect) {
			return row.index, true
		}
	}
	return 0, false
}
