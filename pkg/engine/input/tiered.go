package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceMouse
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Face buttons bound by name
	ActionZ
	ActionX
	ActionY
	ActionShift

	// Meta / UI
	ActionConfirm // Generic "action/confirm" (click, Enter, Z, gamepad A)
	ActionBack    // Leave the current scene (Escape, gamepad B)
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
)

// AllActions lists every bindable action in display order.
func AllActions() []Action {
	return []Action{
		ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionZ, ActionX, ActionY, ActionShift,
		ActionConfirm, ActionBack,
		ActionZoomIn, ActionZoomOut, ActionZoomReset,
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "gamepad_a", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// defaultBindings maps raw codes to actions.
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionUp,
	"w":           ActionUp,
	"arrow_down":  ActionDown,
	"s":           ActionDown,
	"arrow_left":  ActionLeft,
	"a":           ActionLeft,
	"arrow_right": ActionRight,
	"d":           ActionRight,

	"z":     ActionZ,
	"x":     ActionX,
	"y":     ActionY,
	"shift": ActionShift,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionUp,
	"gamepad_dpad_down":  ActionDown,
	"gamepad_dpad_left":  ActionLeft,
	"gamepad_dpad_right": ActionRight,

	// Confirm (Enter, click, A button)
	"enter":      ActionConfirm,
	"space":      ActionConfirm,
	"mouse_left": ActionConfirm,
	"gamepad_a":  ActionConfirm,

	"escape":    ActionBack,
	"gamepad_b": ActionBack,

	// Zoom (fixed bindings, not rebindable)
	"=":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
}

// reservedCodes can never be rebound or cleared through SetSingle.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,

	"gamepad_dpad_up":    true,
	"gamepad_dpad_down":  true,
	"gamepad_dpad_left":  true,
	"gamepad_dpad_right": true,

	"enter":      true,
	"mouse_left": true,
	"gamepad_a":  true,
}

// IsReserved reports whether code is permanently bound.
func IsReserved(code string) bool {
	return reservedCodes[code]
}

// Bindings maps raw input codes to actions (3rd-layer bindings).
type Bindings struct {
	codes map[string]Action
}

// NewBindings returns the default binding table.
func NewBindings() *Bindings {
	b := &Bindings{codes: make(map[string]Action, len(defaultBindings))}
	for code, act := range defaultBindings {
		b.codes[code] = act
	}
	return b
}

// Lookup returns the action bound to a code, or ActionNone.
func (b *Bindings) Lookup(code string) Action {
	if act, ok := b.codes[code]; ok {
		return act
	}
	return ActionNone
}

// IsProtected reports whether code is reserved or bound to an action that
// cannot be rebound. Protected codes are never taken by SetSingle.
func (b *Bindings) IsProtected(code string) bool {
	return IsReserved(code) || IsFixed(b.Lookup(code))
}

// ByAction returns the current bindings grouped by action.
func (b *Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b.codes {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingle replaces all non-reserved bindings for the given action with a
// single code. A protected code clears the old bindings but is not taken.
func (b *Bindings) SetSingle(action Action, code string) {
	if IsFixed(action) {
		return
	}
	for c, a := range b.codes {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(b.codes, c)
		}
	}
	if code != "" && !b.IsProtected(code) {
		b.codes[code] = action
	}
}

// Apply rebinds actions from a name -> code table, as stored in the
// preferences file. Unknown action names are reported and skipped.
func (b *Bindings) Apply(overrides map[string]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		action, ok := ParseAction(name)
		if !ok || action == ActionNone {
			errs = append(errs, fmt.Errorf("input: unknown action %q", name))
			continue
		}
		if IsFixed(action) {
			errs = append(errs, fmt.Errorf("input: action %q cannot be rebound", name))
			continue
		}
		b.SetSingle(action, overrides[name])
	}
	return errors.Join(errs...)
}

// Snapshot converts the codes held and pressed this frame into a key-state snapshot.
func (b *Bindings) Snapshot(held, pressed []string) Snapshot {
	s := NewSnapshot()
	for _, code := range held {
		if act := b.Lookup(code); act != ActionNone {
			s.Hold(act)
		}
	}
	for _, code := range pressed {
		if act := b.Lookup(code); act != ActionNone {
			s.Press(act)
		}
	}
	return s
}

// IsFixed reports whether an action cannot be rebound.
func IsFixed(action Action) bool {
	return action == ActionConfirm ||
		action == ActionZoomIn ||
		action == ActionZoomOut ||
		action == ActionZoomReset
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionZ:
		return "Z"
	case ActionX:
		return "X"
	case ActionY:
		return "Y"
	case ActionShift:
		return "Shift"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Zoom Reset"
	default:
		return "None"
	}
}

// ParseAction resolves an action from its name, ignoring case and spaces.
func ParseAction(name string) (Action, bool) {
	want := normalizeName(name)
	for _, a := range AllActions() {
		if normalizeName(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "_", ""))
}
