package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Snapshot is the per-frame key state: which actions are held and which
// went down this frame. Scenes treat it as read-only.
type Snapshot struct {
	held    mapset.Set[Action]
	pressed mapset.Set[Action]
}

// NewSnapshot returns a snapshot with nothing held.
func NewSnapshot() Snapshot {
	return Snapshot{
		held:    mapset.New[Action](),
		pressed: mapset.New[Action](),
	}
}

// Held builds a snapshot where the given actions are held but none was just pressed.
func Held(actions ...Action) Snapshot {
	s := NewSnapshot()
	for _, a := range actions {
		s.Hold(a)
	}
	return s
}

// Pressed builds a snapshot where the given actions went down this frame.
func Pressed(actions ...Action) Snapshot {
	s := NewSnapshot()
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

// Hold marks an action as held.
func (s Snapshot) Hold(a Action) {
	s.held.Put(a)
}

// Press marks an action as pressed this frame, which also makes it held.
func (s Snapshot) Press(a Action) {
	s.held.Put(a)
	s.pressed.Put(a)
}

// IsDown returns true while the action is held.
func (s Snapshot) IsDown(a Action) bool {
	return s.held.Has(a)
}

// JustPressed returns true only on the frame the action went down.
func (s Snapshot) JustPressed(a Action) bool {
	return s.pressed.Has(a)
}

// AnyDown returns true if at least one of the actions is held.
func (s Snapshot) AnyDown(actions ...Action) bool {
	for _, a := range actions {
		if s.IsDown(a) {
			return true
		}
	}
	return false
}

// HeldCount returns the number of distinct held actions.
func (s Snapshot) HeldCount() int {
	return s.held.Size()
}
