// Package gameplay provides the player entity and its movement rules.
package gameplay

import (
	"math"

	"tileworld/pkg/engine/anim"
	"tileworld/pkg/engine/input"
	"tileworld/pkg/engine/world"
)

// DefaultSpeed is the player speed in px/s when none is configured.
const DefaultSpeed = 160

// Keys is the read-only key state the movement rules need.
// input.Snapshot satisfies it.
type Keys interface {
	IsDown(a input.Action) bool
}

// MovementState is the result of one movement step.
type MovementState struct {
	Direction world.Direction
	Moving    bool
	VX, VY    float64
}

// ClipKey returns the animation clip key for this state.
func (s MovementState) ClipKey() anim.Key {
	return anim.Key{Direction: s.Direction, Moving: s.Moving}
}

// StepMovement evaluates the held directional keys for one frame.
//
// Horizontal keys are checked first (Left wins over Right), then vertical
// keys (Up wins over Down). Each held axis sets its velocity component and
// the facing direction, so when both axes are held the vertical one decides
// the direction. When nothing is held the previous direction is kept.
// The velocity is normalized and scaled to speed.
func StepMovement(keys Keys, prev world.Direction, speed float64) MovementState {
	s := MovementState{Direction: prev}

	if keys.IsDown(input.ActionLeft) {
		s.VX = -1
		s.Direction = world.Left
	} else if keys.IsDown(input.ActionRight) {
		s.VX = 1
		s.Direction = world.Right
	}

	if keys.IsDown(input.ActionUp) {
		s.VY = -1
		s.Direction = world.Up
	} else if keys.IsDown(input.ActionDown) {
		s.VY = 1
		s.Direction = world.Down
	}

	s.Moving = keys.IsDown(input.ActionLeft) || keys.IsDown(input.ActionRight) ||
		keys.IsDown(input.ActionUp) || keys.IsDown(input.ActionDown)

	if length := math.Hypot(s.VX, s.VY); length > 0 {
		s.VX = s.VX / length * speed
		s.VY = s.VY / length * speed
	}
	return s
}
