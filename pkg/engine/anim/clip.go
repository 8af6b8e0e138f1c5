package anim

import (
	"fmt"

	"tileworld/pkg/engine/world"
)

// Clip is an ordered sequence of atlas frames played at a fixed rate.
type Clip struct {
	Name      string
	Frames    []FrameRef
	FrameRate float64 // frames per second
	Loop      bool
	FlipX     bool
}

// Duration returns the length of one pass through the clip in seconds.
func (c *Clip) Duration() float64 {
	if c == nil || c.FrameRate <= 0 {
		return 0
	}
	return float64(len(c.Frames)) / c.FrameRate
}

// Key selects a clip by facing direction and moving/idle state.
type Key struct {
	Direction world.Direction
	Moving    bool
}

// ClipName returns the canonical clip name for a key, e.g. "walk_down" or "idle_right".
func (k Key) ClipName() string {
	state := "idle"
	if k.Moving {
		state = "walk"
	}
	return state + "_" + k.Direction.String()
}

// Set is an enum-keyed clip table: one clip per (direction, moving) pair.
// It is filled once and read-only afterwards.
type Set struct {
	clips [world.DirectionCount][2]*Clip
}

func movingIndex(moving bool) int {
	if moving {
		return 1
	}
	return 0
}

// Define stores the clip for key. Defining the same key twice is an error.
func (s *Set) Define(key Key, clip *Clip) error {
	if !key.Direction.IsValid() {
		return fmt.Errorf("anim: invalid direction %d", key.Direction)
	}
	if clip == nil || len(clip.Frames) == 0 {
		return fmt.Errorf("anim: clip %s has no frames", key.ClipName())
	}
	slot := &s.clips[key.Direction][movingIndex(key.Moving)]
	if *slot != nil {
		return fmt.Errorf("anim: clip %s already defined", key.ClipName())
	}
	*slot = clip
	return nil
}

// Clip returns the clip for key, or nil if undefined.
func (s *Set) Clip(key Key) *Clip {
	if !key.Direction.IsValid() {
		return nil
	}
	return s.clips[key.Direction][movingIndex(key.Moving)]
}

// Complete reports whether all eight clips are defined.
func (s *Set) Complete() bool {
	for _, d := range world.AllDirections() {
		for _, moving := range []bool{false, true} {
			if s.Clip(Key{Direction: d, Moving: moving}) == nil {
				return false
			}
		}
	}
	return true
}
