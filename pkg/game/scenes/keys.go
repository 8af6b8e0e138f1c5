// Package scenes wires the game scenes into the scene manager: loading
// screen, menus, the world and the HUD overlay.
package scenes

import (
	"time"

	"tileworld/pkg/engine/scene"
	"tileworld/pkg/engine/world"
)

// Scene keys, in registration (update and draw) order.
const (
	KeyLoading  scene.Key = "loading"
	KeyMainMenu scene.Key = "main-menu"
	KeyControls scene.Key = "controls"
	KeyWorld    scene.Key = "world"
	KeyUI       scene.Key = "ui"
	KeyPause    scene.Key = "pause"
	KeyGameOver scene.Key = "game-over"
	KeyGameWon  scene.Key = "game-won"
)

// Events exchanged between the world and the UI.
const (
	EventUIReset scene.Event = "ui:reset"
	EventScore   scene.Event = "world:score"
	EventRoadEnd scene.Event = "world:road-end"
	EventClock   scene.Event = "world:clock"
	EventMessage scene.Event = "ui:message"
)

// ResetPayload is sent with EventUIReset when a world is created.
type ResetPayload struct {
	RoadEndsNeeded int
	TimeLimit      float64
}

// ScorePayload is sent with EventScore when a new cell is explored.
type ScorePayload struct {
	Score int
}

// RoadEndPayload is sent with EventRoadEnd when a new road end is reached.
type RoadEndPayload struct {
	Side    world.Direction
	Reached int
	Needed  int
}

// ClockPayload is sent with EventClock every world frame.
type ClockPayload struct {
	Elapsed time.Duration
	// Remaining is negative without a time limit.
	Remaining float64
}
