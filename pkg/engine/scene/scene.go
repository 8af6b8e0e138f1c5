// Package scene provides a small scene manager: named scenes registered as
// lifecycle hooks, a per-frame update in registration order, and an event bus.
package scene

import (
	"go.uber.org/zap"

	"tileworld/pkg/engine/input"
)

// Key names a registered scene.
type Key string

// Frame is the per-frame data handed to every active scene.
type Frame struct {
	Tick      uint64
	DeltaTime float64 // seconds
	Input     input.Snapshot
	// Codes are the raw input codes that went down this frame.
	Codes []string
}

// Context gives lifecycle hooks access to the manager and its event bus.
type Context struct {
	Key    Key
	Scenes *Manager
	Events *Emitter
	Log    *zap.SugaredLogger
}

// Hooks are the lifecycle callbacks of a scene. Any hook may be nil.
type Hooks struct {
	// Create is called each time the scene becomes active.
	Create func(ctx *Context)
	// Update is called once per frame while the scene is active.
	Update func(ctx *Context, frame *Frame)
	// Shutdown is called when the scene stops.
	Shutdown func(ctx *Context)
}
