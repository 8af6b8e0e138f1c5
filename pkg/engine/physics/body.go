// Package physics implements arcade bodies: axis-aligned boxes with a
// velocity, stepped against world bounds and tile colliders.
package physics

import "math"

// Blocked records which sides of a body touched something during the last step.
type Blocked struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is blocked.
func (b Blocked) Any() bool {
	return b.Up || b.Down || b.Left || b.Right
}

// Body is an axis-aligned box positioned by its top-left corner, in pixels.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64 // px/s

	CollideWorldBounds bool
	Blocked            Blocked
}

// NewBody creates a body of size w×h centred on (cx, cy).
func NewBody(cx, cy, w, h float64) *Body {
	return &Body{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX, b.VY = vx, vy
}

// Stop zeroes the velocity.
func (b *Body) Stop() {
	b.VX, b.VY = 0, 0
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Center returns the centre point of the body.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}
