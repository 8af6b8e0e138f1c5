// Package camera tracks the visible part of the world.
package camera

import "math"

const (
	MinZoom     = 0.5
	MaxZoom     = 4.0
	DefaultZoom = 1.0
)

// Target is anything the camera can follow.
type Target interface {
	Center() (float64, float64)
}

// Camera tracks the viewport position (top-left corner in world coords)
// for scrolling maps larger than the screen.
type Camera struct {
	X, Y float64

	viewW, viewH float64 // screen size in pixels
	zoom         float64

	bounds      bool
	boundsW     float64
	boundsH     float64
	target      Target
	roundPixels bool
}

// New creates a camera for a viewport of w×h screen pixels.
func New(w, h int) *Camera {
	return &Camera{viewW: float64(w), viewH: float64(h), zoom: DefaultZoom}
}

// SetViewport updates the screen size, e.g. after a window resize.
func (c *Camera) SetViewport(w, h int) {
	c.viewW, c.viewH = float64(w), float64(h)
}

// SetBounds limits scrolling to a w×h world starting at the origin.
func (c *Camera) SetBounds(w, h float64) {
	c.bounds = true
	c.boundsW, c.boundsH = w, h
}

// StartFollow makes Update centre on t. A nil target stops following.
func (c *Camera) StartFollow(t Target) {
	c.target = t
}

// StopFollow stops following the current target.
func (c *Camera) StopFollow() {
	c.target = nil
}

// SetRoundPixels snaps the scroll position to whole pixels.
func (c *Camera) SetRoundPixels(round bool) {
	c.roundPixels = round
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) float64 {
	c.zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
	return c.zoom
}

// ViewSize returns the visible area in world pixels.
func (c *Camera) ViewSize() (float64, float64) {
	return c.viewW / c.zoom, c.viewH / c.zoom
}

// Update centres the camera on its target and clamps it to the bounds.
func (c *Camera) Update() {
	vw, vh := c.ViewSize()
	if c.target != nil {
		tx, ty := c.target.Center()
		c.X = tx - vw/2
		c.Y = ty - vh/2
	}
	if c.bounds {
		c.X = clampAxis(c.X, vw, c.boundsW)
		c.Y = clampAxis(c.Y, vh, c.boundsH)
	}
	if c.roundPixels {
		c.X = math.Round(c.X)
		c.Y = math.Round(c.Y)
	}
}

// clampAxis keeps a view of length view inside [0, world]. A world smaller
// than the view is centred.
func clampAxis(pos, view, world float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	if pos < 0 {
		return 0
	}
	if pos > world-view {
		return world - view
	}
	return pos
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x - c.X) * c.zoom, (y - c.Y) * c.zoom
}

// ScreenToWorld converts screen pixels to a world position.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x/c.zoom + c.X, y/c.zoom + c.Y
}
