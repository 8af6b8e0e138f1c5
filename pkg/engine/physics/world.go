package physics

// Collider is anything that can report whether a box overlaps solid ground.
// *world.Layer satisfies it.
type Collider interface {
	OverlapsCollidable(x, y, w, h float64) bool
}

// Rect is a world-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// World steps bodies inside Bounds against a list of colliders.
type World struct {
	Bounds    Rect
	Colliders []Collider
}

// NewWorld creates a world with the given pixel bounds.
func NewWorld(w, h float64) *World {
	return &World{Bounds: Rect{W: w, H: h}}
}

// AddCollider registers a collider. Nil colliders are ignored so a missing
// tile layer does not have to be special-cased by callers.
func (w *World) AddCollider(c Collider) {
	if c == nil {
		return
	}
	w.Colliders = append(w.Colliders, c)
}

// Step integrates b over dt seconds. Each axis is moved separately; a move
// that would overlap a collider is undone and the matching side is marked
// blocked. Bodies with CollideWorldBounds are then clamped inside Bounds.
func (w *World) Step(b *Body, dt float64) {
	b.Blocked = Blocked{}
	if dt <= 0 {
		return
	}

	if dx := b.VX * dt; dx != 0 {
		b.X += dx
		if w.overlaps(b) {
			b.X -= dx
			if dx > 0 {
				b.Blocked.Right = true
			} else {
				b.Blocked.Left = true
			}
		}
	}

	if dy := b.VY * dt; dy != 0 {
		b.Y += dy
		if w.overlaps(b) {
			b.Y -= dy
			if dy > 0 {
				b.Blocked.Down = true
			} else {
				b.Blocked.Up = true
			}
		}
	}

	if b.CollideWorldBounds {
		w.clamp(b)
	}
}

func (w *World) overlaps(b *Body) bool {
	for _, c := range w.Colliders {
		if c.OverlapsCollidable(b.X, b.Y, b.W, b.H) {
			return true
		}
	}
	return false
}

func (w *World) clamp(b *Body) {
	minX, minY := w.Bounds.X, w.Bounds.Y
	maxX, maxY := w.Bounds.X+w.Bounds.W-b.W, w.Bounds.Y+w.Bounds.H-b.H

	if b.X < minX {
		b.X = minX
		b.Blocked.Left = true
	} else if b.X > maxX {
		b.X = maxX
		b.Blocked.Right = true
	}
	if b.Y < minY {
		b.Y = minY
		b.Blocked.Up = true
	} else if b.Y > maxY {
		b.Y = maxY
		b.Blocked.Down = true
	}
}
