package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileworld/pkg/engine/world"
)

func wallMap(t *testing.T) *world.Layer {
	t.Helper()
	m := world.NewTilemap(10, 10, 32, 32)
	ts, err := m.AddTileset("tiles", 3, 3)
	require.NoError(t, err)
	layer, err := m.CreateBlankLayer("walls", ts)
	require.NoError(t, err)
	layer.PutTileAt(2, 5, 0)
	layer.SetCollisionByExclusion(world.Empty)
	return layer
}

func TestStep_MovesFreely(t *testing.T) {
	w := NewWorld(320, 320)
	b := &Body{X: 10, Y: 10, W: 16, H: 16}
	b.SetVelocity(100, 50)

	w.Step(b, 0.1)

	assert.InDelta(t, 20, b.X, 1e-9)
	assert.InDelta(t, 15, b.Y, 1e-9)
	assert.False(t, b.Blocked.Any())
}

func TestStep_StopsAtCollidableTile(t *testing.T) {
	w := NewWorld(320, 320)
	w.AddCollider(wallMap(t))

	// Body right edge at 159, wall starts at x=160.
	b := &Body{X: 143, Y: 4, W: 16, H: 16}
	b.SetVelocity(100, 0)
	w.Step(b, 0.1)

	assert.InDelta(t, 143, b.X, 1e-9)
	assert.True(t, b.Blocked.Right)
	assert.False(t, b.Blocked.Left)
}

func TestStep_SlidesAlongWall(t *testing.T) {
	w := NewWorld(320, 320)
	w.AddCollider(wallMap(t))

	b := &Body{X: 143, Y: 4, W: 16, H: 16}
	b.SetVelocity(100, 100)
	w.Step(b, 0.1)

	assert.InDelta(t, 143, b.X, 1e-9, "horizontal move undone")
	assert.InDelta(t, 14, b.Y, 1e-9, "vertical move kept")
	assert.True(t, b.Blocked.Right)
}

func TestStep_ClampsToWorldBounds(t *testing.T) {
	w := NewWorld(320, 320)
	b := &Body{X: 2, Y: 300, W: 16, H: 16, CollideWorldBounds: true}
	b.SetVelocity(-100, 100)
	w.Step(b, 0.1)

	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 304.0, b.Y)
	assert.True(t, b.Blocked.Left)
	assert.True(t, b.Blocked.Down)
}

func TestStep_NoBoundsWithoutFlag(t *testing.T) {
	w := NewWorld(320, 320)
	b := &Body{X: 2, Y: 2, W: 16, H: 16}
	b.SetVelocity(-100, 0)
	w.Step(b, 0.1)

	assert.InDelta(t, -8, b.X, 1e-9)
}

func TestStep_ZeroDeltaResetsBlocked(t *testing.T) {
	w := NewWorld(320, 320)
	b := &Body{Blocked: Blocked{Up: true}}
	w.Step(b, 0)
	assert.False(t, b.Blocked.Any())
}

func TestAddCollider_IgnoresNil(t *testing.T) {
	w := NewWorld(32, 32)
	w.AddCollider(nil)
	assert.Empty(t, w.Colliders)
}

func TestNewBody_Centered(t *testing.T) {
	b := NewBody(100, 50, 20, 10)
	cx, cy := b.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 50.0, cy)
	b.SetVelocity(3, 4)
	assert.Equal(t, 5.0, b.Speed())
	b.Stop()
	assert.Zero(t, b.Speed())
}
