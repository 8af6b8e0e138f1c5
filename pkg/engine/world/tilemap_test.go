package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T) (*Tilemap, *Tileset) {
	t.Helper()
	m := NewTilemap(4, 3, 32, 32)
	ts, err := m.AddTileset("tiles", 2, 4)
	require.NoError(t, err)
	return m, ts
}

func TestNewTilemap_PanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewTilemap(0, 1, 32, 32) })
	assert.Panics(t, func() { NewTilemap(1, 1, 0, 32) })
}

func TestTilemap_Dimensions(t *testing.T) {
	m, _ := newTestMap(t)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 128, m.WidthInPixels())
	assert.Equal(t, 96, m.HeightInPixels())
}

func TestTilemap_CreateBlankLayer(t *testing.T) {
	m, ts := newTestMap(t)

	l, err := m.CreateBlankLayer("ground", ts)
	require.NoError(t, err)
	assert.Same(t, l, m.Layer("ground"))
	assert.Equal(t, 12, l.CountTiles(Empty), "a blank layer holds only empty cells")

	_, err = m.CreateBlankLayer("ground", ts)
	assert.ErrorIs(t, err, ErrLayerExists)

	_, err = m.CreateBlankLayer("other", nil)
	assert.ErrorIs(t, err, ErrNoTileset)
	assert.Nil(t, m.Layer("other"))
}

func TestTilemap_AddTilesetRejectsDuplicates(t *testing.T) {
	m, _ := newTestMap(t)
	_, err := m.AddTileset("tiles", 2, 4)
	assert.ErrorIs(t, err, ErrTilesetExists)

	_, err = m.AddTileset("bad", 0, 4)
	assert.Error(t, err)
}

func TestTilemap_WorldToTile(t *testing.T) {
	m, _ := newTestMap(t)
	tests := []struct {
		x, y    float64
		col     int
		row     int
		inBound bool
	}{
		{0, 0, 0, 0, true},
		{31.9, 31.9, 0, 0, true},
		{32, 64, 1, 2, true},
		{-1, 5, -1, 0, false},
		{127, 96, 3, 3, false},
	}
	for _, tt := range tests {
		col, row := m.WorldToTile(tt.x, tt.y)
		assert.Equal(t, tt.col, col, "col for (%v,%v)", tt.x, tt.y)
		assert.Equal(t, tt.row, row, "row for (%v,%v)", tt.x, tt.y)
		assert.Equal(t, tt.inBound, m.IsValidPosition(col, row))
	}
}

func TestLayer_FillClipsToBounds(t *testing.T) {
	m, ts := newTestMap(t)
	l, err := m.CreateBlankLayer("ground", ts)
	require.NoError(t, err)

	l.Fill(1, 2, 1, 10, 10)
	assert.Equal(t, 4, l.CountTiles(1))
	idx, ok := l.TileAt(3, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, l.HasTileAt(1, 1))
}

func TestLayer_PutTileAtOutOfBounds(t *testing.T) {
	m, ts := newTestMap(t)
	l, err := m.CreateBlankLayer("ground", ts)
	require.NoError(t, err)

	assert.False(t, l.PutTileAt(1, 4, 0))
	assert.False(t, l.PutTileAt(1, 0, -1))
	_, ok := l.TileAt(4, 0)
	assert.False(t, ok)
}

func TestLayer_SetCollisionByExclusion(t *testing.T) {
	m, ts := newTestMap(t)
	l, err := m.CreateBlankLayer("walls", ts)
	require.NoError(t, err)

	l.PutTileAt(2, 0, 0)
	l.PutTileAt(3, 1, 0)
	l.PutTileAt(2, 3, 2)

	assert.Equal(t, 3, l.SetCollisionByExclusion(Empty))
	assert.True(t, l.IsCollidable(0, 0))
	assert.False(t, l.IsCollidable(2, 0))

	assert.Equal(t, 2, l.SetCollisionByExclusion(Empty, 3))
	assert.False(t, l.IsCollidable(1, 0))

	l.RemoveTileAt(0, 0)
	assert.False(t, l.IsCollidable(0, 0), "removing a tile clears its collision")
}

func TestLayer_OverlapsCollidable(t *testing.T) {
	m, ts := newTestMap(t)
	l, err := m.CreateBlankLayer("walls", ts)
	require.NoError(t, err)
	l.PutTileAt(2, 1, 1)
	l.SetCollisionByExclusion(Empty)

	assert.True(t, l.OverlapsCollidable(40, 40, 8, 8))
	assert.True(t, l.OverlapsCollidable(20, 20, 20, 20))
	assert.False(t, l.OverlapsCollidable(0, 32, 32, 32), "flush against the left edge")
	assert.False(t, l.OverlapsCollidable(64, 32, 32, 32), "flush against the right edge")
	assert.False(t, l.OverlapsCollidable(-40, -40, 8, 8))
}

func TestTileset_SourcePosition(t *testing.T) {
	_, ts := newTestMap(t)
	x, y := ts.SourcePosition(3)
	assert.Equal(t, 32, x)
	assert.Equal(t, 32, y)
	assert.True(t, ts.Contains(3))
	assert.False(t, ts.Contains(4))
	assert.False(t, ts.Contains(Empty))
}

func TestDirection_Opposite(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
		dc, dr := d.Delta()
		oc, or := d.Opposite().Delta()
		assert.Equal(t, 0, dc+oc)
		assert.Equal(t, 0, dr+or)
	}
	assert.False(t, Direction(7).IsValid())
	assert.Equal(t, "unknown", Direction(7).String())
}
