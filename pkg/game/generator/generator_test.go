package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tileworld/pkg/engine/world"
)

func generate(t *testing.T, g TilemapGenerator, seed int64) *Map {
	t.Helper()
	m, err := g.Generate(rand.New(rand.NewSource(seed)), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	require.True(t, m.Complete())
	return m
}

func TestCrossroads_GrassEverywhere(t *testing.T) {
	m := generate(t, Crossroads, 1)
	assert.Equal(t, GridCols*GridRows, m.Grass.CountTiles(TileGrass))
	m.Grass.ForEach(func(col, row, index int) {
		assert.Equal(t, TileGrass, index, "grass at %d,%d", col, row)
	})
}

func TestCrossroads_PathBand(t *testing.T) {
	m := generate(t, Crossroads, 1)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			index, ok := m.Path.TileAt(col, row)
			require.True(t, ok)
			if InBand(col) || InBand(row) {
				assert.Equal(t, TilePath, index, "path at %d,%d", col, row)
			} else {
				assert.Equal(t, world.Empty, index, "no path at %d,%d", col, row)
			}
		}
	}
}

func TestCrossroads_ObstaclesOutsideBand(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m := generate(t, Crossroads, seed)
		placed := 0
		m.Obstacles.ForEach(func(col, row, index int) {
			if index == world.Empty {
				assert.False(t, m.Obstacles.IsCollidable(col, row))
				return
			}
			placed++
			assert.Equal(t, TileObstacle, index)
			assert.False(t, InBand(col), "seed %d: obstacle column %d in band", seed, col)
			assert.False(t, InBand(row), "seed %d: obstacle row %d in band", seed, row)
			assert.True(t, m.Obstacles.IsCollidable(col, row))
		})
		assert.LessOrEqual(t, placed, ObstacleAttempts)
	}
}

func TestCrossroads_SameSeedSameMap(t *testing.T) {
	a := generate(t, Crossroads, 99)
	b := generate(t, Crossroads, 99)
	a.Obstacles.ForEach(func(col, row, index int) {
		other, _ := b.Obstacles.TileAt(col, row)
		assert.Equal(t, index, other)
	})
}

func TestCrossroads_LayersShareSize(t *testing.T) {
	m := generate(t, Crossroads, 3)
	for _, l := range m.Tilemap.Layers() {
		assert.Equal(t, GridCols, l.Width(), l.Name())
		assert.Equal(t, GridRows, l.Height(), l.Name())
	}
	names := []string{}
	for _, l := range m.Tilemap.Layers() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{LayerGrass, LayerPath, LayerObstacles}, names)
}

func TestCrossroads_SpawnOnRoad(t *testing.T) {
	m := generate(t, Crossroads, 1)
	assert.Equal(t, 480.0, m.SpawnX)
	assert.Equal(t, 480.0, m.SpawnY)
	col, row := m.Tilemap.WorldToTile(m.SpawnX, m.SpawnY)
	assert.True(t, m.Path.HasTileAt(col, row))
}

func TestCrossroads_RoadEnds(t *testing.T) {
	m := generate(t, Crossroads, 1)
	assert.Equal(t, world.AllDirections(), m.RoadEndSides())

	d, ok := m.RoadEnd(14, 0)
	assert.True(t, ok)
	assert.Equal(t, world.Up, d)
	d, ok = m.RoadEnd(GridCols-1, 15)
	assert.True(t, ok)
	assert.Equal(t, world.Right, d)

	_, ok = m.RoadEnd(0, 0)
	assert.False(t, ok, "corner has no path")
	_, ok = m.RoadEnd(14, 14)
	assert.False(t, ok, "centre is not an edge")
}

func TestBuild_PartialMapOnLayerFailure(t *testing.T) {
	names := layerNames{grass: "ground", path: "ground", obstacles: "rocks"}
	m, err := build("broken", Crossroads, names, rand.New(rand.NewSource(1)), zaptest.NewLogger(t).Sugar())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteMap)
	assert.ErrorIs(t, err, world.ErrLayerExists)
	assert.NotNil(t, m.Grass)
	assert.Nil(t, m.Path)
	assert.NotNil(t, m.Obstacles, "independent layers are still built")
	assert.False(t, m.Complete())
	assert.Empty(t, m.RoadEndSides())
}

func TestTrails_ReachesEveryEdge(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m := generate(t, Trails, seed)
		assert.Equal(t, world.AllDirections(), m.RoadEndSides(), "seed %d", seed)

		col, row := m.Tilemap.WorldToTile(m.SpawnX, m.SpawnY)
		assert.True(t, m.Path.HasTileAt(col, row))

		m.Obstacles.ForEach(func(col, row, index int) {
			if index != world.Empty {
				assert.False(t, m.Path.HasTileAt(col, row), "seed %d: obstacle on trail at %d,%d", seed, col, row)
			}
		})
	}
}

func TestByName(t *testing.T) {
	g, ok := ByName("")
	assert.True(t, ok)
	assert.Equal(t, DefaultGenerator, g)

	g, ok = ByName("trails")
	assert.True(t, ok)
	assert.Equal(t, "Trails", g.Name())

	_, ok = ByName("bsp")
	assert.False(t, ok)
}

func TestReachableRoadEndSides(t *testing.T) {
	for _, g := range []TilemapGenerator{Crossroads, Trails} {
		for seed := int64(1); seed <= 5; seed++ {
			m := generate(t, g, seed)
			assert.Equal(t, m.RoadEndSides(), ReachableRoadEndSides(m), "%s seed %d", g.Name(), seed)
		}
	}
}

func TestReachable_WalledIn(t *testing.T) {
	m := generate(t, Crossroads, 1)
	for _, d := range world.AllDirections() {
		dc, dr := d.Delta()
		m.Obstacles.PutTileAt(TileObstacle, 1+dc, 1+dr)
	}
	m.Obstacles.RemoveTileAt(1, 1)
	m.Obstacles.SetCollisionByExclusion(world.Empty)

	reached := Reachable(m, 1, 1)
	assert.Equal(t, 1, reached.Size())
	assert.True(t, reached.Has(1*GridCols+1))
}

func TestReachable_StartOnObstacle(t *testing.T) {
	m := generate(t, Crossroads, 1)
	m.Obstacles.PutTileAt(TileObstacle, 2, 2)
	m.Obstacles.SetCollisionByExclusion(world.Empty)
	assert.Equal(t, 0, Reachable(m, 2, 2).Size())
}
