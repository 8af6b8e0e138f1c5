package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"tileworld/pkg/engine/world"
)

// Layer names in draw order.
const (
	LayerGrass     = "grass"
	LayerPath      = "path"
	LayerObstacles = "obstacles"
)

// ErrIncompleteMap is returned when any layer could not be built.
var ErrIncompleteMap = errors.New("generator: map is incomplete")

// Map is a generated tilemap with direct access to its layers. A layer
// that failed to build is nil.
type Map struct {
	Tilemap   *world.Tilemap
	Grass     *world.Layer
	Path      *world.Layer
	Obstacles *world.Layer

	// Spawn point in world pixels.
	SpawnX, SpawnY float64

	Generator string
	Seed      int64
}

// Complete reports whether every layer exists.
func (m *Map) Complete() bool {
	return m != nil && m.Tilemap != nil && m.Grass != nil && m.Path != nil && m.Obstacles != nil
}

// RoadEnd reports whether (col, row) is a path cell on the map edge and
// which edge it leads off.
func (m *Map) RoadEnd(col, row int) (world.Direction, bool) {
	if m == nil || m.Path == nil || !m.Path.HasTileAt(col, row) {
		return 0, false
	}
	switch {
	case row == 0:
		return world.Up, true
	case row == m.Tilemap.Height()-1:
		return world.Down, true
	case col == 0:
		return world.Left, true
	case col == m.Tilemap.Width()-1:
		return world.Right, true
	}
	return 0, false
}

// RoadEndSides lists the edges that have at least one road end.
func (m *Map) RoadEndSides() []world.Direction {
	var seen [world.DirectionCount]bool
	if m == nil || m.Path == nil {
		return nil
	}
	m.Path.ForEach(func(col, row, _ int) {
		if d, ok := m.RoadEnd(col, row); ok {
			seen[d] = true
		}
	})
	var sides []world.Direction
	for _, d := range world.AllDirections() {
		if seen[d] {
			sides = append(sides, d)
		}
	}
	return sides
}

// layerNames lets tests force a layer creation failure.
type layerNames struct {
	grass, path, obstacles string
}

var defaultLayerNames = layerNames{LayerGrass, LayerPath, LayerObstacles}

// painter fills the layers of a freshly created map.
type painter interface {
	paintPath(m *Map, rng *rand.Rand)
	allowObstacle(m *Map, col, row int) bool
	spawn(m *Map) (float64, float64)
}

// build creates the tilemap and its three layers. Each layer is created
// independently: a failure is logged, the layer stays nil and the error
// is joined into the result.
func build(name string, p painter, names layerNames, rng *rand.Rand, log *zap.SugaredLogger) (*Map, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	m := &Map{
		Tilemap:   world.NewTilemap(GridCols, GridRows, TileSize, TileSize),
		Generator: name,
	}

	ts, err := m.Tilemap.AddTileset(TilesetName, TilesetColumns, TilesetColumns)
	if err != nil {
		log.Errorw("Tileset creation failed", "tileset", TilesetName, "error", err)
		return m, errors.Join(ErrIncompleteMap, err)
	}

	var errs []error
	create := func(layer string) *world.Layer {
		l, err := m.Tilemap.CreateBlankLayer(layer, ts)
		if err != nil {
			log.Errorw("Layer creation failed", "layer", layer, "error", err)
			errs = append(errs, fmt.Errorf("layer %s: %w", layer, err))
			return nil
		}
		return l
	}

	if m.Grass = create(names.grass); m.Grass != nil {
		m.Grass.Fill(TileGrass, 0, 0, GridCols, GridRows)
	}
	if m.Path = create(names.path); m.Path != nil {
		p.paintPath(m, rng)
	}
	if m.Obstacles = create(names.obstacles); m.Obstacles != nil {
		placeObstacles(m, p, rng)
		m.Obstacles.SetCollisionByExclusion(world.Empty)
	}

	m.SpawnX, m.SpawnY = p.spawn(m)

	if len(errs) > 0 {
		return m, errors.Join(append([]error{ErrIncompleteMap}, errs...)...)
	}
	log.Debugw("Map generated",
		"generator", name,
		"pathTiles", m.Path.CountTiles(TilePath),
		"obstacles", m.Obstacles.CountTiles(TileObstacle),
	)
	return m, nil
}

// placeObstacles makes ObstacleAttempts random placements. A rejected
// placement is skipped, not retried, and duplicates are allowed.
func placeObstacles(m *Map, p painter, rng *rand.Rand) {
	for i := 0; i < ObstacleAttempts; i++ {
		col := rng.Intn(GridCols)
		row := rng.Intn(GridRows)
		if !p.allowObstacle(m, col, row) {
			continue
		}
		m.Obstacles.PutTileAt(TileObstacle, col, row)
	}
}
