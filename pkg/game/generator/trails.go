package generator

import (
	"math/rand"

	"go.uber.org/zap"

	"tileworld/pkg/engine/world"
)

// TrailsGenerator walks winding paths from the centre to each map edge,
// with short dead-end branches along the way.
type TrailsGenerator struct{}

const (
	trailBranchProb = 0.15
	trailJogProb    = 0.2
	trailBranchMin  = 2
	trailBranchMax  = 5
)

// Name returns the name of this generator
func (g *TrailsGenerator) Name() string {
	return "Trails"
}

// Generate creates a new trails map
func (g *TrailsGenerator) Generate(rng *rand.Rand, log *zap.SugaredLogger) (*Map, error) {
	return build(g.Name(), g, defaultLayerNames, rng, log)
}

func (g *TrailsGenerator) centre() (int, int) {
	return GridCols / 2, GridRows / 2
}

func (g *TrailsGenerator) paintPath(m *Map, rng *rand.Rand) {
	col, row := g.centre()
	m.Path.PutTileAt(TilePath, col, row)
	for _, dir := range world.AllDirections() {
		g.walkToEdge(m, rng, col, row, dir)
	}
}

// walkToEdge marks path cells from (col, row) in dir until the map edge,
// occasionally jogging sideways and spawning a branch.
func (g *TrailsGenerator) walkToEdge(m *Map, rng *rand.Rand, col, row int, dir world.Direction) {
	colDelta, rowDelta := dir.Delta()
	for {
		next := col + colDelta
		nextRow := row + rowDelta
		if !m.Tilemap.IsValidPosition(next, nextRow) {
			return
		}
		col, row = next, nextRow
		m.Path.PutTileAt(TilePath, col, row)

		// Never jog on the edge itself so the road end stays on this side
		if rng.Float64() < trailJogProb && !g.onEdge(m, col, row) {
			side := g.perpendicular(dir, rng)
			sc, sr := side.Delta()
			if m.Tilemap.IsValidPosition(col+sc, row+sr) && !g.onEdge(m, col+sc, row+sr) {
				col, row = col+sc, row+sr
				m.Path.PutTileAt(TilePath, col, row)
			}
		}

		if rng.Float64() < trailBranchProb {
			g.branch(m, rng, col, row, g.perpendicular(dir, rng))
		}
	}
}

// branch carves a short dead end that stops before the map edge.
func (g *TrailsGenerator) branch(m *Map, rng *rand.Rand, col, row int, dir world.Direction) {
	colDelta, rowDelta := dir.Delta()
	distance := trailBranchMin + rng.Intn(trailBranchMax-trailBranchMin+1)
	for segment := 0; segment < distance; segment++ {
		col += colDelta
		row += rowDelta
		if !m.Tilemap.IsValidPosition(col, row) || g.onEdge(m, col, row) {
			return
		}
		m.Path.PutTileAt(TilePath, col, row)
	}
}

func (g *TrailsGenerator) perpendicular(dir world.Direction, rng *rand.Rand) world.Direction {
	if dir == world.Up || dir == world.Down {
		if rng.Intn(2) == 0 {
			return world.Left
		}
		return world.Right
	}
	if rng.Intn(2) == 0 {
		return world.Up
	}
	return world.Down
}

func (g *TrailsGenerator) onEdge(m *Map, col, row int) bool {
	return col == 0 || row == 0 || col == m.Tilemap.Width()-1 || row == m.Tilemap.Height()-1
}

// Obstacles stay off the trail and away from the spawn cell's neighbours.
func (g *TrailsGenerator) allowObstacle(m *Map, col, row int) bool {
	if m.Path != nil && m.Path.HasTileAt(col, row) {
		return false
	}
	cc, cr := g.centre()
	return abs(col-cc) > 1 || abs(row-cr) > 1
}

func (g *TrailsGenerator) spawn(_ *Map) (float64, float64) {
	col, row := g.centre()
	return float64(col*TileSize) + TileSize/2, float64(row*TileSize) + TileSize/2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
