package generator

import (
	"math/rand"

	"go.uber.org/zap"
)

// Path band of the crossroads: columns and rows 13 to 16 inclusive.
const (
	BandStart = 13
	BandEnd   = 16
	BandWidth = BandEnd - BandStart + 1
)

// CrossroadsGenerator lays a plus-shaped road through the centre of the map.
type CrossroadsGenerator struct{}

// Name returns the name of this generator
func (g *CrossroadsGenerator) Name() string {
	return "Crossroads"
}

// Generate creates a new crossroads map
func (g *CrossroadsGenerator) Generate(rng *rand.Rand, log *zap.SugaredLogger) (*Map, error) {
	return build(g.Name(), g, defaultLayerNames, rng, log)
}

// InBand reports whether a column or row index lies inside the path band.
func InBand(i int) bool {
	return i >= BandStart && i <= BandEnd
}

func (g *CrossroadsGenerator) paintPath(m *Map, _ *rand.Rand) {
	m.Path.Fill(TilePath, BandStart, 0, BandWidth, GridRows)
	m.Path.Fill(TilePath, 0, BandStart, GridCols, BandWidth)
}

// Obstacles never sit on a band column or a band row, even away from the road.
func (g *CrossroadsGenerator) allowObstacle(_ *Map, col, row int) bool {
	return !InBand(col) && !InBand(row)
}

func (g *CrossroadsGenerator) spawn(_ *Map) (float64, float64) {
	centre := float64(BandStart*TileSize) + float64(BandWidth*TileSize)/2
	return centre, centre
}
