// Package generator builds the tile world: a grass ground layer, a path
// layer and a collidable obstacle layer.
package generator

import (
	"math/rand"

	"go.uber.org/zap"
)

// Grid and tile constants shared by every generator.
const (
	GridCols = 30
	GridRows = 30
	TileSize = 32

	TilesetName    = "tiles"
	TilesetColumns = 3

	TileGrass    = 0
	TilePath     = 1
	TileObstacle = 2

	ObstacleAttempts = 20
)

// TilemapGenerator is an interface for map generation algorithms
type TilemapGenerator interface {
	Generate(rng *rand.Rand, log *zap.SugaredLogger) (*Map, error)
	Name() string
}

// Available generators
var (
	Crossroads = &CrossroadsGenerator{}
	Trails     = &TrailsGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator TilemapGenerator = Crossroads

// ByName returns the generator with the given config name.
func ByName(name string) (TilemapGenerator, bool) {
	switch name {
	case "", "crossroads":
		return Crossroads, true
	case "trails":
		return Trails, true
	default:
		return nil, false
	}
}
