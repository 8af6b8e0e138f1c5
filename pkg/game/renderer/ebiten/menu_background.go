package ebiten

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"tileworld/pkg/engine/world"
	"tileworld/pkg/game/assets"
	"tileworld/pkg/game/scenes"
)

// initFloatingTiles initializes the floating tiles animation for the title screens.
func (e *EbitenRenderer) initFloatingTiles(screenWidth, screenHeight int) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}

	// Create 30-50 floating tiles
	numTiles := 30 + rand.Intn(21)
	e.floatingTiles = make([]floatingTile, numTiles)

	const tileMovementSpeed = 1.3

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]
		tile.x = rand.Float64() * float64(screenWidth)
		tile.y = rand.Float64() * float64(screenHeight)
		tile.vx = (rand.Float64() - 0.5) * tileMovementSpeed
		tile.vy = (rand.Float64() - 0.5) * tileMovementSpeed
		tile.index = rand.Intn(assets.TilesetColumns)
		tile.alpha = 0.25 + rand.Float64()*0.25
		tile.rotation = rand.Float64() * 2 * math.Pi
		tile.rotationSpeed = (rand.Float64() - 0.5) * 0.026
	}
}

// titleScreenActive reports whether the floating tiles are shown.
func (e *EbitenRenderer) titleScreenActive() bool {
	return e.game.Scenes.IsActive(scenes.KeyMainMenu) || e.game.Scenes.IsActive(scenes.KeyControls)
}

// updateFloatingTiles updates the positions of floating tiles each frame.
func (e *EbitenRenderer) updateFloatingTiles(screenWidth, screenHeight int) {
	if e.floatingTiles == nil {
		e.initFloatingTiles(screenWidth, screenHeight)
	}

	for i := range e.floatingTiles {
		tile := &e.floatingTiles[i]

		tile.x += tile.vx
		tile.y += tile.vy

		// Wrap around screen edges
		if tile.x < 0 {
			tile.x += float64(screenWidth)
		} else if tile.x >= float64(screenWidth) {
			tile.x -= float64(screenWidth)
		}
		if tile.y < 0 {
			tile.y += float64(screenHeight)
		} else if tile.y >= float64(screenHeight) {
			tile.y -= float64(screenHeight)
		}

		tile.rotation = math.Mod(tile.rotation+tile.rotationSpeed+2*math.Pi, 2*math.Pi)

		// Occasional drift changes for more organic movement
		if rand.Float64() < 0.01 {
			tile.vx = max(-1, min(1, tile.vx+(rand.Float64()-0.5)*0.13))
			tile.vy = max(-1, min(1, tile.vy+(rand.Float64()-0.5)*0.13))
		}
	}
}

// drawFloatingTilesBackground draws the floating tiles animation behind the menu.
func (e *EbitenRenderer) drawFloatingTilesBackground(screen *ebiten.Image) {
	ts := &world.Tileset{Columns: assets.TilesetColumns, TileCount: assets.TilesetColumns, TileWidth: assets.TileSize, TileHeight: assets.TileSize}
	half := float64(assets.TileSize) / 2

	for _, tile := range e.floatingTiles {
		img := e.tileImage(ts, tile.index)
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Rotate(tile.rotation)
		op.GeoM.Translate(tile.x, tile.y)
		op.ColorScale.ScaleAlpha(float32(tile.alpha))
		screen.DrawImage(img, op)
	}
}
