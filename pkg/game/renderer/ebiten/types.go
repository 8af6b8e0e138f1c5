// Package ebiten provides the Ebitengine runtime for the game: input
// polling, drawing of every scene and the background music.
package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"tileworld/pkg/engine/audio"
	engineinput "tileworld/pkg/engine/input"
	"tileworld/pkg/game/config"
	"tileworld/pkg/game/scenes"
)

// Options configures the renderer.
type Options struct {
	Title   string
	Version string
	Config  config.Options
}

// menuRow is the screen rectangle of one menu item, recorded while drawing
// so the mouse can hover it on the next frame.
type menuRow struct {
	index int
	rect  image.Rectangle
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	game     *scenes.Game
	bindings *engineinput.Bindings
	log      *zap.SugaredLogger
	opts     Options

	// Window dimensions
	windowWidth  int
	windowHeight int

	tick uint64

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when the window size changes)
	cachedUIFontSize        float64
	cachedSansFace          *text.GoTextFace
	cachedSansBoldTitleFace *text.GoTextFace
	cachedSansBoldTitleSize float64
	cachedMonoUIFace        *text.GoTextFace
	cachedMonoUIFontSize    float64

	// Sprite sheets, nil until their loader ran
	tilesetImage *ebiten.Image
	playerImage  *ebiten.Image

	// Codes held on the previous frame, for edge detection
	prevHeld mapset.Set[string]

	// Menu rows from the last drawn menu
	menuRows []menuRow
	cursor   image.Point

	music *audio.Music

	// Background animation for the title screens
	floatingTiles []floatingTile
}

// floatingTile represents a single tile in the background animation
type floatingTile struct {
	x, y          float64 // Position
	vx, vy        float64 // Velocity
	index         int     // Tileset index
	alpha         float64 // Opacity (0.0 to 1.0)
	rotation      float64 // Rotation angle in radians
	rotationSpeed float64
}

