package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	engineinput "tileworld/pkg/engine/input"
	"tileworld/pkg/game/scenes"
)

// New creates a renderer. The game is attached by Run so the renderer's
// loaders can be handed to the scenes first.
func New(opts Options, bindings *engineinput.Bindings, log *zap.SugaredLogger) *EbitenRenderer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &EbitenRenderer{
		bindings:     bindings,
		log:          log,
		opts:         opts,
		windowWidth:  opts.Config.WindowWidth,
		windowHeight: opts.Config.WindowHeight,
		prevHeld:     mapset.New[string](),
	}
}

// Run boots g and runs the Ebiten game loop until a scene quits or the
// window is closed.
func (e *EbitenRenderer) Run(g *scenes.Game) error {
	e.game = g
	if err := e.loadFonts(); err != nil {
		return err
	}
	if err := g.Boot(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	e.log.Infow("Opening main window", "width", e.windowWidth, "height", e.windowHeight)
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	e.log.Infow("Main window closed", "error", err)
	return err
}

// Update polls input and runs one frame of the scenes (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.game.Quitting() {
		return ebiten.Termination
	}

	e.game.Update(e.pollFrame())

	if e.music != nil {
		e.music.Update(ebiten.IsFocused())
	}
	if e.titleScreenActive() {
		e.updateFloatingTiles(e.windowWidth, e.windowHeight)
	}

	if e.game.Quitting() {
		return ebiten.Termination
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
		e.floatingTiles = nil
	}
	if cam := e.game.World.Camera; cam != nil {
		cam.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
