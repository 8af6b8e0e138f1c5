package scenes

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"tileworld/pkg/engine/input"
	"tileworld/pkg/engine/scene"
	"tileworld/pkg/game/assets"
	"tileworld/pkg/game/config"
	"tileworld/pkg/game/generator"
)

// Deps is everything the scenes need from the outside.
type Deps struct {
	Options   config.Options
	Bindings  *input.Bindings
	Generator generator.TilemapGenerator
	Assets    *assets.Store
	Loaders   []assets.Loader

	// Now seeds map generation when Options.Seed is 0.
	Now func() time.Time

	// Optional persistence callbacks.
	SaveZoom    func(z float64)
	SaveBinding func(a input.Action, code string)
}

// Game owns the scene manager and every scene.
type Game struct {
	Scenes *scene.Manager
	log    *zap.SugaredLogger

	Loading  *Loading
	MainMenu *MainMenu
	Controls *Controls
	World    *World
	UI       *UI
	Pause    *Pause
	GameOver *EndScreen
	GameWon  *EndScreen
}

// New creates the game and registers its scenes. Nothing runs until Boot.
func New(deps Deps, log *zap.SugaredLogger) (*Game, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if deps.Bindings == nil {
		deps.Bindings = input.NewBindings()
	}
	if deps.Generator == nil {
		deps.Generator = generator.DefaultGenerator
	}
	if deps.Assets == nil {
		deps.Assets = &assets.Store{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	d := &deps

	g := &Game{
		Scenes:   scene.NewManager(log),
		log:      log,
		Loading:  newLoading(d),
		MainMenu: newMainMenu(),
		Controls: newControls(d),
		World:    newWorld(d),
		UI:       newUI(),
		Pause:    newPause(),
	}
	g.GameOver = newEndScreen(KeyGameOver, false, g.World)
	g.GameWon = newEndScreen(KeyGameWon, true, g.World)

	scenes := []struct {
		key   scene.Key
		hooks scene.Hooks
	}{
		{KeyLoading, g.Loading.Hooks()},
		{KeyMainMenu, g.MainMenu.Hooks()},
		{KeyControls, g.Controls.Hooks()},
		{KeyWorld, g.World.Hooks()},
		{KeyUI, g.UI.Hooks()},
		{KeyPause, g.Pause.Hooks()},
		{KeyGameOver, g.GameOver.Hooks()},
		{KeyGameWon, g.GameWon.Hooks()},
	}
	for _, s := range scenes {
		if err := g.Scenes.Register(s.key, s.hooks); err != nil {
			return nil, fmt.Errorf("scenes: %w", err)
		}
	}
	return g, nil
}

// Boot starts the loading screen.
func (g *Game) Boot() error {
	g.log.Infow("Booting", "generator", g.World.deps.Generator.Name())
	return g.Scenes.Start(KeyLoading)
}

// Update runs one frame.
func (g *Game) Update(frame *scene.Frame) {
	g.Scenes.Update(frame)
}

// Quitting reports whether a scene asked the game to exit.
func (g *Game) Quitting() bool {
	return g.Scenes.Quitting()
}
