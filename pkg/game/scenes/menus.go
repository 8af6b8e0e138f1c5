package scenes

import (
	"fmt"

	"tileworld/pkg/engine/input"
	"tileworld/pkg/engine/scene"
	"tileworld/pkg/game/i18n"
	"tileworld/pkg/game/menu"
)

// MainMenu is the title screen.
type MainMenu struct {
	Menu *menu.Menu
}

func newMainMenu() *MainMenu {
	return &MainMenu{}
}

// Hooks returns the lifecycle hooks of the main menu.
func (m *MainMenu) Hooks() scene.Hooks {
	return scene.Hooks{
		Create: func(ctx *scene.Context) {
			m.Menu = menu.NewMainMenu(func(a menu.MainMenuAction) { m.choose(ctx, a) })
		},
		Update: func(_ *scene.Context, frame *scene.Frame) {
			m.Menu.Update(frame.Input)
		},
	}
}

func (m *MainMenu) choose(ctx *scene.Context, a menu.MainMenuAction) {
	switch a {
	case menu.MainMenuActionStart:
		ctx.Log.Infow("Starting game")
		startWorld(ctx, KeyMainMenu)
	case menu.MainMenuActionControls:
		_ = ctx.Scenes.Switch(KeyMainMenu, KeyControls)
	case menu.MainMenuActionQuit:
		ctx.Log.Infow("Quit requested")
		ctx.Scenes.Quit()
	}
}

// Controls lets the player rebind actions.
type Controls struct {
	deps *Deps
	Menu *menu.BindingsMenu
}

func newControls(deps *Deps) *Controls {
	return &Controls{deps: deps}
}

// Hooks returns the lifecycle hooks of the controls screen.
func (c *Controls) Hooks() scene.Hooks {
	return scene.Hooks{
		Create: func(ctx *scene.Context) {
			changed := func(a input.Action, code string) {
				ctx.Log.Infow("Binding changed", "action", input.ActionName(a), "code", code)
				if c.deps.SaveBinding != nil {
					c.deps.SaveBinding(a, code)
				}
			}
			back := func() { _ = ctx.Scenes.Switch(KeyControls, KeyMainMenu) }
			c.Menu = menu.NewBindingsMenu(c.deps.Bindings, changed, back)
		},
		Update: func(_ *scene.Context, frame *scene.Frame) {
			c.Menu.Update(frame.Input, frame.Codes)
		},
	}
}

// Pause is the menu shown over a paused world.
type Pause struct {
	Menu *menu.Menu
}

func newPause() *Pause {
	return &Pause{}
}

// Hooks returns the lifecycle hooks of the pause menu.
func (p *Pause) Hooks() scene.Hooks {
	return scene.Hooks{
		Create: func(ctx *scene.Context) {
			p.Menu = menu.NewPauseMenu(func(a menu.PauseMenuAction) {
				switch a {
				case menu.PauseMenuActionResume:
					_ = ctx.Scenes.Stop(KeyPause)
				case menu.PauseMenuActionQuitToTitle:
					toMainMenu(ctx, KeyWorld)
				}
			})
		},
		Update: func(ctx *scene.Context, frame *scene.Frame) {
			if frame.Input.JustPressed(input.ActionBack) {
				_ = ctx.Scenes.Stop(KeyPause)
				return
			}
			p.Menu.Update(frame.Input)
		},
	}
}

// EndScreen is the game-over or game-won screen.
type EndScreen struct {
	key   scene.Key
	won   bool
	world *World

	Menu *menu.Menu
}

func newEndScreen(key scene.Key, won bool, w *World) *EndScreen {
	return &EndScreen{key: key, won: won, world: w}
}

// Won reports whether this is the game-won screen.
func (e *EndScreen) Won() bool {
	return e.won
}

// Hooks returns the lifecycle hooks of the end screen.
func (e *EndScreen) Hooks() scene.Hooks {
	return scene.Hooks{
		Create: func(ctx *scene.Context) {
			choose := func(a menu.EndMenuAction) {
				switch a {
				case menu.EndMenuActionRetry:
					_ = ctx.Scenes.Switch(e.key, KeyWorld)
				case menu.EndMenuActionMainMenu:
					toMainMenu(ctx, e.key)
				}
			}
			h := menu.NewGameOverHandler(e.subtitle(), choose)
			if e.won {
				h = menu.NewGameWonHandler(e.subtitle(), choose)
			}
			e.Menu = menu.NewEndMenu(h)
		},
		Update: func(_ *scene.Context, frame *scene.Frame) {
			e.Menu.Update(frame.Input)
		},
	}
}

func (e *EndScreen) subtitle() string {
	s := e.world.Session
	if s == nil {
		return ""
	}
	if e.won {
		return fmt.Sprintf(i18n.T("GAME_WON_SUBTITLE"), s.ElapsedDuration().String())
	}
	return fmt.Sprintf(i18n.T("GAME_OVER_SUBTITLE"), s.Score())
}
