package scenes

import (
	"tileworld/pkg/engine/scene"
	"tileworld/pkg/game/assets"
)

// Loading runs the asset loaders, one per frame, then moves on to the main
// menu, or straight into the world when the menu is skipped.
type Loading struct {
	deps   *Deps
	next   int
	failed int
	done   bool
}

func newLoading(deps *Deps) *Loading {
	return &Loading{deps: deps}
}

// Hooks returns the lifecycle hooks of the loading screen.
func (l *Loading) Hooks() scene.Hooks {
	return scene.Hooks{Create: l.create, Update: l.update}
}

func (l *Loading) create(ctx *scene.Context) {
	l.next = 0
	l.failed = 0
	l.done = false
	ctx.Log.Infow("Loading assets", "count", len(l.deps.Loaders))
}

func (l *Loading) update(ctx *scene.Context, _ *scene.Frame) {
	if l.done {
		return
	}
	if l.next < len(l.deps.Loaders) {
		l.run(ctx, l.deps.Loaders[l.next])
		l.next++
		return
	}

	l.done = true
	if l.failed > 0 {
		ctx.Log.Warnw("Some assets failed to load", "failed", l.failed)
	}
	if l.deps.Options.SkipMenu {
		startWorld(ctx, KeyLoading)
		return
	}
	_ = ctx.Scenes.Switch(KeyLoading, KeyMainMenu)
}

func (l *Loading) run(ctx *scene.Context, loader assets.Loader) {
	if loader.Load == nil {
		return
	}
	if err := loader.Load(); err != nil {
		l.failed++
		ctx.Log.Errorw("Asset failed to load", "asset", loader.Name, "error", err)
		return
	}
	ctx.Log.Debugw("Asset loaded", "asset", loader.Name)
}

// Progress returns the fraction of loaders that have run, in [0, 1].
func (l *Loading) Progress() float64 {
	if len(l.deps.Loaders) == 0 {
		return 1
	}
	return float64(l.next) / float64(len(l.deps.Loaders))
}

// startWorld switches from the current scene to the world. The UI overlay
// starts first so it is listening when the world announces itself.
func startWorld(ctx *scene.Context, from scene.Key) {
	_ = ctx.Scenes.Run(KeyUI)
	_ = ctx.Scenes.Switch(from, KeyWorld)
}

// toMainMenu switches from the current scene to the main menu and stops
// the overlays.
func toMainMenu(ctx *scene.Context, from scene.Key) {
	_ = ctx.Scenes.Stop(KeyPause)
	_ = ctx.Scenes.Stop(KeyUI)
	_ = ctx.Scenes.Switch(from, KeyMainMenu)
}
