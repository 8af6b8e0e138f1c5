package scenes

import (
	"fmt"
	"math/rand"

	"tileworld/pkg/engine/anim"
	"tileworld/pkg/engine/camera"
	"tileworld/pkg/engine/input"
	"tileworld/pkg/engine/physics"
	"tileworld/pkg/engine/scene"
	"tileworld/pkg/game/gameplay"
	"tileworld/pkg/game/generator"
	"tileworld/pkg/game/i18n"
	"tileworld/pkg/game/state"
)

// ZoomStep is how much one zoom key press changes the camera zoom.
const ZoomStep = 0.25

// World is the playable scene: the generated map, the player, its physics
// and the camera following it. The fields are rebuilt every time the scene
// starts and kept after it stops so the end screens can read the session.
type World struct {
	deps *Deps

	Map     *generator.Map
	Player  *gameplay.Player
	Physics *physics.World
	Camera  *camera.Camera
	Session *state.Session
	// Broken is set when the map could not be fully built. No player is
	// spawned on a broken map.
	Broken bool

	col, row int
	// zoom outlives the camera so a new world keeps the player's last zoom.
	zoom float64
}

func newWorld(deps *Deps) *World {
	return &World{deps: deps, zoom: deps.Options.Zoom}
}

// Hooks returns the lifecycle hooks of the world.
func (w *World) Hooks() scene.Hooks {
	return scene.Hooks{Create: w.create, Update: w.update}
}

func (w *World) create(ctx *scene.Context) {
	opts := w.deps.Options
	seed := opts.Seed
	if seed == 0 {
		seed = w.deps.Now().UnixNano()
	}

	w.Player, w.Physics, w.Session = nil, nil, nil
	w.col, w.row = -1, -1

	m, err := w.deps.Generator.Generate(rand.New(rand.NewSource(seed)), ctx.Log)
	if m != nil {
		m.Seed = seed
	}
	w.Map = m
	w.Broken = err != nil || !m.Complete()

	w.Camera = camera.New(opts.WindowWidth, opts.WindowHeight)
	w.Camera.SetRoundPixels(true)
	w.zoom = w.Camera.SetZoom(w.zoom)

	if w.Broken {
		ctx.Log.Errorw("World has no playable map", "generator", w.deps.Generator.Name(), "seed", seed, "error", err)
		ctx.Events.Emit(EventUIReset, ResetPayload{})
		ctx.Events.Emit(EventMessage, i18n.T("MAP_BROKEN"))
		return
	}

	tm := m.Tilemap
	wpx, hpx := float64(tm.WidthInPixels()), float64(tm.HeightInPixels())

	w.Player = gameplay.NewPlayer(m.SpawnX, m.SpawnY, opts.PlayerSpeed, w.playerClips(ctx))
	w.Physics = physics.NewWorld(wpx, hpx)
	w.Physics.AddCollider(m.Obstacles)

	w.Camera.SetBounds(wpx, hpx)
	w.Camera.StartFollow(w.Player)
	w.Camera.Update()

	w.Session = state.NewSession(tm.Width(), len(m.RoadEndSides()), opts.TimeLimit)

	ctx.Log.Infow("World created",
		"generator", m.Generator,
		"seed", seed,
		"spawnX", m.SpawnX,
		"spawnY", m.SpawnY,
		"roadEnds", w.Session.RoadEndsNeeded(),
	)
	ctx.Events.Emit(EventUIReset, ResetPayload{
		RoadEndsNeeded: w.Session.RoadEndsNeeded(),
		TimeLimit:      opts.TimeLimit,
	})
	ctx.Events.Emit(EventMessage, i18n.T("WORLD_HINT"))
	w.trackCell(ctx)
}

func (w *World) playerClips(ctx *scene.Context) *anim.Set {
	atlas := w.deps.Assets.PlayerAtlas
	if atlas == nil {
		ctx.Log.Warnw("Player atlas not loaded, player is not animated")
		return nil
	}
	clips, err := gameplay.PlayerClips(atlas)
	if err != nil {
		ctx.Log.Warnw("Player clips unavailable", "error", err)
		return nil
	}
	return clips
}

func (w *World) update(ctx *scene.Context, frame *scene.Frame) {
	if ctx.Scenes.IsActive(KeyPause) {
		return
	}
	keys := frame.Input
	if keys.JustPressed(input.ActionBack) {
		_ = ctx.Scenes.Run(KeyPause)
		return
	}
	w.handleZoom(ctx, keys)

	if w.Player == nil {
		return
	}
	w.Player.Steer(keys)
	w.Physics.Step(w.Player.Body, frame.DeltaTime)
	w.Player.Animate(frame.DeltaTime)
	w.Camera.Update()

	w.trackCell(ctx)
	if w.Session.Over() {
		return
	}
	outcome := w.Session.Tick(frame.DeltaTime)
	ctx.Events.Emit(EventClock, ClockPayload{
		Elapsed:   w.Session.ElapsedDuration(),
		Remaining: w.Session.Remaining(),
	})
	w.finish(ctx, outcome)
}

func (w *World) handleZoom(ctx *scene.Context, keys input.Snapshot) {
	zoom := w.Camera.Zoom()
	switch {
	case keys.JustPressed(input.ActionZoomIn):
		zoom += ZoomStep
	case keys.JustPressed(input.ActionZoomOut):
		zoom -= ZoomStep
	case keys.JustPressed(input.ActionZoomReset):
		zoom = camera.DefaultZoom
	default:
		return
	}
	zoom = w.Camera.SetZoom(zoom)
	w.zoom = zoom
	w.Camera.Update()
	ctx.Events.Emit(EventMessage, fmt.Sprintf(i18n.T("ZOOM"), zoom))
	if w.deps.SaveZoom != nil {
		w.deps.SaveZoom(zoom)
	}
}

// trackCell records a visit when the player enters a new cell.
func (w *World) trackCell(ctx *scene.Context) {
	col, row := w.Map.Tilemap.WorldToTile(w.Player.Center())
	if col == w.col && row == w.row {
		return
	}
	w.col, w.row = col, row

	side, roadEnd := w.Map.RoadEnd(col, row)
	v := w.Session.Visit(col, row, side, roadEnd)
	if v.NewCell {
		ctx.Events.Emit(EventScore, ScorePayload{Score: w.Session.Score()})
	}
	if v.RoadEnd {
		ctx.Log.Infow("Road end reached", "side", side.String(), "col", col, "row", row)
		ctx.Events.Emit(EventRoadEnd, RoadEndPayload{
			Side:    side,
			Reached: w.Session.RoadEndsReached(),
			Needed:  w.Session.RoadEndsNeeded(),
		})
		ctx.Events.Emit(EventMessage, fmt.Sprintf(i18n.T("ROAD_END_REACHED"), i18n.T(side.String())))
	}
	w.finish(ctx, v.OutcomeNow)
}

func (w *World) finish(ctx *scene.Context, outcome state.Outcome) {
	switch outcome {
	case state.Won:
		ctx.Log.Infow("Game won", "score", w.Session.Score(), "elapsed", w.Session.ElapsedDuration())
		_ = ctx.Scenes.Switch(KeyWorld, KeyGameWon)
	case state.Lost:
		ctx.Log.Infow("Game over", "score", w.Session.Score())
		_ = ctx.Scenes.Switch(KeyWorld, KeyGameOver)
	}
}

// CurrentCell returns the cell the player stands on, or -1, -1.
func (w *World) CurrentCell() (int, int) {
	return w.col, w.row
}

// RoadEndCells lists the road-end cells of the current map.
func (w *World) RoadEndCells() [][2]int {
	if w.Map == nil || w.Map.Path == nil {
		return nil
	}
	var cells [][2]int
	w.Map.Path.ForEach(func(col, row, _ int) {
		if _, ok := w.Map.RoadEnd(col, row); ok {
			cells = append(cells, [2]int{col, row})
		}
	})
	return cells
}

// Atlas returns the player sprite atlas, or nil before it is loaded.
func (w *World) Atlas() *anim.Atlas {
	return w.deps.Assets.PlayerAtlas
}
