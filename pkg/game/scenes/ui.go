package scenes

import (
	"slices"
	"time"

	"tileworld/pkg/engine/scene"
	"tileworld/pkg/engine/world"
)

// MessageDuration is how long a UI message stays on screen, in seconds.
const MessageDuration = 2.5

// UI is the HUD overlay. It only knows what the world tells it through
// events.
type UI struct {
	Score          int
	RoadEnds       int
	RoadEndsNeeded int
	Sides          []world.Direction
	Elapsed        time.Duration
	// Remaining is negative without a time limit.
	Remaining float64
	TimeLimit float64

	Message    string
	messageTTL float64

	offs []func()
}

func newUI() *UI {
	return &UI{Remaining: -1}
}

// Hooks returns the lifecycle hooks of the UI overlay.
func (u *UI) Hooks() scene.Hooks {
	return scene.Hooks{Create: u.create, Update: u.update, Shutdown: u.shutdown}
}

func (u *UI) create(ctx *scene.Context) {
	u.reset(ResetPayload{})
	u.offs = []func(){
		ctx.Events.On(EventUIReset, func(p any) {
			if r, ok := p.(ResetPayload); ok {
				u.reset(r)
			}
		}),
		ctx.Events.On(EventScore, func(p any) {
			if s, ok := p.(ScorePayload); ok {
				u.Score = s.Score
			}
		}),
		ctx.Events.On(EventRoadEnd, func(p any) {
			if r, ok := p.(RoadEndPayload); ok {
				u.RoadEnds = r.Reached
				u.RoadEndsNeeded = r.Needed
				u.Sides = append(u.Sides, r.Side)
			}
		}),
		ctx.Events.On(EventClock, func(p any) {
			if c, ok := p.(ClockPayload); ok {
				u.Elapsed = c.Elapsed
				u.Remaining = c.Remaining
			}
		}),
		ctx.Events.On(EventMessage, func(p any) {
			if msg, ok := p.(string); ok {
				u.Message = msg
				u.messageTTL = MessageDuration
			}
		}),
	}
}

func (u *UI) update(_ *scene.Context, frame *scene.Frame) {
	if u.messageTTL <= 0 {
		return
	}
	u.messageTTL -= frame.DeltaTime
	if u.messageTTL <= 0 {
		u.Message = ""
		u.messageTTL = 0
	}
}

func (u *UI) shutdown(_ *scene.Context) {
	for _, off := range u.offs {
		off()
	}
	u.offs = nil
}

func (u *UI) reset(r ResetPayload) {
	u.Score = 0
	u.RoadEnds = 0
	u.RoadEndsNeeded = r.RoadEndsNeeded
	u.Sides = nil
	u.Elapsed = 0
	u.TimeLimit = r.TimeLimit
	u.Remaining = -1
	if r.TimeLimit > 0 {
		u.Remaining = r.TimeLimit
	}
	u.Message = ""
	u.messageTTL = 0
}

// ReachedSide reports whether the road end on side d was reported reached.
func (u *UI) ReachedSide(d world.Direction) bool {
	return slices.Contains(u.Sides, d)
}
