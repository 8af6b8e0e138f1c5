package gameplay

import (
	"tileworld/pkg/engine/anim"
	"tileworld/pkg/engine/physics"
	"tileworld/pkg/engine/world"
)

// Player body size in pixels. Smaller than a tile so the player fits
// through one-tile gaps between obstacles.
const (
	PlayerWidth  = 24
	PlayerHeight = 24
)

// Player is the controllable entity: an arcade body, a facing direction
// and the animation currently shown.
type Player struct {
	Body      *physics.Body
	Direction world.Direction
	Moving    bool
	Speed     float64

	clips *anim.Set
	Anim  anim.Player
}

// NewPlayer creates a player centred on (x, y), facing down and idle.
func NewPlayer(x, y, speed float64, clips *anim.Set) *Player {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	p := &Player{
		Body:      physics.NewBody(x, y, PlayerWidth, PlayerHeight),
		Direction: world.Down,
		Speed:     speed,
		clips:     clips,
	}
	p.Body.CollideWorldBounds = true
	p.Anim.Play(p.clip())
	return p
}

// Steer applies this frame's keys: velocity, direction and clip.
func (p *Player) Steer(keys Keys) MovementState {
	s := StepMovement(keys, p.Direction, p.Speed)
	p.Direction = s.Direction
	p.Moving = s.Moving
	p.Body.SetVelocity(s.VX, s.VY)
	p.Anim.Play(p.clip())
	return s
}

// Animate advances the current clip by dt seconds.
func (p *Player) Animate(dt float64) {
	p.Anim.Advance(dt)
}

// ClipKey returns the key of the clip matching the current state.
func (p *Player) ClipKey() anim.Key {
	return anim.Key{Direction: p.Direction, Moving: p.Moving}
}

// Clip returns the clip being played, or nil without a clip set.
func (p *Player) Clip() *anim.Clip {
	return p.Anim.Current()
}

// Center returns the centre of the player body.
func (p *Player) Center() (float64, float64) {
	return p.Body.Center()
}

func (p *Player) clip() *anim.Clip {
	if p.clips == nil {
		return nil
	}
	return p.clips.Clip(p.ClipKey())
}
