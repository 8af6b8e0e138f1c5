package gameplay

import (
	"fmt"

	"tileworld/pkg/engine/anim"
	"tileworld/pkg/engine/world"
)

// Player atlas frame names.
var (
	PlayerIdleFrames = []string{"player_0"}
	PlayerWalkFrames = []string{"player_0", "player_1", "player_2", "player_1"}
)

const (
	walkFrameRate = 10
	idleFrameRate = 1
)

// PlayerClips builds the eight player clips from the player atlas.
// Left-facing clips mirror the right-facing frames.
func PlayerClips(atlas *anim.Atlas) (*anim.Set, error) {
	idle := atlas.FramesNamed(PlayerIdleFrames...)
	walk := atlas.FramesNamed(PlayerWalkFrames...)
	if err := atlas.Resolve(append(idle, walk...)...); err != nil {
		return nil, fmt.Errorf("player clips: %w", err)
	}

	set := &anim.Set{}
	for _, d := range world.AllDirections() {
		for _, moving := range []bool{false, true} {
			key := anim.Key{Direction: d, Moving: moving}
			clip := &anim.Clip{
				Name:      key.ClipName(),
				Frames:    idle,
				FrameRate: idleFrameRate,
				Loop:      true,
				FlipX:     d == world.Left,
			}
			if moving {
				clip.Frames = walk
				clip.FrameRate = walkFrameRate
			}
			if err := set.Define(key, clip); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
