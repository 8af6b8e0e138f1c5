package anim

// Player plays one clip at a time and tracks the current frame.
type Player struct {
	clip     *Clip
	elapsed  float64
	frame    int
	finished bool
}

// Play switches to clip. Playing the clip that is already running keeps its progress.
func (p *Player) Play(clip *Clip) {
	if clip == nil || clip == p.clip {
		return
	}
	p.clip = clip
	p.elapsed = 0
	p.frame = 0
	p.finished = false
}

// Current returns the clip being played, or nil.
func (p *Player) Current() *Clip {
	return p.clip
}

// Advance moves playback forward by dt seconds.
func (p *Player) Advance(dt float64) {
	if p.clip == nil || p.finished || p.clip.FrameRate <= 0 || len(p.clip.Frames) < 2 {
		return
	}

	p.elapsed += dt
	step := 1 / p.clip.FrameRate
	for p.elapsed >= step {
		p.elapsed -= step
		p.frame++
		if p.frame >= len(p.clip.Frames) {
			if p.clip.Loop {
				p.frame = 0
				continue
			}
			p.frame = len(p.clip.Frames) - 1
			p.finished = true
			p.elapsed = 0
			return
		}
	}
}

// FrameIndex returns the index of the current frame within the clip.
func (p *Player) FrameIndex() int {
	return p.frame
}

// Frame returns the current frame reference. ok is false when nothing plays.
func (p *Player) Frame() (ref FrameRef, ok bool) {
	if p.clip == nil || len(p.clip.Frames) == 0 {
		return FrameRef{}, false
	}
	return p.clip.Frames[p.frame], true
}

// Finished reports whether a non-looping clip has reached its last frame.
func (p *Player) Finished() bool {
	return p.finished
}
