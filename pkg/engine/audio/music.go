// Package audio controls looping background music. The backend player is
// an Ebitengine *audio.Player in the running game.
package audio

// SampleRate used for the shared audio context.
const SampleRate = 44100

// Player is the subset of an Ebitengine audio player that Music drives.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
}

// Music is a looping track that can pause while the window is unfocused.
type Music struct {
	player      Player
	pauseOnBlur bool
	volume      float64

	wanted  bool // Play was called and Stop was not
	blurred bool
	muted   bool
}

// NewMusic wraps a player whose stream already loops.
func NewMusic(p Player, pauseOnBlur bool) *Music {
	return &Music{player: p, pauseOnBlur: pauseOnBlur, volume: 1}
}

// Play starts or resumes the track. While blurred it starts on refocus.
func (m *Music) Play() {
	m.wanted = true
	if !m.blurred {
		m.player.Play()
	}
}

// Stop pauses the track until Play is called again.
func (m *Music) Stop() {
	m.wanted = false
	m.player.Pause()
}

// IsPlaying reports whether sound is currently being produced.
func (m *Music) IsPlaying() bool {
	return m.player.IsPlaying()
}

// SetVolume sets the volume in [0, 1]. Muting overrides it.
func (m *Music) SetVolume(v float64) {
	m.volume = min(max(v, 0), 1)
	m.applyVolume()
}

// SetMuted silences the track without stopping it.
func (m *Music) SetMuted(muted bool) {
	m.muted = muted
	m.applyVolume()
}

// Muted reports whether the track is muted.
func (m *Music) Muted() bool {
	return m.muted
}

func (m *Music) applyVolume() {
	if m.muted {
		m.player.SetVolume(0)
		return
	}
	m.player.SetVolume(m.volume)
}

// Update is called once per frame with the window focus state.
func (m *Music) Update(focused bool) {
	if !m.pauseOnBlur {
		return
	}
	switch {
	case !focused && !m.blurred:
		m.blurred = true
		if m.player.IsPlaying() {
			m.player.Pause()
		}
	case focused && m.blurred:
		m.blurred = false
		if m.wanted {
			m.player.Play()
		}
	}
}
