package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePlayer struct {
	playing bool
	volume  float64
	plays   int
}

func (f *fakePlayer) Play()               { f.playing = true; f.plays++ }
func (f *fakePlayer) Pause()              { f.playing = false }
func (f *fakePlayer) IsPlaying() bool     { return f.playing }
func (f *fakePlayer) SetVolume(v float64) { f.volume = v }

func TestMusic_PausesOnBlur(t *testing.T) {
	p := &fakePlayer{}
	m := NewMusic(p, true)
	m.Play()
	assert.True(t, m.IsPlaying())

	m.Update(false)
	assert.False(t, m.IsPlaying())
	m.Update(false)
	assert.False(t, m.IsPlaying())

	m.Update(true)
	assert.True(t, m.IsPlaying())
	assert.Equal(t, 2, p.plays)
}

func TestMusic_StoppedStaysStoppedOnFocus(t *testing.T) {
	p := &fakePlayer{}
	m := NewMusic(p, true)
	m.Play()
	m.Update(false)
	m.Stop()
	m.Update(true)
	assert.False(t, m.IsPlaying())
}

func TestMusic_PlayWhileBlurredWaitsForFocus(t *testing.T) {
	p := &fakePlayer{}
	m := NewMusic(p, true)
	m.Update(false)
	m.Play()
	assert.False(t, m.IsPlaying())
	m.Update(true)
	assert.True(t, m.IsPlaying())
}

func TestMusic_IgnoresFocusWhenDisabled(t *testing.T) {
	p := &fakePlayer{}
	m := NewMusic(p, false)
	m.Play()
	m.Update(false)
	assert.True(t, m.IsPlaying())
}

func TestMusic_Mute(t *testing.T) {
	p := &fakePlayer{}
	m := NewMusic(p, true)
	m.SetVolume(0.5)
	assert.Equal(t, 0.5, p.volume)
	m.SetMuted(true)
	assert.Equal(t, 0.0, p.volume)
	assert.True(t, m.Muted())
	m.SetMuted(false)
	assert.Equal(t, 0.5, p.volume)
	m.SetVolume(3)
	assert.Equal(t, 1.0, p.volume)
}

func TestSynthesize(t *testing.T) {
	pcm := Synthesize([]Note{{440, 0.5}, {0, 0.5}}, 0.5)
	// 4 bytes per stereo frame
	assert.Len(t, pcm, SampleRate*4)

	// the rest is silent
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Zero(t, last)

	var peak int16
	for i := 0; i < SampleRate*2; i += 4 {
		if s := int16(binary.LittleEndian.Uint16(pcm[i:])); s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 0.5*32767, float64(peak), 200)
}
