package audio

import (
	"encoding/binary"
	"math"
)

// Note is one step of a generated melody. A zero Freq is a rest.
type Note struct {
	Freq     float64 // Hz
	Duration float64 // seconds
}

// Theme is the default background loop.
var Theme = []Note{
	{262, 0.25}, {330, 0.25}, {392, 0.25}, {523, 0.25},
	{392, 0.25}, {330, 0.25}, {294, 0.5},
	{0, 0.25},
	{247, 0.25}, {294, 0.25}, {392, 0.25}, {494, 0.25},
	{392, 0.25}, {294, 0.25}, {262, 0.5},
	{0, 0.25},
}

// Synthesize renders notes as 16-bit little-endian stereo PCM at SampleRate.
// Each note is a sine wave with a short linear attack and release so
// consecutive notes do not click.
func Synthesize(notes []Note, gain float64) []byte {
	const fade = 0.01 // seconds
	var buf []byte
	for _, n := range notes {
		samples := int(n.Duration * SampleRate)
		fadeSamples := int(fade * SampleRate)
		for i := 0; i < samples; i++ {
			var v float64
			if n.Freq > 0 {
				env := 1.0
				if i < fadeSamples {
					env = float64(i) / float64(fadeSamples)
				} else if samples-i < fadeSamples {
					env = float64(samples-i) / float64(fadeSamples)
				}
				v = math.Sin(2*math.Pi*n.Freq*float64(i)/SampleRate) * env * gain
			}
			s := int16(v * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}
