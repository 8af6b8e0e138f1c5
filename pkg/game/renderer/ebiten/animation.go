package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulse returns a brightness oscillating between lo and hi over period
// using a sine wave.
func pulse(period time.Duration, lo, hi float64) float64 {
	now := time.Now().UnixMilli()
	ms := period.Milliseconds()
	phase := float64(now%ms) / float64(ms)
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// scaleColor multiplies the RGB channels of c by brightness.
func scaleColor(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * brightness),
		uint8(float64(c.G) * brightness),
		uint8(float64(c.B) * brightness),
		c.A,
	}
}

// getPulsingRoadEndColor returns the outline color of a road end. Ends
// not reached yet pulse between 50% and 100% brightness.
func getPulsingRoadEndColor(reached bool) color.RGBA {
	if reached {
		return colorRoadEndReached
	}
	return scaleColor(colorRoadEnd, pulse(2*time.Second, 0.5, 1.0))
}
