package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ x, y float64 }

func (p *point) Center() (float64, float64) { return p.x, p.y }

func TestFollowCentersOnTarget(t *testing.T) {
	c := New(320, 240)
	c.SetBounds(960, 960)
	p := &point{480, 480}
	c.StartFollow(p)
	c.Update()

	assert.Equal(t, 320.0, c.X)
	assert.Equal(t, 360.0, c.Y)

	sx, sy := c.WorldToScreen(p.x, p.y)
	assert.Equal(t, 160.0, sx)
	assert.Equal(t, 120.0, sy)
}

func TestFollowClampsToBounds(t *testing.T) {
	c := New(320, 240)
	c.SetBounds(960, 960)
	p := &point{10, 950}
	c.StartFollow(p)
	c.Update()

	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 720.0, c.Y)
}

func TestSmallWorldIsCentred(t *testing.T) {
	c := New(800, 600)
	c.SetBounds(400, 600)
	c.StartFollow(&point{0, 0})
	c.Update()

	assert.Equal(t, -200.0, c.X)
	assert.Equal(t, 0.0, c.Y)
}

func TestZoom(t *testing.T) {
	c := New(320, 240)
	assert.Equal(t, MaxZoom, c.SetZoom(10))
	assert.Equal(t, MinZoom, c.SetZoom(0))
	c.SetZoom(2)

	w, h := c.ViewSize()
	assert.Equal(t, 160.0, w)
	assert.Equal(t, 120.0, h)

	c.SetBounds(960, 960)
	c.StartFollow(&point{480, 480})
	c.Update()
	sx, sy := c.WorldToScreen(480, 480)
	assert.Equal(t, 160.0, sx)
	assert.Equal(t, 120.0, sy)

	wx, wy := c.ScreenToWorld(sx, sy)
	assert.Equal(t, 480.0, wx)
	assert.Equal(t, 480.0, wy)
}

func TestStopFollowKeepsPosition(t *testing.T) {
	c := New(100, 100)
	p := &point{200, 200}
	c.StartFollow(p)
	c.Update()
	c.StopFollow()
	p.x = 900
	c.Update()
	assert.Equal(t, 150.0, c.X)
}

func TestRoundPixels(t *testing.T) {
	c := New(100, 100)
	c.SetRoundPixels(true)
	c.StartFollow(&point{100.4, 100.6})
	c.Update()
	assert.Equal(t, 50.0, c.X)
	assert.Equal(t, 51.0, c.Y)
}
