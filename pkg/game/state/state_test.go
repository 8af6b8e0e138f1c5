package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tileworld/pkg/engine/world"
)

func TestSession_ScoreCountsDistinctCells(t *testing.T) {
	s := NewSession(30, 4, 0)

	assert.True(t, s.Visit(1, 1, 0, false).NewCell)
	assert.False(t, s.Visit(1, 1, 0, false).NewCell)
	assert.True(t, s.Visit(2, 1, 0, false).NewCell)
	s.Visit(1, 2, 0, false)

	assert.Equal(t, 3, s.Score())
	assert.True(t, s.HasVisited(1, 2))
	assert.False(t, s.HasVisited(2, 2))
}

func TestSession_AllRoadEndsWin(t *testing.T) {
	s := NewSession(30, 4, 0)

	v := s.Visit(14, 0, world.Up, true)
	assert.True(t, v.RoadEnd)
	assert.Equal(t, Playing, v.OutcomeNow)

	v = s.Visit(15, 0, world.Up, true)
	assert.False(t, v.RoadEnd, "same side counts once")

	s.Visit(0, 14, world.Left, true)
	s.Visit(29, 14, world.Right, true)
	assert.Equal(t, 3, s.RoadEndsReached())
	assert.False(t, s.Over())

	v = s.Visit(14, 29, world.Down, true)
	assert.True(t, v.RoadEnd)
	assert.Equal(t, Won, v.OutcomeNow)
	assert.True(t, s.Over())
	assert.True(t, s.ReachedSide(world.Down))
}

func TestSession_NoVisitsAfterOver(t *testing.T) {
	s := NewSession(30, 1, 0)
	s.Visit(14, 0, world.Up, true)
	assert.Equal(t, Won, s.Outcome())

	v := s.Visit(3, 3, 0, false)
	assert.False(t, v.NewCell)
	assert.Equal(t, 1, s.Score())
}

func TestSession_TimeLimit(t *testing.T) {
	s := NewSession(30, 4, 10)
	assert.Equal(t, 10.0, s.Remaining())

	assert.Equal(t, Playing, s.Tick(4))
	assert.Equal(t, 6.0, s.Remaining())
	assert.Equal(t, Lost, s.Tick(6))
	assert.Equal(t, 0.0, s.Remaining())

	s.Tick(5)
	assert.Equal(t, 10.0, s.Elapsed(), "clock stops once over")
}

func TestSession_NoTimeLimit(t *testing.T) {
	s := NewSession(30, 4, 0)
	s.Tick(1e6)
	assert.Equal(t, Playing, s.Outcome())
	assert.Equal(t, -1.0, s.Remaining())
}

func TestSession_ElapsedDuration(t *testing.T) {
	s := NewSession(30, 4, 0)
	s.Tick(61.6)
	assert.Equal(t, 62*time.Second, s.ElapsedDuration())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
}
