// Package state holds the progress of one play session.
package state

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/zyedidia/generic/mapset"

	"tileworld/pkg/engine/world"
)

// Outcome is how a session ended.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Visit reports what changed when the player stood on a cell.
type Visit struct {
	NewCell bool
	// RoadEnd is set when the cell is a road end whose side was not reached before.
	RoadEnd    bool
	Side       world.Direction
	OutcomeNow Outcome
}

// Session tracks explored cells, reached road ends and the clock.
type Session struct {
	cols int

	visited   *intmap.Map[int, uint32] // cell index -> visit count
	roadEnds  mapset.Set[world.Direction]
	needEnds  int
	elapsed   float64
	timeLimit float64
	outcome   Outcome
}

// NewSession starts a session on a map cols tiles wide. needEnds is the
// number of road-end sides that must be reached to win; timeLimit in
// seconds ends the session as lost, 0 disables it.
func NewSession(cols, needEnds int, timeLimit float64) *Session {
	return &Session{
		cols:      cols,
		visited:   intmap.New[int, uint32](64),
		roadEnds:  mapset.New[world.Direction](),
		needEnds:  needEnds,
		timeLimit: timeLimit,
	}
}

// Score is the number of distinct cells visited.
func (s *Session) Score() int {
	return s.visited.Len()
}

// RoadEndsReached returns how many road-end sides were reached.
func (s *Session) RoadEndsReached() int {
	return s.roadEnds.Size()
}

// RoadEndsNeeded returns how many road-end sides must be reached to win.
func (s *Session) RoadEndsNeeded() int {
	return s.needEnds
}

// ReachedSide reports whether the road end on side d was reached.
func (s *Session) ReachedSide(d world.Direction) bool {
	return s.roadEnds.Has(d)
}

// Elapsed returns the play time in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Remaining returns the seconds left, or -1 without a time limit.
func (s *Session) Remaining() float64 {
	if s.timeLimit <= 0 {
		return -1
	}
	return max(s.timeLimit-s.elapsed, 0)
}

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.outcome != Playing
}

// Tick advances the clock. Running out of time loses the session.
func (s *Session) Tick(dt float64) Outcome {
	if s.Over() {
		return s.outcome
	}
	s.elapsed += dt
	if s.timeLimit > 0 && s.elapsed >= s.timeLimit {
		s.outcome = Lost
	}
	return s.outcome
}

// Visit records the player standing on (col, row). roadEnd and side
// describe whether that cell is a road end.
func (s *Session) Visit(col, row int, side world.Direction, roadEnd bool) Visit {
	v := Visit{Side: side, OutcomeNow: s.outcome}
	if s.Over() {
		return v
	}

	idx := row*s.cols + col
	count, seen := s.visited.Get(idx)
	s.visited.Put(idx, count+1)
	v.NewCell = !seen

	if roadEnd && !s.roadEnds.Has(side) {
		s.roadEnds.Put(side)
		v.RoadEnd = true
		if s.needEnds > 0 && s.roadEnds.Size() >= s.needEnds {
			s.outcome = Won
		}
	}
	v.OutcomeNow = s.outcome
	return v
}

// HasVisited reports whether (col, row) was ever visited.
func (s *Session) HasVisited(col, row int) bool {
	return s.visited.Has(row*s.cols + col)
}

// ElapsedDuration returns the play time as a duration, for display.
func (s *Session) ElapsedDuration() time.Duration {
	return time.Duration(s.elapsed * float64(time.Second)).Round(time.Second)
}
