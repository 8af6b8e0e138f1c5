package world

// Direction represents one of the four facing directions of a sprite
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// DirectionCount is the number of valid directions, usable as an array length
const DirectionCount = 4

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the lower-case name of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is one of the four cardinal directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
