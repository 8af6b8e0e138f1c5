package generator

import (
	"github.com/zyedidia/generic/mapset"

	"tileworld/pkg/engine/world"
)

// walkable reports whether the player can stand on (col, row).
func walkable(m *Map, col, row int) bool {
	if !m.Tilemap.IsValidPosition(col, row) {
		return false
	}
	return m.Obstacles == nil || !m.Obstacles.IsCollidable(col, row)
}

// Reachable returns the cells, as row*width+col, that can be walked to from
// (col, row) in four-direction steps without crossing an obstacle.
func Reachable(m *Map, col, row int) mapset.Set[int] {
	visited := mapset.New[int]()
	if m == nil || m.Tilemap == nil || !walkable(m, col, row) {
		return visited
	}
	width := m.Tilemap.Width()

	type cell struct{ col, row int }
	queue := []cell{{col, row}}
	visited.Put(row*width + col)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range world.AllDirections() {
			dc, dr := d.Delta()
			next := cell{current.col + dc, current.row + dr}
			idx := next.row*width + next.col
			if !walkable(m, next.col, next.row) || visited.Has(idx) {
				continue
			}
			visited.Put(idx)
			queue = append(queue, next)
		}
	}
	return visited
}

// ReachableRoadEndSides lists the edges with at least one road end that
// can be walked to from the spawn point.
func ReachableRoadEndSides(m *Map) []world.Direction {
	if !m.Complete() {
		return nil
	}
	col, row := m.Tilemap.WorldToTile(m.SpawnX, m.SpawnY)
	reached := Reachable(m, col, row)
	width := m.Tilemap.Width()

	var seen [world.DirectionCount]bool
	m.Path.ForEach(func(c, r, _ int) {
		if d, ok := m.RoadEnd(c, r); ok && reached.Has(r*width+c) {
			seen[d] = true
		}
	})
	var sides []world.Direction
	for _, d := range world.AllDirections() {
		if seen[d] {
			sides = append(sides, d)
		}
	}
	return sides
}
