package world

// Layer is a 2D grid of tile indices rendered as one visual plane
type Layer struct {
	name       string
	tileset    *Tileset
	cols       int
	rows       int
	tileWidth  int
	tileHeight int

	tiles    [][]int
	collides [][]bool
}

func newLayer(name string, ts *Tileset, cols, rows, tileWidth, tileHeight int) *Layer {
	l := &Layer{
		name:       name,
		tileset:    ts,
		cols:       cols,
		rows:       rows,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      make([][]int, rows),
		collides:   make([][]bool, rows),
	}
	for row := 0; row < rows; row++ {
		l.tiles[row] = make([]int, cols)
		l.collides[row] = make([]bool, cols)
		for col := range l.tiles[row] {
			l.tiles[row][col] = Empty
		}
	}
	return l
}

// Name returns the layer name
func (l *Layer) Name() string {
	return l.name
}

// Tileset returns the tileset the layer draws from
func (l *Layer) Tileset() *Tileset {
	return l.tileset
}

// Width returns the number of columns
func (l *Layer) Width() int {
	return l.cols
}

// Height returns the number of rows
func (l *Layer) Height() int {
	return l.rows
}

func (l *Layer) inBounds(col, row int) bool {
	return col >= 0 && col < l.cols && row >= 0 && row < l.rows
}

// TileAt returns the tile index at a cell. ok is false when out of bounds.
func (l *Layer) TileAt(col, row int) (index int, ok bool) {
	if !l.inBounds(col, row) {
		return Empty, false
	}
	return l.tiles[row][col], true
}

// HasTileAt returns true if the cell holds a tile
func (l *Layer) HasTileAt(col, row int) bool {
	index, ok := l.TileAt(col, row)
	return ok && index != Empty
}

// PutTileAt places a tile at a cell. Returns false if out of bounds.
func (l *Layer) PutTileAt(index, col, row int) bool {
	if !l.inBounds(col, row) {
		return false
	}
	l.tiles[row][col] = index
	if index == Empty {
		l.collides[row][col] = false
	}
	return true
}

// RemoveTileAt empties a cell. Returns false if out of bounds.
func (l *Layer) RemoveTileAt(col, row int) bool {
	return l.PutTileAt(Empty, col, row)
}

// Fill sets every cell of the rectangle to index, clipped to the layer
func (l *Layer) Fill(index, col, row, width, height int) {
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			l.PutTileAt(index, c, r)
		}
	}
}

// SetCollisionByExclusion marks every non-empty cell whose index is not excluded
// as collidable. Returns the number of collidable cells.
func (l *Layer) SetCollisionByExclusion(exclude ...int) int {
	skip := make(map[int]bool, len(exclude))
	for _, idx := range exclude {
		skip[idx] = true
	}

	count := 0
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			index := l.tiles[row][col]
			collides := index != Empty && !skip[index]
			l.collides[row][col] = collides
			if collides {
				count++
			}
		}
	}
	return count
}

// SetCollision sets the collision flag on one cell
func (l *Layer) SetCollision(col, row int, collides bool) {
	if l.inBounds(col, row) {
		l.collides[row][col] = collides
	}
}

// IsCollidable returns true if the cell blocks movement
func (l *Layer) IsCollidable(col, row int) bool {
	return l.inBounds(col, row) && l.collides[row][col]
}

// OverlapsCollidable returns true if the pixel rectangle touches any collidable cell
func (l *Layer) OverlapsCollidable(x, y, w, h float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}

	// Right and bottom edges are exclusive so a body flush against a tile does not collide
	startCol := floorDiv(x, l.tileWidth)
	endCol := floorDiv(x+w-1e-9, l.tileWidth)
	startRow := floorDiv(y, l.tileHeight)
	endRow := floorDiv(y+h-1e-9, l.tileHeight)

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			if l.IsCollidable(col, row) {
				return true
			}
		}
	}
	return false
}

// ForEach iterates over all cells in row-major order
func (l *Layer) ForEach(fn func(col, row, index int)) {
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			fn(col, row, l.tiles[row][col])
		}
	}
}

// CountTiles returns how many cells hold the given index
func (l *Layer) CountTiles(index int) int {
	n := 0
	l.ForEach(func(_, _, i int) {
		if i == index {
			n++
		}
	})
	return n
}

func floorDiv(v float64, size int) int {
	q := v / float64(size)
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
