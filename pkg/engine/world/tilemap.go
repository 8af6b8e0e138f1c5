// Package world provides generic 2D tile-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"errors"
	"fmt"
)

// Empty marks a layer cell that holds no tile
const Empty = -1

var (
	// ErrNoTileset is returned when a layer is created without a tileset
	ErrNoTileset = errors.New("world: tileset is nil")
	// ErrLayerExists is returned when a layer name is already taken
	ErrLayerExists = errors.New("world: layer already exists")
	// ErrTilesetExists is returned when a tileset name is already taken
	ErrTilesetExists = errors.New("world: tileset already exists")
)

// Tileset describes a grid of equally-sized tile images addressed by index
type Tileset struct {
	Name       string
	Columns    int
	TileCount  int
	TileWidth  int
	TileHeight int
}

// Contains returns true if the tile index belongs to this tileset
func (ts *Tileset) Contains(index int) bool {
	return ts != nil && index >= 0 && index < ts.TileCount
}

// SourcePosition returns the pixel offset of a tile inside the tileset image
func (ts *Tileset) SourcePosition(index int) (x, y int) {
	if ts == nil || ts.Columns <= 0 {
		return 0, 0
	}
	return (index % ts.Columns) * ts.TileWidth, (index / ts.Columns) * ts.TileHeight
}

// Tilemap is a fixed-size grid of tile cells organised into named layers
type Tilemap struct {
	cols       int
	rows       int
	tileWidth  int
	tileHeight int

	tilesets    map[string]*Tileset
	layers      []*Layer
	layerByName map[string]*Layer
}

// NewTilemap creates an empty tilemap with the given size in tiles and tile size in pixels
func NewTilemap(cols, rows, tileWidth, tileHeight int) *Tilemap {
	if cols <= 0 || rows <= 0 || tileWidth <= 0 || tileHeight <= 0 {
		panic("Tilemap dimensions must be positive")
	}

	return &Tilemap{
		cols:        cols,
		rows:        rows,
		tileWidth:   tileWidth,
		tileHeight:  tileHeight,
		tilesets:    make(map[string]*Tileset),
		layerByName: make(map[string]*Layer),
	}
}

// Width returns the number of columns
func (m *Tilemap) Width() int {
	return m.cols
}

// Height returns the number of rows
func (m *Tilemap) Height() int {
	return m.rows
}

// TileWidth returns the width of one cell in pixels
func (m *Tilemap) TileWidth() int {
	return m.tileWidth
}

// TileHeight returns the height of one cell in pixels
func (m *Tilemap) TileHeight() int {
	return m.tileHeight
}

// WidthInPixels returns the map width in pixels
func (m *Tilemap) WidthInPixels() int {
	return m.cols * m.tileWidth
}

// HeightInPixels returns the map height in pixels
func (m *Tilemap) HeightInPixels() int {
	return m.rows * m.tileHeight
}

// IsValidPosition checks if a col/row position is within the map
func (m *Tilemap) IsValidPosition(col, row int) bool {
	return col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// WorldToTile converts a pixel position to the cell containing it
func (m *Tilemap) WorldToTile(x, y float64) (col, row int) {
	col = int(x) / m.tileWidth
	row = int(y) / m.tileHeight
	if x < 0 {
		col = -1
	}
	if y < 0 {
		row = -1
	}
	return col, row
}

// TileToWorld returns the pixel position of the top-left corner of a cell
func (m *Tilemap) TileToWorld(col, row int) (x, y float64) {
	return float64(col * m.tileWidth), float64(row * m.tileHeight)
}

// AddTileset registers a tileset with the map
func (m *Tilemap) AddTileset(name string, columns, tileCount int) (*Tileset, error) {
	if columns <= 0 || tileCount <= 0 {
		return nil, fmt.Errorf("world: tileset %q has invalid size %dx%d", name, columns, tileCount)
	}
	if _, found := m.tilesets[name]; found {
		return nil, fmt.Errorf("%w: %s", ErrTilesetExists, name)
	}

	ts := &Tileset{
		Name:       name,
		Columns:    columns,
		TileCount:  tileCount,
		TileWidth:  m.tileWidth,
		TileHeight: m.tileHeight,
	}
	m.tilesets[name] = ts
	return ts, nil
}

// Tileset returns a tileset by name, or nil if not found
func (m *Tilemap) Tileset(name string) *Tileset {
	return m.tilesets[name]
}

// CreateBlankLayer adds a new layer filled with Empty cells
func (m *Tilemap) CreateBlankLayer(name string, ts *Tileset) (*Layer, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: layer %s", ErrNoTileset, name)
	}
	if _, found := m.layerByName[name]; found {
		return nil, fmt.Errorf("%w: %s", ErrLayerExists, name)
	}

	l := newLayer(name, ts, m.cols, m.rows, m.tileWidth, m.tileHeight)
	m.layers = append(m.layers, l)
	m.layerByName[name] = l
	return l, nil
}

// Layer returns a layer by name, or nil if not found
func (m *Tilemap) Layer(name string) *Layer {
	return m.layerByName[name]
}

// Layers returns all layers in creation (draw) order
func (m *Tilemap) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}
