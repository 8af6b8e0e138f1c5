// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"tileworld/pkg/engine/terminal"
	"tileworld/pkg/engine/world"
	"tileworld/pkg/game/generator"
)

// Cell symbols used by the map dump.
const (
	SymbolGrass    = '.'
	SymbolPath     = '='
	SymbolObstacle = '#'
	SymbolRoadEnd  = 'E'
	SymbolSpawn    = '@'
	SymbolMissing  = '?'
)

var (
	styleGrass    = color.Style{color.FgGreen}
	stylePath     = color.Style{color.FgYellow}
	styleObstacle = color.Style{color.FgGray, color.OpBold}
	styleRoadEnd  = color.Style{color.FgMagenta, color.OpBold}
	styleSpawn    = color.Style{color.FgCyan, color.OpBold}
	styleMissing  = color.Style{color.FgRed, color.OpBold}
	styleHeading  = color.Style{color.FgBlue, color.OpBold}
)

// DumpOptions controls how a map is printed.
type DumpOptions struct {
	// Color wraps every glyph in ANSI colour codes.
	Color bool
	// Width is the terminal width in characters. Columns that do not fit are
	// cut off. Zero prints every column.
	Width int
}

// CellSymbol returns the glyph for (col, row), ignoring the spawn overlay.
// Obstacles win over paths, paths over grass. Missing layers are skipped, so
// a cell is only '?' when no built layer covers it.
func CellSymbol(m *generator.Map, col, row int) rune {
	switch {
	case m.Obstacles != nil && m.Obstacles.HasTileAt(col, row):
		return SymbolObstacle
	case m.Path != nil && m.Path.HasTileAt(col, row):
		if _, ok := m.RoadEnd(col, row); ok {
			return SymbolRoadEnd
		}
		return SymbolPath
	case m.Grass != nil && m.Grass.HasTileAt(col, row):
		return SymbolGrass
	default:
		return SymbolMissing
	}
}

// MissingLayers names the layers of m that were not built.
func MissingLayers(m *generator.Map) []string {
	var missing []string
	if m.Grass == nil {
		missing = append(missing, generator.LayerGrass)
	}
	if m.Path == nil {
		missing = append(missing, generator.LayerPath)
	}
	if m.Obstacles == nil {
		missing = append(missing, generator.LayerObstacles)
	}
	return missing
}

func styleFor(sym rune) color.Style {
	switch sym {
	case SymbolGrass:
		return styleGrass
	case SymbolPath:
		return stylePath
	case SymbolObstacle:
		return styleObstacle
	case SymbolRoadEnd:
		return styleRoadEnd
	case SymbolSpawn:
		return styleSpawn
	default:
		return styleMissing
	}
}

// Rows renders the map as one string per tile row without colour.
func Rows(m *generator.Map) []string {
	return rows(m, DumpOptions{})
}

func rows(m *generator.Map, opts DumpOptions) []string {
	cols, height := generator.GridCols, generator.GridRows
	if m != nil && m.Tilemap != nil {
		cols, height = m.Tilemap.Width(), m.Tilemap.Height()
	}
	if opts.Width > 0 {
		cols = terminal.FitColumns(opts.Width, 1, cols)
	}

	spawnCol, spawnRow := -1, -1
	if m != nil && m.Tilemap != nil {
		spawnCol, spawnRow = m.Tilemap.WorldToTile(m.SpawnX, m.SpawnY)
	}

	out := make([]string, 0, height)
	var sb strings.Builder
	for row := 0; row < height; row++ {
		sb.Reset()
		for col := 0; col < cols; col++ {
			sym := SymbolMissing
			if m != nil {
				sym = CellSymbol(m, col, row)
			}
			if col == spawnCol && row == spawnRow {
				sym = SymbolSpawn
			}
			if opts.Color {
				sb.WriteString(styleFor(sym).Sprint(string(sym)))
			} else {
				sb.WriteRune(sym)
			}
		}
		out = append(out, sb.String())
	}
	return out
}

func sideNames(sides []world.Direction) string {
	names := make([]string, len(sides))
	for i, d := range sides {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

// Dump writes a header, a legend and the grid of m to w.
func Dump(w io.Writer, m *generator.Map, opts DumpOptions) error {
	if m == nil {
		return fmt.Errorf("devtools: no map")
	}
	bw := bufio.NewWriter(w)

	heading := func(s string) {
		if opts.Color {
			s = styleHeading.Sprint(s)
		}
		fmt.Fprintln(bw, s)
	}

	heading("--- Map ---")
	fmt.Fprintf(bw, "generator: %s\n", m.Generator)
	fmt.Fprintf(bw, "seed: %d\n", m.Seed)
	fmt.Fprintf(bw, "complete: %v\n", m.Complete())
	if missing := MissingLayers(m); len(missing) > 0 {
		fmt.Fprintf(bw, "missing_layers: %s\n", strings.Join(missing, ","))
	}
	if m.Tilemap != nil {
		col, row := m.Tilemap.WorldToTile(m.SpawnX, m.SpawnY)
		fmt.Fprintf(bw, "grid: %dx%d\n", m.Tilemap.Width(), m.Tilemap.Height())
		fmt.Fprintf(bw, "spawn: %.0f,%.0f (col %d, row %d)\n", m.SpawnX, m.SpawnY, col, row)
	}
	fmt.Fprintf(bw, "road_ends: %s\n", sideNames(m.RoadEndSides()))
	fmt.Fprintf(bw, "reachable_road_ends: %s\n", sideNames(generator.ReachableRoadEndSides(m)))
	if m.Complete() {
		fmt.Fprintf(bw, "path_tiles: %d\n", m.Path.CountTiles(generator.TilePath))
		fmt.Fprintf(bw, "obstacles: %d\n", m.Obstacles.CountTiles(generator.TileObstacle))
	}
	fmt.Fprintln(bw)

	heading("--- Legend ---")
	fmt.Fprintf(bw, "%c grass  %c path  %c obstacle  %c road end  %c spawn  %c missing layer\n",
		SymbolGrass, SymbolPath, SymbolObstacle, SymbolRoadEnd, SymbolSpawn, SymbolMissing)
	fmt.Fprintln(bw)

	for _, line := range rows(m, opts) {
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}
