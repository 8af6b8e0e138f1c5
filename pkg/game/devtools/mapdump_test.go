package devtools

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tileworld/pkg/game/generator"
)

func crossroads(t *testing.T) *generator.Map {
	t.Helper()
	m, err := generator.Crossroads.Generate(rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)
	m.Seed = 1
	return m
}

func TestRows_Crossroads(t *testing.T) {
	lines := Rows(crossroads(t))
	require.Len(t, lines, generator.GridRows)
	for _, line := range lines {
		assert.Len(t, line, generator.GridCols)
	}

	assert.Equal(t, byte(SymbolRoadEnd), lines[0][generator.BandStart])
	assert.Equal(t, byte(SymbolRoadEnd), lines[generator.GridRows-1][generator.BandEnd])
	assert.Equal(t, byte(SymbolRoadEnd), lines[generator.BandStart][0])
	assert.Equal(t, byte(SymbolPath), lines[generator.BandStart+1][generator.BandStart+1])
	assert.Equal(t, byte(SymbolSpawn), lines[15][15])
	assert.Contains(t, []byte{SymbolGrass, SymbolObstacle}, lines[2][2])
}

func TestRows_IncompleteMap(t *testing.T) {
	lines := Rows(&generator.Map{})
	require.Len(t, lines, generator.GridRows)
	assert.Equal(t, strings.Repeat(string(SymbolMissing), generator.GridCols), lines[0])
}

func TestRows_MissingLayerKeepsOthers(t *testing.T) {
	m := crossroads(t)
	m.Obstacles = nil
	lines := Rows(m)
	for _, line := range lines {
		assert.NotContains(t, line, string(SymbolMissing))
		assert.NotContains(t, line, string(SymbolObstacle))
	}
	assert.Equal(t, byte(SymbolPath), lines[generator.BandStart+1][generator.BandStart+1])

	m = crossroads(t)
	m.Grass = nil
	lines = Rows(m)
	assert.Equal(t, byte(SymbolRoadEnd), lines[0][generator.BandStart])
	assert.Equal(t, byte(SymbolPath), lines[generator.BandStart+1][generator.BandStart+1])
	assert.Contains(t, []byte{SymbolMissing, SymbolObstacle}, lines[2][2])
	assert.Equal(t, []string{generator.LayerGrass}, MissingLayers(m))
}

func TestDump_ListsMissingLayers(t *testing.T) {
	m := crossroads(t)
	m.Path = nil
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, m, DumpOptions{}))
	assert.Contains(t, buf.String(), "complete: false")
	assert.Contains(t, buf.String(), "missing_layers: path")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, crossroads(t), DumpOptions{}))

	out := buf.String()
	assert.Contains(t, out, "generator: Crossroads")
	assert.Contains(t, out, "seed: 1")
	assert.Contains(t, out, "complete: true")
	assert.Contains(t, out, "road_ends: up,right,down,left")
	assert.Contains(t, out, "reachable_road_ends: up,right,down,left")
	assert.NotContains(t, out, "\x1b[")
}

func TestDump_NarrowTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, crossroads(t), DumpOptions{Width: 10}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	grid := lines[len(lines)-generator.GridRows:]
	for _, line := range grid {
		assert.Len(t, line, 10)
	}
}

func TestDump_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, crossroads(t), DumpOptions{Color: true}))
	assert.Contains(t, buf.String(), string(SymbolSpawn))
}

func TestDump_NilMap(t *testing.T) {
	assert.Error(t, Dump(&bytes.Buffer{}, nil, DumpOptions{}))
}
