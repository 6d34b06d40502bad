package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/layout"
	"github.com/matzehuels/trieviz/pkg/trie"
)

var seriesWords = [][]string{
	{"trie", "tried", "tries", "tree", "trees", "trek", "trend"},
	{"draw", "drawn", "draft", "drag", "drape", "dream", "drift"},
	{"scan", "scale", "scatter", "score", "screen", "script", "scheme"},
	{"broadcast", "broad", "branch", "bridge", "bright", "bring", "brick"},
	{"complete", "compile", "compute", "compare", "compose", "compact", "combine"},
	{"shrink", "ship", "share", "shape", "sharp", "shift", "shield"},
}

var tileGrid = Grid{Columns: 3, Rows: 2, Padding: 24, Gap: 20}

func seriesBounds() []layout.Bounds {
	bounds := make([]layout.Bounds, len(seriesWords))
	for i, words := range seriesWords {
		bounds[i] = layout.Build(trie.Build(words), 30, 36).Bounds
	}
	return bounds
}

func TestArrangeCanvasFormula(t *testing.T) {
	bounds := seriesBounds()
	c, err := Arrange(bounds, tileGrid)
	require.NoError(t, err)

	wantWidths := make([]float64, 3)
	wantHeights := make([]float64, 2)
	for i, b := range bounds {
		wantWidths[i%3] = max(wantWidths[i%3], b.Width())
		wantHeights[i/3] = max(wantHeights[i/3], b.Height())
	}
	assert.Equal(t, wantWidths, c.ColumnWidths)
	assert.Equal(t, wantHeights, c.RowHeights)

	assert.Equal(t, wantWidths[0]+wantWidths[1]+wantWidths[2]+2*20+2*24, c.Width)
	assert.Equal(t, wantHeights[0]+wantHeights[1]+1*20+2*24, c.Height)
	assert.Len(t, c.Placements, 6)
}

func TestArrangeTreesStayInsideCells(t *testing.T) {
	bounds := seriesBounds()
	c, err := Arrange(bounds, tileGrid)
	require.NoError(t, err)

	for i, p := range c.Placements {
		b := bounds[i]
		assert.Equal(t, i, p.Index)
		assert.Equal(t, i/3, p.Row)
		assert.Equal(t, i%3, p.Column)

		left, top := p.X, p.Y
		right, bottom := p.X+b.Width(), p.Y+b.Height()
		assert.Truef(t, p.Cell.Contains(left, top), "tree %d top-left outside cell", i)
		assert.Truef(t, p.Cell.Contains(right, bottom), "tree %d bottom-right outside cell", i)

		// centered within the cell
		assert.InDelta(t, p.Cell.X+p.Cell.Width/2, (left+right)/2, 1e-9)
		assert.InDelta(t, p.Cell.Y+p.Cell.Height/2, (top+bottom)/2, 1e-9)
	}

	for i := range c.Placements {
		for j := i + 1; j < len(c.Placements); j++ {
			assert.Falsef(t, overlaps(c.Placements[i].Cell, c.Placements[j].Cell), "cells %d and %d overlap", i, j)
		}
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func TestArrangeCellOrigins(t *testing.T) {
	bounds := []layout.Bounds{
		{MinX: 0, MaxX: 100, MaxY: 50},
		{MinX: -10, MaxX: 30, MaxY: 80},
		{MinX: 0, MaxX: 60, MaxY: 10},
	}
	c, err := Arrange(bounds, Grid{Columns: 2, Rows: 2, Padding: 5, Gap: 10})
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 40}, c.ColumnWidths)
	assert.Equal(t, []float64{80, 10}, c.RowHeights)
	assert.Equal(t, 100.0+40+10+10, c.Width)
	assert.Equal(t, 80.0+10+10+10, c.Height)

	assert.Equal(t, Rect{X: 5, Y: 5, Width: 100, Height: 80}, c.Placements[0].Cell)
	assert.Equal(t, Rect{X: 115, Y: 5, Width: 40, Height: 80}, c.Placements[1].Cell)
	assert.Equal(t, Rect{X: 5, Y: 95, Width: 100, Height: 10}, c.Placements[2].Cell)

	assert.Equal(t, 5.0, c.Placements[0].X)
	assert.Equal(t, 20.0, c.Placements[0].Y)
	assert.Equal(t, 115.0, c.Placements[1].X)
	assert.Equal(t, 125.0, c.Placements[1].TranslateX(bounds[1]))
	assert.Equal(t, 25.0, c.Placements[2].X)
	assert.Equal(t, 95.0, c.Placements[2].TranslateY())
}

func TestArrangeEmptyCellsSkipped(t *testing.T) {
	bounds := seriesBounds()[:4]
	c, err := Arrange(bounds, tileGrid)
	require.NoError(t, err)

	assert.Len(t, c.Placements, 4)
	// column 0 has two occupants, columns 1 and 2 one each
	assert.Equal(t, max(bounds[0].Width(), bounds[3].Width()), c.ColumnWidths[0])
	assert.Equal(t, bounds[1].Width(), c.ColumnWidths[1])
	assert.Equal(t, bounds[2].Width(), c.ColumnWidths[2])
	assert.Equal(t, bounds[3].Height(), c.RowHeights[1])
}

func TestArrangeEmptyColumnContributesZero(t *testing.T) {
	bounds := []layout.Bounds{{MaxX: 50, MaxY: 20}}
	c, err := Arrange(bounds, Grid{Columns: 3, Rows: 1, Padding: 10, Gap: 5})
	require.NoError(t, err)

	assert.Equal(t, []float64{50, 0, 0}, c.ColumnWidths)
	assert.Equal(t, 50.0+2*5+2*10, c.Width)
}

func TestArrangeRootOnlyTrees(t *testing.T) {
	bounds := []layout.Bounds{
		layout.Build(trie.Build(nil), 30, 36).Bounds,
		layout.Build(trie.Build(nil), 30, 36).Bounds,
	}
	c, err := Arrange(bounds, Grid{Columns: 2, Rows: 1, Padding: 24, Gap: 20})
	require.NoError(t, err)

	assert.Equal(t, 20.0+48, c.Width)
	assert.Equal(t, 48.0, c.Height)
	assert.Equal(t, 24.0, c.Placements[0].X)
	assert.Equal(t, 44.0, c.Placements[1].X)
}

func TestArrangeNoTrees(t *testing.T) {
	c, err := Arrange(nil, tileGrid)
	require.NoError(t, err)
	assert.Empty(t, c.Placements)
	assert.Equal(t, 2*20.0+48, c.Width)
}

func TestArrangeInvalidGrid(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		count int
	}{
		{"zero columns", Grid{Columns: 0, Rows: 2}, 1},
		{"negative rows", Grid{Columns: 2, Rows: -1}, 1},
		{"too many trees", Grid{Columns: 2, Rows: 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Arrange(make([]layout.Bounds, tt.count), tt.grid)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidGrid))
		})
	}
}
