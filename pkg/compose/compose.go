// Package compose arranges several laid-out trees into one grid.
//
// # Overview
//
// The background tile shows many small tries side by side. [Arrange] takes
// the measured [layout.Bounds] of each tree and assigns it a cell in a
// rectangular grid, filled in row-major order.
//
// Cells adapt to content: a column is as wide as its widest tree and a row
// as tall as its tallest tree. Each tree is centered in its cell. The
// canvas is the sum of the column widths plus the gaps between columns
// plus padding on both sides, and likewise for rows.
//
//	width  = Σ columnWidths + gap×(columns-1) + 2×padding
//	height = Σ rowHeights   + gap×(rows-1)    + 2×padding
//
// Cells beyond the last tree are left empty. A column or row with no tree
// at all contributes zero to the canvas size (the gaps remain).
package compose

import (
	"github.com/matzehuels/trieviz/pkg/errors"
	"github.com/matzehuels/trieviz/pkg/layout"
)

// Grid describes the tile shape.
type Grid struct {
	Columns, Rows int
	Padding       float64 // Outer margin on every side
	Gap           float64 // Space between neighbouring cells
}

// Cells returns the number of slots in the grid.
func (g Grid) Cells() int { return g.Columns * g.Rows }

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Placement positions one tree.
type Placement struct {
	Index       int     // Position of the tree in the input
	Row, Column int     // Grid coordinates
	Cell        Rect    // The cell the tree occupies
	X, Y        float64 // Where the tree's (MinX, 0) corner lands on the canvas
}

// TranslateX returns the horizontal translation that moves tree
// coordinates onto the canvas.
func (p Placement) TranslateX(b layout.Bounds) float64 { return p.X - b.MinX }

// TranslateY returns the vertical translation that moves tree coordinates
// onto the canvas.
func (p Placement) TranslateY() float64 { return p.Y }

// Composition is the result of arranging trees on a grid.
type Composition struct {
	Width, Height float64
	ColumnWidths  []float64
	RowHeights    []float64
	Placements    []Placement // One per tree, in input order
}

// Arrange places trees with the given bounds on grid. It fails with
// [errors.ErrCodeInvalidGrid] when the grid has no cells or is too small
// for the number of trees.
func Arrange(bounds []layout.Bounds, grid Grid) (Composition, error) {
	if grid.Columns <= 0 || grid.Rows <= 0 {
		return Composition{}, errors.New(errors.ErrCodeInvalidGrid,
			"grid must have positive columns and rows, got %dx%d", grid.Columns, grid.Rows)
	}
	if len(bounds) > grid.Cells() {
		return Composition{}, errors.New(errors.ErrCodeInvalidGrid,
			"%d trees do not fit a %dx%d grid", len(bounds), grid.Columns, grid.Rows)
	}

	c := Composition{
		ColumnWidths: make([]float64, grid.Columns),
		RowHeights:   make([]float64, grid.Rows),
	}
	for i, b := range bounds {
		row, col := i/grid.Columns, i%grid.Columns
		c.ColumnWidths[col] = max(c.ColumnWidths[col], b.Width())
		c.RowHeights[row] = max(c.RowHeights[row], b.Height())
	}

	c.Width = span(c.ColumnWidths, grid.Gap) + 2*grid.Padding
	c.Height = span(c.RowHeights, grid.Gap) + 2*grid.Padding

	c.Placements = make([]Placement, len(bounds))
	for i, b := range bounds {
		row, col := i/grid.Columns, i%grid.Columns
		cell := Rect{
			X:      offset(grid.Padding, c.ColumnWidths, col, grid.Gap),
			Y:      offset(grid.Padding, c.RowHeights, row, grid.Gap),
			Width:  c.ColumnWidths[col],
			Height: c.RowHeights[row],
		}
		c.Placements[i] = Placement{
			Index:  i,
			Row:    row,
			Column: col,
			Cell:   cell,
			X:      cell.X + (cell.Width-b.Width())/2,
			Y:      cell.Y + (cell.Height-b.Height())/2,
		}
	}
	return c, nil
}

// span returns the total extent of sizes laid end to end with gap between
// neighbours.
func span(sizes []float64, gap float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total + gap*float64(len(sizes)-1)
}

// offset returns where slot i starts when the first slot starts at start.
func offset(start float64, sizes []float64, i int, gap float64) float64 {
	pos := start
	for _, s := range sizes[:i] {
		pos += s + gap
	}
	return pos
}
