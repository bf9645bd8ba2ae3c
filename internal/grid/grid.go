// Package grid models the search space: a fixed-size board of cells with
// static walls and walls that appear while a search is running.
package grid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Default board used by the CLI.
const (
	DefaultRows = 20
	DefaultCols = 20
)

// ErrInvalidGrid is returned for non-positive dimensions or endpoints outside the grid.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid holds the board dimensions, the protected start and target cells, and
// two disjoint obstacle sets. Start and target are never blocked.
type Grid struct {
	rows   int
	cols   int
	start  Cell
	target Cell

	walls        mapset.Set[Cell]
	dynamicWalls mapset.Set[Cell]
}

// New creates an empty grid with the given dimensions and endpoints.
func New(rows, cols int, start, target Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidGrid, rows, cols)
	}

	g := &Grid{
		rows:         rows,
		cols:         cols,
		start:        start,
		target:       target,
		walls:        mapset.New[Cell](),
		dynamicWalls: mapset.New[Cell](),
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start %s outside %dx%d", ErrInvalidGrid, start, rows, cols)
	}
	if !g.Contains(target) {
		return nil, fmt.Errorf("%w: target %s outside %dx%d", ErrInvalidGrid, target, rows, cols)
	}
	return g, nil
}

// NewDefault creates a 20x20 grid from (0,0) to (19,19).
func NewDefault() *Grid {
	g, _ := New(DefaultRows, DefaultCols, Cell{0, 0}, Cell{DefaultRows - 1, DefaultCols - 1})
	return g
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Start() Cell  { return g.start }
func (g *Grid) Target() Cell { return g.target }
func (g *Grid) Size() int    { return g.rows * g.cols }

func (g *Grid) protected(c Cell) bool {
	return c == g.start || c == g.target
}

// InBounds reports whether (r, c) lies on the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Contains is InBounds for a Cell.
func (g *Grid) Contains(c Cell) bool {
	return g.InBounds(c.Row, c.Col)
}

// IsBlocked reports whether c is a static or dynamic wall.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.walls.Has(c) || g.dynamicWalls.Has(c)
}

// AddWall places a static wall. Start, target and out-of-bounds cells are refused.
func (g *Grid) AddWall(c Cell) bool {
	if !g.Contains(c) || g.protected(c) {
		return false
	}
	g.walls.Put(c)
	return true
}

// AddDynamicWall places a wall that appeared during a search. Start, target and
// cells that are already static walls are refused; adding the same cell twice
// is a no-op.
func (g *Grid) AddDynamicWall(c Cell) bool {
	if !g.Contains(c) || g.protected(c) || g.walls.Has(c) {
		return false
	}
	g.dynamicWalls.Put(c)
	return true
}

// DynamicWallCount returns how many walls appeared during the run so far.
func (g *Grid) DynamicWallCount() int {
	return g.dynamicWalls.Size()
}

// Walls returns every blocked cell, static and dynamic, in row-major order.
func (g *Grid) Walls() []Cell {
	cells := make([]Cell, 0, g.walls.Size()+g.dynamicWalls.Size())
	g.walls.Each(func(c Cell) { cells = append(cells, c) })
	g.dynamicWalls.Each(func(c Cell) { cells = append(cells, c) })
	slices.SortFunc(cells, compareCells)
	return cells
}

// Neighbors returns the in-bounds cells one move away from c, in move order.
// Blocked cells are included; callers filter.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Moves))
	for _, m := range Moves {
		r, col := c.Row+m.DRow, c.Col+m.DCol
		if g.InBounds(r, col) {
			out = append(out, Cell{Row: r, Col: col})
		}
	}
	return out
}

func compareCells(a, b Cell) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
