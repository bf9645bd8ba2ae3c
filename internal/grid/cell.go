package grid

import "fmt"

// Cell is a (row, column) coordinate on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String provides a string representation of Cell
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders cells by row, then column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Offset is a single move on the grid.
type Offset struct {
	Name string
	DRow int
	DCol int
}

// Moves is the fixed move set, in generation order. Down-left and up-right
// are not part of it.
var Moves = []Offset{
	{Name: "up", DRow: -1, DCol: 0},
	{Name: "right", DRow: 0, DCol: 1},
	{Name: "down-right", DRow: 1, DCol: 1},
	{Name: "down", DRow: 1, DCol: 0},
	{Name: "left", DRow: 0, DCol: -1},
	{Name: "up-left", DRow: -1, DCol: -1},
}

const (
	orthogonalCost = 1.0
	diagonalCost   = 1.414
)

// IsMove reports whether b is reachable from a with a single move.
func IsMove(a, b Cell) bool {
	for _, m := range Moves {
		if a.Row+m.DRow == b.Row && a.Col+m.DCol == b.Col {
			return true
		}
	}
	return false
}

// StepCost is the cost of moving from a to an adjacent cell b.
func StepCost(a, b Cell) float64 {
	if abs(a.Row-b.Row) == 1 && abs(a.Col-b.Col) == 1 {
		return diagonalCost
	}
	return orthogonalCost
}

// PathCost sums StepCost along path.
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += StepCost(path[i-1], path[i])
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
