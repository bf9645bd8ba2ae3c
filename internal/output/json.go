package output

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/pfrederiksen/gridsearch/internal/grid"
	"github.com/pfrederiksen/gridsearch/internal/search"
)

// Report is the JSON form of one run
type Report struct {
	RunID        string           `json:"runId"`
	Algorithm    search.Algorithm `json:"algorithm"`
	Rows         int              `json:"rows"`
	Cols         int              `json:"cols"`
	Seed         int64            `json:"seed"`
	ObstacleProb float64          `json:"obstacleProb"`
	Start        grid.Cell        `json:"start"`
	Target       grid.Cell        `json:"target"`
	Found        bool             `json:"found"`
	Moves        int              `json:"moves"`
	Cost         float64          `json:"cost"`
	Meet         *grid.Cell       `json:"meet,omitempty"`
	Walls        []grid.Cell      `json:"walls"`
	Explored     []grid.Cell      `json:"explored"`
	Path         []grid.Cell      `json:"path"`
}

// NewReport captures res and the final obstacle layout of g.
func NewReport(g *grid.Grid, res search.Result, seed int64, obstacleProb float64) Report {
	moves := 0
	if res.Found() {
		moves = len(res.Path) - 1
	}
	return Report{
		RunID:        uuid.NewString(),
		Algorithm:    res.Algorithm,
		Rows:         g.Rows(),
		Cols:         g.Cols(),
		Seed:         seed,
		ObstacleProb: obstacleProb,
		Start:        res.Start,
		Target:       res.Goal,
		Found:        res.Found(),
		Moves:        moves,
		Cost:         res.Cost(),
		Meet:         res.Meet,
		Walls:        nonNil(g.Walls()),
		Explored:     nonNil(res.Explored),
		Path:         nonNil(res.Path),
	}
}

// RenderJSON renders the report as JSON
func RenderJSON(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func nonNil(cells []grid.Cell) []grid.Cell {
	if cells == nil {
		return []grid.Cell{}
	}
	return cells
}
