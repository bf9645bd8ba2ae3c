package output

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/gridsearch/internal/grid"
	"github.com/pfrederiksen/gridsearch/internal/search"
)

// DefaultFrameDelay is the pause after each replayed frame.
const DefaultFrameDelay = 50 * time.Millisecond

// Paint is what a cell looks like in a frame. Later values are drawn on top
// of earlier ones.
type Paint int

const (
	PaintEmpty Paint = iota
	PaintExplored
	PaintWall
	PaintPath
	PaintStart
	PaintTarget
)

// Frame is one picture of a replay.
type Frame struct {
	Step     int
	Grid     *grid.Grid
	Explored []grid.Cell
	Path     []grid.Cell
}

// Renderer draws frames.
type Renderer interface {
	Render(frame Frame) error
}

// Paints resolves every cell of the frame, row-major: explored, then walls
// (static and dynamic), then path, then start and target on top.
func (f Frame) Paints() [][]Paint {
	rows, cols := f.Grid.Rows(), f.Grid.Cols()
	paints := make([][]Paint, rows)
	for r := range paints {
		paints[r] = make([]Paint, cols)
	}

	set := func(cells []grid.Cell, p Paint) {
		for _, c := range cells {
			if f.Grid.Contains(c) {
				paints[c.Row][c.Col] = p
			}
		}
	}
	set(f.Explored, PaintExplored)
	set(f.Grid.Walls(), PaintWall)
	set(f.Path, PaintPath)
	set([]grid.Cell{f.Grid.Start()}, PaintStart)
	set([]grid.Cell{f.Grid.Target()}, PaintTarget)

	return paints
}

// Replay renders one frame per growing prefix of the explored trace, then one
// per growing prefix of the path, pausing delay after each. It stops with the
// context's error when ctx is cancelled.
func Replay(ctx context.Context, r Renderer, g *grid.Grid, res search.Result, delay time.Duration) error {
	step := 0
	emit := func(explored, path []grid.Cell) error {
		step++
		if err := r.Render(Frame{Step: step, Grid: g, Explored: explored, Path: path}); err != nil {
			return fmt.Errorf("failed to render frame %d: %w", step, err)
		}
		return wait(ctx, delay)
	}

	for i := range res.Explored {
		if err := emit(res.Explored[:i+1], nil); err != nil {
			return err
		}
	}
	for i := range res.Path {
		if err := emit(res.Explored, res.Path[:i+1]); err != nil {
			return err
		}
	}
	return nil
}

// FinalFrame renders only the completed picture.
func FinalFrame(r Renderer, g *grid.Grid, res search.Result) error {
	step := len(res.Explored) + len(res.Path)
	return r.Render(Frame{Step: step, Grid: g, Explored: res.Explored, Path: res.Path})
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
