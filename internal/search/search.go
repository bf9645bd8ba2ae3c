// Package search implements six uninformed graph searches over a grid.Grid:
// breadth-first, depth-first, uniform-cost, depth-limited, iterative-deepening
// and bidirectional breadth-first.
//
// Every search records the order in which cells leave its frontier (the
// explored trace) alongside the final path. An obstacle policy runs once per
// expansion, so walls can appear while the search is in progress. Blockage is
// checked only when a cell is enqueued: a cell that becomes a wall after it
// was enqueued is still expanded.
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pfrederiksen/gridsearch/internal/grid"
)

// Algorithm identifies one of the six searches.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	UCS
	DLS
	IDDFS
	Bidirectional
)

// DefaultDepthLimit bounds DLS when no limit is given.
const DefaultDepthLimit = 30

// ErrUnknownAlgorithm is returned for identifiers outside the closed set.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algorithmNames = map[Algorithm]string{
	BFS:           "bfs",
	DFS:           "dfs",
	UCS:           "ucs",
	DLS:           "dls",
	IDDFS:         "iddfs",
	Bidirectional: "bi",
}

// Algorithms lists every algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, DLS, IDDFS, Bidirectional}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps bfs|dfs|ucs|dls|iddfs|bi to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for alg, n := range algorithmNames {
		if n == name {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (must be bfs, dfs, ucs, dls, iddfs or bi)", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	alg, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// Result is the outcome of one search run.
type Result struct {
	Algorithm Algorithm
	Start     grid.Cell
	Goal      grid.Cell

	// Path runs start→goal inclusive; empty when the goal was not reached.
	Path []grid.Cell
	// Explored lists cells in the order they left the frontier.
	Explored []grid.Cell

	Parents     Parents
	GoalParents Parents // bidirectional only

	// Meet is where the two bidirectional frontiers touched.
	Meet *grid.Cell
}

// Found reports whether a path was produced.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// Cost is the path cost under grid.StepCost.
func (r Result) Cost() float64 {
	return grid.PathCost(r.Path)
}

// Options configures a Run.
type Options struct {
	Obstacles  grid.ObstaclePolicy
	DepthLimit int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithObstacles sets the policy invoked once per expansion.
func WithObstacles(policy grid.ObstaclePolicy) Option {
	return func(o *Options) { o.Obstacles = policy }
}

// WithDepthLimit sets the DLS depth bound.
func WithDepthLimit(limit int) Option {
	return func(o *Options) { o.DepthLimit = limit }
}

// Run executes alg on g from start to goal.
func Run(alg Algorithm, g *grid.Grid, start, goal grid.Cell, options ...Option) (Result, error) {
	opts := Options{
		Obstacles:  grid.NoObstacles{},
		DepthLimit: DefaultDepthLimit,
	}
	for _, option := range options {
		option(&opts)
	}

	slog.Debug("Starting search",
		"algorithm", alg,
		"start", start,
		"goal", goal,
		"depthLimit", opts.DepthLimit)

	var res Result
	switch alg {
	case BFS:
		res = SearchBFS(g, start, goal, opts.Obstacles)
	case DFS:
		res = SearchDFS(g, start, goal, opts.Obstacles)
	case UCS:
		res = SearchUCS(g, start, goal, opts.Obstacles)
	case DLS:
		res = SearchDLS(g, start, goal, opts.DepthLimit, opts.Obstacles)
	case IDDFS:
		res = SearchIDDFS(g, start, goal, opts.Obstacles)
	case Bidirectional:
		res = SearchBidirectional(g, start, goal, opts.Obstacles)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}

	slog.Debug("Search complete",
		"algorithm", alg,
		"found", res.Found(),
		"explored", len(res.Explored),
		"pathLength", len(res.Path),
		"dynamicWalls", g.DynamicWallCount())

	return res, nil
}
