package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/gridsearch/internal/grid"
)

type cell = grid.Cell

func newGrid(t *testing.T, rows, cols int, walls ...cell) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, cell{Row: 0, Col: 0}, cell{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)
	for _, w := range walls {
		require.True(t, g.AddWall(w), "wall %s", w)
	}
	return g
}

func run(t *testing.T, alg Algorithm, g *grid.Grid, start, goal cell, opts ...Option) Result {
	t.Helper()
	res, err := Run(alg, g, start, goal, opts...)
	require.NoError(t, err)
	return res
}

// assertValidPath checks endpoints, bounds and move legality.
func assertValidPath(t *testing.T, g *grid.Grid, res Result) {
	t.Helper()
	require.NotEmpty(t, res.Path, "%s found no path", res.Algorithm)
	assert.Equal(t, res.Start, res.Path[0])
	assert.Equal(t, res.Goal, res.Path[len(res.Path)-1])
	for i, c := range res.Path {
		assert.True(t, g.Contains(c), "%s out of bounds", c)
		if i > 0 {
			assert.True(t, grid.IsMove(res.Path[i-1], c), "%s -> %s is not a move", res.Path[i-1], c)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "bfs", want: BFS},
		{in: "dfs", want: DFS},
		{in: "ucs", want: UCS},
		{in: "dls", want: DLS},
		{in: "iddfs", want: IDDFS},
		{in: "bi", want: Bidirectional},
		{in: " BFS ", want: BFS},
		{in: "astar", wantErr: true},
		{in: "", wantErr: true},
		{in: "bidirectional", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Algorithm {
	t.Helper()
	alg, err := ParseAlgorithm(s)
	require.NoError(t, err)
	return alg
}

func TestRunUnknownAlgorithm(t *testing.T) {
	_, err := Run(Algorithm(42), newGrid(t, 3, 3), cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestExplorationOrder(t *testing.T) {
	start, goal := cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2}

	tests := []struct {
		alg      Algorithm
		opts     []Option
		explored []cell
		path     []cell
	}{
		{
			alg:      BFS,
			explored: []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
			path:     []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			alg:      DFS,
			explored: []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
			path:     []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
		},
		{
			alg:      UCS,
			explored: []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
			path:     []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			alg:      DLS,
			opts:     []Option{WithDepthLimit(2)},
			explored: []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
			path:     []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			alg: IDDFS,
			explored: []cell{
				{Row: 0, Col: 0},
				{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
				{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 2},
			},
			path: []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
		{
			alg:      Bidirectional,
			explored: []cell{{Row: 0, Col: 0}, {Row: 2, Col: 2}},
			path:     []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			res := run(t, tt.alg, newGrid(t, 3, 3), start, goal, tt.opts...)
			assert.Equal(t, tt.explored, res.Explored)
			assert.Equal(t, tt.path, res.Path)
		})
	}
}

func TestBFSShortestPath(t *testing.T) {
	res := run(t, BFS, newGrid(t, 3, 3), cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2})
	assert.Len(t, res.Path, 3, "two moves along the diagonal")

	// Down-left is not a move, so (0,2) -> (2,0) needs four steps.
	res = run(t, BFS, newGrid(t, 3, 3), cell{Row: 0, Col: 2}, cell{Row: 2, Col: 0})
	assert.Len(t, res.Path, 5)
}

func TestDLSDepthLimit(t *testing.T) {
	g := newGrid(t, 3, 3)
	res := run(t, DLS, g, cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2}, WithDepthLimit(1))
	assert.Empty(t, res.Path)
	assert.Equal(t, []cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}, res.Explored)

	for limit := 0; limit < 4; limit++ {
		res := run(t, DLS, newGrid(t, 5, 5), cell{Row: 0, Col: 0}, cell{Row: 4, Col: 4}, WithDepthLimit(limit))
		assert.Empty(t, res.Path, "limit %d is below the 4-move shortest path", limit)
	}
}

func TestSmallOpenGrid(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := newGrid(t, 5, 5)
			res := run(t, alg, g, cell{Row: 0, Col: 0}, cell{Row: 4, Col: 4})
			assertValidPath(t, g, res)
			assert.Equal(t, cell{Row: 4, Col: 4}, res.Path[len(res.Path)-1])
		})
	}
}

func TestStartEqualsGoal(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			res := run(t, alg, newGrid(t, 5, 5), cell{Row: 2, Col: 2}, cell{Row: 2, Col: 2})
			assert.Equal(t, []cell{{Row: 2, Col: 2}}, res.Path)
			assert.Equal(t, []cell{{Row: 2, Col: 2}}, res.Explored)
		})
	}
}

func TestUnreachableGoal(t *testing.T) {
	// (2,2) is walled off on every side a move can come from.
	walls := []cell{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 1}}

	for _, alg := range Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g := newGrid(t, 3, 3, walls...)
			res := run(t, alg, g, cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2})
			assert.Empty(t, res.Path)
			assert.False(t, res.Found())
			assert.NotEmpty(t, res.Explored)
			if alg != Bidirectional {
				// Bidirectional pops the goal as the root of its second frontier.
				assert.NotContains(t, res.Explored, cell{Row: 2, Col: 2})
			}
		})
	}
}

func TestPathExistenceAgrees(t *testing.T) {
	layouts := map[string][]cell{
		"open":    nil,
		"maze":    {{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}, {Row: 4, Col: 4}, {Row: 3, Col: 4}, {Row: 2, Col: 4}, {Row: 1, Col: 4}},
		"sealed":  {{Row: 5, Col: 4}, {Row: 4, Col: 5}, {Row: 4, Col: 4}},
		"pocket":  {{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}},
		"barrier": {{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5}},
	}

	for name, walls := range layouts {
		t.Run(name, func(t *testing.T) {
			want := run(t, BFS, newGrid(t, 6, 6, walls...), cell{Row: 0, Col: 0}, cell{Row: 5, Col: 5}).Found()
			for _, alg := range []Algorithm{DFS, UCS, IDDFS, Bidirectional} {
				g := newGrid(t, 6, 6, walls...)
				res := run(t, alg, g, cell{Row: 0, Col: 0}, cell{Row: 5, Col: 5})
				assert.Equal(t, want, res.Found(), "%s disagrees with bfs", alg)
				if res.Found() {
					assertValidPath(t, g, res)
				}
			}
		})
	}
}

func TestUCSNoCostlierThanBFS(t *testing.T) {
	walls := []cell{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 5, Col: 4}, {Row: 6, Col: 4}, {Row: 7, Col: 4}}
	for _, goal := range []cell{{Row: 9, Col: 9}, {Row: 0, Col: 9}, {Row: 9, Col: 0}, {Row: 4, Col: 7}} {
		bfs := run(t, BFS, newGrid(t, 10, 10, walls...), cell{Row: 0, Col: 0}, goal)
		ucs := run(t, UCS, newGrid(t, 10, 10, walls...), cell{Row: 0, Col: 0}, goal)
		require.True(t, bfs.Found())
		require.True(t, ucs.Found())
		assert.LessOrEqual(t, ucs.Cost(), bfs.Cost()+1e-9, "goal %s", goal)
	}
}

func TestUCSPrefersDiagonal(t *testing.T) {
	res := run(t, UCS, newGrid(t, 4, 4), cell{Row: 0, Col: 0}, cell{Row: 3, Col: 3})
	assert.InDelta(t, 3*1.414, res.Cost(), 1e-9)
}

func TestBidirectionalMeetsOnce(t *testing.T) {
	for _, size := range []int{4, 5, 8, 20} {
		g := newGrid(t, size, size)
		res := run(t, Bidirectional, g, cell{Row: 0, Col: 0}, cell{Row: size - 1, Col: size - 1})
		assertValidPath(t, g, res)
		require.NotNil(t, res.Meet)

		count := 0
		for _, c := range res.Path {
			if c == *res.Meet {
				count++
			}
		}
		assert.Equal(t, 1, count, "meeting cell %s on %dx%d", *res.Meet, size, size)
		assert.True(t, res.Parents.Has(*res.Meet))
		assert.True(t, res.GoalParents.Has(*res.Meet))
	}
}

func TestIDDFSTerminatesWhenUnreachable(t *testing.T) {
	g := newGrid(t, 4, 4, cell{Row: 3, Col: 2}, cell{Row: 2, Col: 3}, cell{Row: 2, Col: 2})
	res := run(t, IDDFS, g, cell{Row: 0, Col: 0}, cell{Row: 3, Col: 3})
	assert.Empty(t, res.Path)
	assert.NotEmpty(t, res.Explored)
}

func TestDynamicObstacles(t *testing.T) {
	t.Run("seeded runs repeat", func(t *testing.T) {
		for _, alg := range Algorithms() {
			a, b := grid.NewDefault(), grid.NewDefault()
			ra := run(t, alg, a, a.Start(), a.Target(), WithObstacles(grid.NewRandomObstacles(0.2, 99)))
			rb := run(t, alg, b, b.Start(), b.Target(), WithObstacles(grid.NewRandomObstacles(0.2, 99)))
			assert.Equal(t, ra.Explored, rb.Explored, "%s", alg)
			assert.Equal(t, ra.Path, rb.Path, "%s", alg)
			assert.Equal(t, a.Walls(), b.Walls(), "%s", alg)
		}
	})

	t.Run("policy runs once per expansion", func(t *testing.T) {
		calls := 0
		policy := grid.PolicyFunc(func(*grid.Grid) { calls++ })
		res := run(t, BFS, newGrid(t, 3, 3), cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2}, WithObstacles(policy))
		// Every popped cell except the goal is expanded.
		assert.Equal(t, len(res.Explored)-1, calls)
	})

	t.Run("blockage checked only at enqueue", func(t *testing.T) {
		// Wall (1,1) right after the first expansion has enqueued it.
		g := newGrid(t, 3, 3)
		first := true
		policy := grid.PolicyFunc(func(g *grid.Grid) {
			if !first {
				g.AddDynamicWall(cell{Row: 1, Col: 1})
			}
			first = false
		})
		res := run(t, BFS, g, cell{Row: 0, Col: 0}, cell{Row: 2, Col: 2}, WithObstacles(policy))
		assert.True(t, g.IsBlocked(cell{Row: 1, Col: 1}))
		assert.Contains(t, res.Explored, cell{Row: 1, Col: 1}, "already-queued cell is still expanded")
		assert.Equal(t, []cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	})

	t.Run("paths stay legal under random walls", func(t *testing.T) {
		for _, alg := range Algorithms() {
			g := grid.NewDefault()
			res := run(t, alg, g, g.Start(), g.Target(), WithObstacles(grid.NewRandomObstacles(0.05, 2024)))
			if res.Found() {
				assertValidPath(t, g, res)
			}
		}
	})
}
