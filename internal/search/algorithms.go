package search

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"

	"github.com/pfrederiksen/gridsearch/internal/grid"
)

// SearchBFS expands level by level from start.
func SearchBFS(g *grid.Grid, start, goal grid.Cell, obstacles grid.ObstaclePolicy) Result {
	e := expansion{grid: g, obstacles: obstacles, discipline: FIFO, limit: unlimited}
	return e.result(BFS, start, goal)
}

// SearchDFS follows the first move as deep as it goes before backtracking.
func SearchDFS(g *grid.Grid, start, goal grid.Cell, obstacles grid.ObstaclePolicy) Result {
	e := expansion{grid: g, obstacles: obstacles, discipline: LIFO, limit: unlimited}
	return e.result(DFS, start, goal)
}

// SearchUCS always expands the cheapest known cell. Diagonal steps cost 1.414.
func SearchUCS(g *grid.Grid, start, goal grid.Cell, obstacles grid.ObstaclePolicy) Result {
	e := expansion{grid: g, obstacles: obstacles, discipline: Priority, weighted: true, limit: unlimited}
	return e.result(UCS, start, goal)
}

// SearchDLS is DFS that does not expand cells at depth limit.
func SearchDLS(g *grid.Grid, start, goal grid.Cell, limit int, obstacles grid.ObstaclePolicy) Result {
	if limit < 0 {
		limit = 0
	}
	e := expansion{grid: g, obstacles: obstacles, discipline: LIFO, limit: limit}
	return e.result(DLS, start, goal)
}

// SearchIDDFS runs DLS with limits 0, 1, 2, ... up to the number of cells and
// returns the first run that reaches goal. The explored trace concatenates
// every run; walls added by earlier runs stay in place.
func SearchIDDFS(g *grid.Grid, start, goal grid.Cell, obstacles grid.ObstaclePolicy) Result {
	res := Result{Algorithm: IDDFS, Start: start, Goal: goal}
	for depth := 0; depth < g.Size(); depth++ {
		run := SearchDLS(g, start, goal, depth, obstacles)
		res.Explored = append(res.Explored, run.Explored...)
		res.Parents = run.Parents
		if run.Found() {
			res.Path = run.Path
			return res
		}
	}
	return res
}

// SearchBidirectional runs BFS from both ends, one expansion per side per
// round, and stops as soon as one side enqueues a cell the other side has
// already discovered.
func SearchBidirectional(g *grid.Grid, start, goal grid.Cell, obstacles grid.ObstaclePolicy) Result {
	res := Result{
		Algorithm:   Bidirectional,
		Start:       start,
		Goal:        goal,
		Parents:     newParents(start),
		GoalParents: newParents(goal),
	}
	if start == goal {
		res.Explored = []grid.Cell{start}
		res.Path = []grid.Cell{start}
		return res
	}

	fromStart, fromGoal := queue.New(), queue.New()
	fromStart.Push(start)
	fromGoal.Push(goal)

	// grow expands one cell on one side and reports the meeting cell, if any.
	grow := func(current grid.Cell, q *queue.Queue, own, other Parents) (grid.Cell, bool) {
		for _, next := range g.Neighbors(current) {
			if own.Has(next) || g.IsBlocked(next) {
				continue
			}
			own[next] = current
			q.Push(next)
			if other.Has(next) {
				return next, true
			}
		}
		return grid.Cell{}, false
	}

	for !fromStart.Empty() && !fromGoal.Empty() {
		a := fromStart.Pop().(grid.Cell)
		b := fromGoal.Pop().(grid.Cell)
		res.Explored = append(res.Explored, a, b)

		obstacles.Spawn(g)

		meet, ok := grow(a, fromStart, res.Parents, res.GoalParents)
		if !ok {
			meet, ok = grow(b, fromGoal, res.GoalParents, res.Parents)
		}
		if ok {
			res.Meet = &meet
			res.Path = mergePaths(res.Parents, res.GoalParents, meet)
			return res
		}
	}
	return res
}

func (e expansion) result(alg Algorithm, start, goal grid.Cell) Result {
	parents, explored := e.run(start, goal)
	return Result{
		Algorithm: alg,
		Start:     start,
		Goal:      goal,
		Path:      parents.PathTo(goal),
		Explored:  explored,
		Parents:   parents,
	}
}
