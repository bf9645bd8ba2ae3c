package search

import "github.com/pfrederiksen/gridsearch/internal/grid"

// unlimited disables the depth cutoff.
const unlimited = -1

// expansion is the loop shared by BFS, DFS, UCS and DLS. The frontier
// discipline decides the order; weighted enables cost bookkeeping and
// relaxation; limit skips nodes at that depth without expanding them.
type expansion struct {
	grid       *grid.Grid
	obstacles  grid.ObstaclePolicy
	discipline Discipline
	weighted   bool
	limit      int
}

func (e expansion) run(start, goal grid.Cell) (Parents, []grid.Cell) {
	f := newFrontier(e.discipline)
	f.pushAll([]*node{{cell: start}})

	parents := newParents(start)
	costs := map[grid.Cell]float64{start: 0}
	var explored []grid.Cell

	for f.len() > 0 {
		current := f.pop()
		explored = append(explored, current.cell)

		if current.cell == goal {
			break
		}
		if e.limit != unlimited && current.depth == e.limit {
			continue
		}

		e.obstacles.Spawn(e.grid)

		var successors []*node
		for _, next := range e.grid.Neighbors(current.cell) {
			if e.grid.IsBlocked(next) {
				continue
			}

			if e.weighted {
				// Relax against the best known cost, not the popped entry's.
				cost := costs[current.cell] + grid.StepCost(current.cell, next)
				if best, seen := costs[next]; seen && cost >= best {
					continue
				}
				costs[next] = cost
				parents[next] = current.cell
				successors = append(successors, &node{cell: next, depth: current.depth + 1, cost: cost})
				continue
			}

			if parents.Has(next) {
				continue
			}
			parents[next] = current.cell
			successors = append(successors, &node{cell: next, depth: current.depth + 1})
		}
		f.pushAll(successors)
	}

	return parents, explored
}
