package search

import "github.com/pfrederiksen/gridsearch/internal/grid"

// Parents maps each discovered cell to its predecessor. The root of the map
// points to itself.
type Parents map[grid.Cell]grid.Cell

func newParents(root grid.Cell) Parents {
	return Parents{root: root}
}

// Has reports whether c was discovered.
func (p Parents) Has(c grid.Cell) bool {
	_, ok := p[c]
	return ok
}

// chain walks from c back to the root, c first. It returns nil when c was
// never discovered.
func (p Parents) chain(c grid.Cell) []grid.Cell {
	if !p.Has(c) {
		return nil
	}
	out := []grid.Cell{c}
	for steps := 0; steps < len(p); steps++ {
		prev := p[c]
		if prev == c {
			break
		}
		out = append(out, prev)
		c = prev
	}
	return out
}

// PathTo rebuilds root→goal from parent links, or nil when goal was not reached.
func (p Parents) PathTo(goal grid.Cell) []grid.Cell {
	path := p.chain(goal)
	reverse(path)
	return path
}

// mergePaths joins a start-side and a goal-side parent map at meet. The
// meeting cell appears once.
func mergePaths(fromStart, fromGoal Parents, meet grid.Cell) []grid.Cell {
	path := fromStart.PathTo(meet)
	if prev := fromGoal[meet]; prev != meet {
		path = append(path, fromGoal.chain(prev)...)
	}
	return path
}

func reverse(cells []grid.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}
