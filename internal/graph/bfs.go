package graph

// BFSLevel represents nodes at a specific depth level
type BFSLevel struct {
	Depth int
	Nodes []*Node
}

// BFS performs breadth-first traversal from a starting node along edge
// direction. Nodes that cannot be reached from startID are not returned.
func (g *Graph) BFS(startID string) []BFSLevel {
	if _, ok := g.nodes[startID]; !ok {
		return nil
	}

	visited := map[string]bool{startID: true}
	levels := make([]BFSLevel, 0)
	queue := []string{startID}

	for depth := 0; len(queue) > 0; depth++ {
		level := BFSLevel{Depth: depth, Nodes: make([]*Node, 0, len(queue))}
		var next []string

		for _, nodeID := range queue {
			level.Nodes = append(level.Nodes, g.nodes[nodeID])

			for _, edge := range g.EdgesFrom(nodeID) {
				if !visited[edge.To] {
					visited[edge.To] = true
					next = append(next, edge.To)
				}
			}
		}

		levels = append(levels, level)
		queue = next
	}

	return levels
}
