package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pfrederiksen/gridsearch/internal/grid"
	"github.com/pfrederiksen/gridsearch/internal/search"
)

// Node kinds
const (
	KindStart    = "Start"
	KindGoal     = "Goal"
	KindPath     = "Path"
	KindExplored = "Explored"
	KindFrontier = "Frontier" // discovered but never popped
)

// Edge relation types
const (
	RelationForward  = "forward"  // grown from the start
	RelationBackward = "backward" // grown from the goal
)

// Node represents a discovered cell in the search tree
type Node struct {
	ID    string    `json:"id"`    // Cell.String()
	Cell  grid.Cell `json:"cell"`
	Kind  string    `json:"kind"`
	Order int       `json:"order"` // first position in the explored trace, -1 if never popped
}

// Edge represents a parent link
type Edge struct {
	From         string `json:"from"`
	To           string `json:"to"`
	RelationType string `json:"relationType"`
	OnPath       bool   `json:"onPath"`
}

// Graph is the search tree of one run
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order
	edges []*Edge
}

// New creates a new empty graph
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make([]*Edge, 0),
	}
}

// FromResult builds the search tree of res: one node per discovered cell and
// one edge per parent link. Bidirectional results contribute both trees.
func FromResult(res search.Result) *Graph {
	g := New()

	firstSeen := make(map[grid.Cell]int, len(res.Explored))
	for i, c := range res.Explored {
		if _, ok := firstSeen[c]; !ok {
			firstSeen[c] = i
		}
	}
	onPath := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}
	pathEdge := make(map[[2]grid.Cell]bool, len(res.Path))
	for i := 1; i < len(res.Path); i++ {
		pathEdge[[2]grid.Cell{res.Path[i-1], res.Path[i]}] = true
	}

	addNode := func(c grid.Cell) {
		if g.HasNode(c.String()) {
			return
		}
		kind := KindFrontier
		order, popped := firstSeen[c]
		switch {
		case c == res.Start:
			kind = KindStart
		case c == res.Goal:
			kind = KindGoal
		case onPath[c]:
			kind = KindPath
		case popped:
			kind = KindExplored
		}
		if !popped {
			order = -1
		}
		g.AddNode(&Node{ID: c.String(), Cell: c, Kind: kind, Order: order})
	}

	addTree := func(parents search.Parents, relation string) {
		cells := make([]grid.Cell, 0, len(parents))
		for c := range parents {
			cells = append(cells, c)
		}
		slices.SortFunc(cells, func(a, b grid.Cell) int {
			return compareDiscovery(firstSeen, a, b)
		})

		for _, c := range cells {
			addNode(c)
		}
		for _, c := range cells {
			parent := parents[c]
			if parent == c {
				continue
			}
			from, to := parent, c
			if relation == RelationBackward {
				from, to = c, parent
			}
			g.AddEdge(&Edge{
				From:         from.String(),
				To:           to.String(),
				RelationType: relation,
				OnPath:       pathEdge[[2]grid.Cell{from, to}],
			})
		}
	}

	addNode(res.Start)
	addTree(res.Parents, RelationForward)
	if res.GoalParents != nil {
		addTree(res.GoalParents, RelationBackward)
	}
	return g
}

// compareDiscovery orders popped cells by trace position, then never-popped
// cells row-major.
func compareDiscovery(seen map[grid.Cell]int, a, b grid.Cell) int {
	ia, aok := seen[a]
	ib, bok := seen[b]
	switch {
	case aok && bok:
		return ia - ib
	case aok:
		return -1
	case bok:
		return 1
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// AddNode adds or updates a node in the graph
func (g *Graph) AddNode(node *Node) {
	if _, ok := g.nodes[node.ID]; !ok {
		g.order = append(g.order, node.ID)
	}
	g.nodes[node.ID] = node
}

// AddEdge adds an edge to the graph
func (g *Graph) AddEdge(edge *Edge) {
	g.edges = append(g.edges, edge)
}

// GetNode retrieves a node by ID
func (g *Graph) GetNode(id string) (*Node, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// HasNode checks if a node exists in the graph
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns all edges in the graph
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// EdgesFrom returns all edges originating from a node
func (g *Graph) EdgesFrom(nodeID string) []*Edge {
	var result []*Edge
	for _, edge := range g.edges {
		if edge.From == nodeID {
			result = append(result, edge)
		}
	}
	return result
}

// EdgesTo returns all edges pointing to a node
func (g *Graph) EdgesTo(nodeID string) []*Edge {
	var result []*Edge
	for _, edge := range g.edges {
		if edge.To == nodeID {
			result = append(result, edge)
		}
	}
	return result
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Summary is a one-line description of node kinds
func (g *Graph) Summary() string {
	counts := map[string]int{}
	for _, n := range g.nodes {
		counts[n.Kind]++
	}
	var parts []string
	for _, kind := range []string{KindStart, KindGoal, KindPath, KindExplored, KindFrontier} {
		if counts[kind] > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, counts[kind]))
		}
	}
	return strings.Join(parts, " ")
}
