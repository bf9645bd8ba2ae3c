package output

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/gridsearch/internal/graph"
)

// RenderTree renders the search tree level by level from startID
func RenderTree(w io.Writer, g *graph.Graph, startID string) error {
	levels := g.BFS(startID)
	if len(levels) == 0 {
		return fmt.Errorf("starting node not found: %s", startID)
	}

	reached := 0
	for _, level := range levels {
		fmt.Fprintf(w, "\n[Level %d] ", level.Depth)
		switch level.Depth {
		case 0:
			fmt.Fprintf(w, "Root\n")
		case 1:
			fmt.Fprintf(w, "One Move\n")
		default:
			fmt.Fprintf(w, "%d Moves\n", level.Depth)
		}

		for i, node := range level.Nodes {
			reached++
			prefix := "└─"
			if i < len(level.Nodes)-1 {
				prefix = "├─"
			}

			relType := ""
			if edges := g.EdgesTo(node.ID); len(edges) > 0 {
				relType = fmt.Sprintf(" [%s from %s]", edges[0].RelationType, edges[0].From)
			}

			fmt.Fprintf(w, "%s %s: %s%s\n", prefix, node.Kind, node.ID, relType)

			if node.Order >= 0 {
				fmt.Fprintf(w, "   explored: #%d\n", node.Order)
			}
		}
	}

	fmt.Fprintf(w, "\nSummary: %d nodes, %d edges, %d reachable from %s (%s)\n",
		g.NodeCount(), g.EdgeCount(), reached, startID, g.Summary())
	return nil
}
