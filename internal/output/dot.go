package output

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/gridsearch/internal/graph"
)

var dotFill = map[string]string{
	graph.KindStart:    "green",
	graph.KindGoal:     "red",
	graph.KindPath:     "mediumpurple",
	graph.KindExplored: "lightblue",
	graph.KindFrontier: "white",
}

// RenderDOT renders the search tree in Graphviz DOT format
func RenderDOT(w io.Writer, g *graph.Graph) error {
	fmt.Fprintln(w, "digraph search_tree {")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  node [shape=box, style=\"rounded,filled\"];")
	fmt.Fprintln(w, "")

	for _, node := range g.Nodes() {
		fmt.Fprintf(w, "  %s [label=\"%s\", fillcolor=%s];\n",
			quoteID(node.ID), formatNodeLabel(node), dotFill[node.Kind])
	}

	fmt.Fprintln(w, "")

	for _, edge := range g.Edges() {
		attrs := fmt.Sprintf("label=\"%s\"", edge.RelationType)
		if edge.RelationType == graph.RelationBackward {
			attrs += ", style=dashed"
		}
		if edge.OnPath {
			attrs += ", penwidth=3, color=purple"
		}
		fmt.Fprintf(w, "  %s -> %s [%s];\n", quoteID(edge.From), quoteID(edge.To), attrs)
	}

	fmt.Fprintln(w, "}")
	return nil
}

func formatNodeLabel(node *graph.Node) string {
	label := fmt.Sprintf("%s\\n%s", node.ID, node.Kind)
	if node.Order >= 0 {
		label += fmt.Sprintf("\\n#%d", node.Order)
	}
	return label
}

func quoteID(id string) string {
	return "\"" + id + "\""
}
