package locator

import (
	"fmt"
	"strings"

	"github.com/viant/patmatch/matcher/graph"
)

// DOT renders the target graph in Graphviz format with the nodes of the first
// located occurrence filled; presentation of a result stays outside the
// matching core, this is a convenience for callers that visualize outcomes
func (r *Result) DOT(target *graph.Graph) string {
	matched := map[string]bool{}
	if r.Found() {
		for _, targetID := range r.Matches[0].Mapping {
			matched[targetID] = true
		}
	}
	builder := &strings.Builder{}
	builder.WriteString("digraph occurrence {\n")
	for _, node := range target.Nodes {
		attributes := fmt.Sprintf("label=%q", node.OriginalLabel)
		if matched[node.ID] {
			attributes += ", style=filled, fillcolor=lightblue"
		}
		builder.WriteString(fmt.Sprintf("  %q [%s];\n", node.ID, attributes))
	}
	for _, edge := range target.Edges {
		builder.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", edge.Source, edge.Target, edge.Kind))
	}
	builder.WriteString("}\n")
	return builder.String()
}
