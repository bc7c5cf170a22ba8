package graph

import (
	"fmt"
	"sort"
)

// Graph represents a labeled directed multigraph
type Graph struct {
	Nodes []*Node `yaml:"nodes" json:"nodes"`
	Edges []*Edge `yaml:"edges,omitempty" json:"edges,omitempty"`

	nodeIndex map[string]int // Map of node ids for quick lookup
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{nodeIndex: map[string]int{}}
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(node *Node) {
	if g.nodeIndex == nil {
		g.nodeIndex = make(map[string]int)
	}
	g.Nodes = append(g.Nodes, node)
	g.nodeIndex[node.ID] = len(g.Nodes) - 1
}

// AddEdge adds a directed edge to the graph
func (g *Graph) AddEdge(source, target, kind string) {
	g.Edges = append(g.Edges, &Edge{Source: source, Target: target, Kind: kind})
}

// Node retrieves a node by id
func (g *Graph) Node(id string) *Node {
	if g.nodeIndex == nil {
		g.reindex()
	}
	if idx, ok := g.nodeIndex[id]; ok && idx < len(g.Nodes) {
		return g.Nodes[idx]
	}
	return nil
}

// Size returns the number of nodes
func (g *Graph) Size() int {
	return len(g.Nodes)
}

// NodeIDs returns all node ids in ascending order
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		ids = append(ids, node.ID)
	}
	sort.Strings(ids)
	return ids
}

// EdgeKinds returns the multiplicity of edges from source to target, keyed by edge kind
func (g *Graph) EdgeKinds(source, target string) map[string]int {
	var result map[string]int
	for _, edge := range g.Edges {
		if edge.Source != source || edge.Target != target {
			continue
		}
		if result == nil {
			result = make(map[string]int)
		}
		result[edge.Kind]++
	}
	return result
}

// EdgeCount returns the number of parallel edges from source to target with the given kind
func (g *Graph) EdgeCount(source, target, kind string) int {
	count := 0
	for _, edge := range g.Edges {
		if edge.Source == source && edge.Target == target && edge.Kind == kind {
			count++
		}
	}
	return count
}

// Neighbors returns the ids of nodes adjacent to id, in either direction
func (g *Graph) Neighbors(id string) []string {
	seen := map[string]bool{}
	var result []string
	for _, edge := range g.Edges {
		var other string
		switch id {
		case edge.Source:
			other = edge.Target
		case edge.Target:
			other = edge.Source
		default:
			continue
		}
		if !seen[other] {
			seen[other] = true
			result = append(result, other)
		}
	}
	return result
}

// Before returns the node-induced subgraph of before-phase nodes and edges among them
func (g *Graph) Before() *Graph {
	result := NewGraph()
	for _, node := range g.Nodes {
		if node.Phase == PhaseBefore {
			result.AddNode(node)
		}
	}
	for _, edge := range g.Edges {
		if result.Node(edge.Source) != nil && result.Node(edge.Target) != nil {
			result.AddEdge(edge.Source, edge.Target, edge.Kind)
		}
	}
	return result
}

// Validate checks structural invariants; every edge endpoint has to reference an existing node
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		if node.ID == "" {
			return fmt.Errorf("node with empty id: %w", ErrMalformed)
		}
		if seen[node.ID] {
			return fmt.Errorf("duplicate node id %q: %w", node.ID, ErrMalformed)
		}
		seen[node.ID] = true
	}
	for _, edge := range g.Edges {
		if !seen[edge.Source] {
			return fmt.Errorf("edge source %q references missing node: %w", edge.Source, ErrMalformed)
		}
		if !seen[edge.Target] {
			return fmt.Errorf("edge target %q references missing node: %w", edge.Target, ErrMalformed)
		}
	}
	return nil
}

// reindex rebuilds the node lookup map, needed after deserialization
func (g *Graph) reindex() {
	g.nodeIndex = make(map[string]int, len(g.Nodes))
	for i, node := range g.Nodes {
		g.nodeIndex[node.ID] = i
	}
}
