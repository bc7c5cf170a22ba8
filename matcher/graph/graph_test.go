package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		build   func() *Graph
		wantErr bool
	}{
		{
			name: "valid graph",
			build: func() *Graph {
				g := NewGraph()
				g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
				g.AddNode(&Node{ID: "b", Label: "add", OriginalLabel: "+"})
				g.AddEdge("a", "b", "operand")
				return g
			},
		},
		{
			name: "dangling edge source",
			build: func() *Graph {
				g := NewGraph()
				g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
				g.AddEdge("missing", "a", "operand")
				return g
			},
			wantErr: true,
		},
		{
			name: "dangling edge target",
			build: func() *Graph {
				g := NewGraph()
				g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
				g.AddEdge("a", "missing", "operand")
				return g
			},
			wantErr: true,
		},
		{
			name: "duplicate node id",
			build: func() *Graph {
				g := NewGraph()
				g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
				g.AddNode(&Node{ID: "a", Label: "add", OriginalLabel: "+"})
				return g
			},
			wantErr: true,
		},
		{
			name: "empty node id",
			build: func() *Graph {
				g := NewGraph()
				g.AddNode(&Node{Label: "var", OriginalLabel: "alpha"})
				return g
			},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		err := testCase.build().Validate()
		if testCase.wantErr {
			assert.ErrorIs(t, err, ErrMalformed, testCase.name)
			continue
		}
		assert.Nil(t, err, testCase.name)
	}
}

func TestGraph_EdgeMultiplicity(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
	g.AddNode(&Node{ID: "b", Label: "call", OriginalLabel: "f(alpha, alpha)"})
	g.AddEdge("a", "b", "operand")
	g.AddEdge("a", "b", "operand")
	g.AddEdge("a", "b", "flow")

	assert.Equal(t, 2, g.EdgeCount("a", "b", "operand"))
	assert.Equal(t, 1, g.EdgeCount("a", "b", "flow"))
	assert.Equal(t, 0, g.EdgeCount("b", "a", "operand"))
	assert.Equal(t, map[string]int{"operand": 2, "flow": 1}, g.EdgeKinds("a", "b"))
	assert.Nil(t, g.EdgeKinds("b", "a"))
}

func TestGraph_Before(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "x", Label: "var", OriginalLabel: "alpha", Phase: PhaseBefore})
	g.AddNode(&Node{ID: "y", Label: "add", OriginalLabel: "+", Phase: PhaseBefore})
	g.AddNode(&Node{ID: "z", Label: "sub", OriginalLabel: "-", Phase: PhaseAfter})
	g.AddEdge("x", "y", "operand")
	g.AddEdge("x", "z", "operand")

	before := g.Before()
	assert.Equal(t, 2, before.Size())
	assert.NotNil(t, before.Node("x"))
	assert.Nil(t, before.Node("z"))
	assert.Equal(t, 1, len(before.Edges))
	assert.Equal(t, 1, before.EdgeCount("x", "y", "operand"))
}

func TestGraph_NodeIDs(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "c", Label: "var", OriginalLabel: "gamma"})
	g.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
	g.AddNode(&Node{ID: "b", Label: "var", OriginalLabel: "beta"})
	assert.Equal(t, []string{"a", "b", "c"}, g.NodeIDs())
}
