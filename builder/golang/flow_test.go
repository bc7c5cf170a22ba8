package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/patmatch/matcher/graph"
)

const flowSrc = `package demo

func accumulate(limit int) int {
	total := 0
	for i := 0; i < limit; i++ {
		total += i
	}
	return total
}

func double(x int) int {
	return x + x
}
`

func findNode(g *graph.Graph, label, original string) *graph.Node {
	for _, node := range g.Nodes {
		if node.Label == label && node.OriginalLabel == original {
			return node
		}
	}
	return nil
}

func TestFlowBuilder_BuildFunc(t *testing.T) {
	flow, err := NewFlowBuilder().BuildFunc([]byte(flowSrc), "accumulate")
	require.Nil(t, err)
	require.Nil(t, flow.Validate())

	assign := findNode(flow, "assign", "total := 0")
	require.NotNil(t, assign)
	returned := findNode(flow, "return", "return total")
	require.NotNil(t, returned)
	assert.NotNil(t, findNode(flow, "incdec", "i++"))
	assert.NotNil(t, findNode(flow, "cond", "i < limit"))

	total := findNode(flow, "var", "total")
	require.NotNil(t, total)
	assert.Equal(t, 1, flow.EdgeCount(total.ID, assign.ID, "operand"))
	assert.Equal(t, 1, flow.EdgeCount(total.ID, returned.ID, "operand"))

	hasFlow := false
	for _, edge := range flow.Edges {
		if edge.Kind == "flow" {
			hasFlow = true
			break
		}
	}
	assert.True(t, hasFlow)
}

func TestFlowBuilder_ParallelOperandEdges(t *testing.T) {
	flow, err := NewFlowBuilder().BuildFunc([]byte(flowSrc), "double")
	require.Nil(t, err)

	returned := findNode(flow, "return", "return x + x")
	require.NotNil(t, returned)
	x := findNode(flow, "var", "x")
	require.NotNil(t, x)
	// x is consumed twice by the same statement: two parallel edges
	assert.Equal(t, 2, flow.EdgeCount(x.ID, returned.ID, "operand"))
}

func TestFlowBuilder_FunctionNotFound(t *testing.T) {
	_, err := NewFlowBuilder().BuildFunc([]byte(flowSrc), "missing")
	assert.NotNil(t, err)
}
