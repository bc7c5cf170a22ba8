package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraph_Fingerprint(t *testing.T) {
	first := NewGraph()
	first.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
	first.AddNode(&Node{ID: "b", Label: "add", OriginalLabel: "+"})
	first.AddEdge("a", "b", "operand")

	// same content, different insertion order
	second := NewGraph()
	second.AddNode(&Node{ID: "b", Label: "add", OriginalLabel: "+"})
	second.AddNode(&Node{ID: "a", Label: "var", OriginalLabel: "alpha"})
	second.AddEdge("a", "b", "operand")

	firstHash, err := first.Fingerprint()
	assert.Nil(t, err)
	secondHash, err := second.Fingerprint()
	assert.Nil(t, err)
	assert.Equal(t, firstHash, secondHash)

	second.AddEdge("a", "b", "operand")
	changedHash, err := second.Fingerprint()
	assert.Nil(t, err)
	assert.NotEqual(t, firstHash, changedHash)
}

func TestTree_Fingerprint(t *testing.T) {
	first := &Tree{Root: chain("a", "b")}
	renumbered := &Tree{Root: chain("x", "y")}

	firstHash, err := first.Fingerprint()
	assert.Nil(t, err)
	renumberedHash, err := renumbered.Fingerprint()
	assert.Nil(t, err)
	// node ids do not participate in the tree fingerprint
	assert.Equal(t, firstHash, renumberedHash)

	relabeled := &Tree{Root: chain("a", "b")}
	relabeled.Root.Children[0].OriginalLabel = "changed"
	relabeledHash, err := relabeled.Fingerprint()
	assert.Nil(t, err)
	assert.NotEqual(t, firstHash, relabeledHash)
}
