package graph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash computes a 64-bit content hash
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint computes a canonical content hash of the graph; structurally
// identical graphs produce the same fingerprint regardless of node and edge order
func (g *Graph) Fingerprint() (uint64, error) {
	parts := make([]string, 0, len(g.Nodes)+len(g.Edges))
	for _, node := range g.Nodes {
		parts = append(parts, "n\x00"+node.ID+"\x00"+node.Label+"\x00"+node.OriginalLabel+"\x00"+string(node.Phase))
	}
	for _, edge := range g.Edges {
		parts = append(parts, "e\x00"+edge.Source+"\x00"+edge.Target+"\x00"+edge.Kind)
	}
	sort.Strings(parts)
	return Hash([]byte(strings.Join(parts, "\x01")))
}

// Fingerprint computes a canonical content hash of the tree over its preorder
// serialization; node ids are excluded so that the same mined fragment with
// renumbered nodes still deduplicates
func (t *Tree) Fingerprint() (uint64, error) {
	builder := &strings.Builder{}
	t.Walk(func(node *TreeNode) bool {
		builder.WriteString(node.Label)
		builder.WriteByte(0)
		builder.WriteString(node.OriginalLabel)
		builder.WriteByte(0)
		builder.WriteString(strconv.Itoa(len(node.Children)))
		builder.WriteByte(1)
		return true
	})
	return Hash([]byte(builder.String()))
}
