package graph

import "fmt"

// TreeNode is a node of a labeled ordered tree; sibling order is semantically meaningful
type TreeNode struct {
	Node     `yaml:",inline"`
	Children []*TreeNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Tree represents a labeled ordered rooted tree
type Tree struct {
	Root *TreeNode `yaml:"root" json:"root"`
}

// Size returns the number of nodes in the tree
func (t *Tree) Size() int {
	if t == nil || t.Root == nil {
		return 0
	}
	return t.Root.size()
}

func (n *TreeNode) size() int {
	count := 1
	for _, child := range n.Children {
		count += child.size()
	}
	return count
}

// Walk visits every node in preorder; traversal stops when visitor returns false
func (t *Tree) Walk(visitor func(node *TreeNode) bool) {
	if t == nil || t.Root == nil {
		return
	}
	t.Root.walk(visitor)
}

func (n *TreeNode) walk(visitor func(node *TreeNode) bool) bool {
	if !visitor(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(visitor) {
			return false
		}
	}
	return true
}

// Node retrieves a node by id
func (t *Tree) Node(id string) *TreeNode {
	var result *TreeNode
	t.Walk(func(node *TreeNode) bool {
		if node.ID == id {
			result = node
			return false
		}
		return true
	})
	return result
}

// Validate checks structural invariants; the tree has to be rooted and node ids unique,
// a repeated id also catches shared subtrees and cycles introduced by a collaborator
func (t *Tree) Validate() error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("tree without root: %w", ErrMalformed)
	}
	seen := map[string]bool{}
	var invalid error
	t.Walk(func(node *TreeNode) bool {
		if node.ID == "" {
			invalid = fmt.Errorf("tree node with empty id: %w", ErrMalformed)
			return false
		}
		if seen[node.ID] {
			invalid = fmt.Errorf("duplicate tree node id %q: %w", node.ID, ErrMalformed)
			return false
		}
		seen[node.ID] = true
		return true
	})
	return invalid
}
