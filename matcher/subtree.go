package matcher

import (
	"fmt"

	"github.com/viant/patmatch/matcher/graph"
)

// SubtreeMatcher locates fragments of tree patterns within a target ordered
// tree. Any target node may anchor a fragment root; the fragment's ordered
// children are matched against an ordered subsequence of the anchor's children,
// so target children may be skipped but pattern children are never reordered.
type SubtreeMatcher struct {
	target *graph.Tree
}

// NewSubtreeMatcher creates a matcher for the given target tree
func NewSubtreeMatcher(target *graph.Tree) (*SubtreeMatcher, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target tree: %w", err)
	}
	return &SubtreeMatcher{target: target}, nil
}

// FindSubtree returns the first witness of the fragment within the target,
// or false when no anchor can host it
func (m *SubtreeMatcher) FindSubtree(fragment *graph.Tree) (graph.Mapping, bool, error) {
	if err := fragment.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid fragment: %w", err)
	}
	var result graph.Mapping
	var failure error
	m.target.Walk(func(anchor *graph.TreeNode) bool {
		mapping := graph.Mapping{}
		ok, err := matchNode(fragment.Root, anchor, mapping)
		if err != nil {
			failure = err
			return false
		}
		if ok {
			result = mapping
			return false
		}
		return true
	})
	if failure != nil {
		return nil, false, failure
	}
	if result == nil {
		return nil, false, nil
	}
	return result, true, nil
}

// matchNode tests whether anchor can witness the fragment node; on failure the
// mapping is left unchanged
func matchNode(pattern, anchor *graph.TreeNode, mapping graph.Mapping) (bool, error) {
	ok, err := Compatible(&pattern.Node, &anchor.Node)
	if err != nil || !ok {
		return false, err
	}
	mapping[pattern.ID] = anchor.ID
	ok, err = matchChildren(pattern.Children, anchor.Children, mapping)
	if err != nil || !ok {
		delete(mapping, pattern.ID)
		return false, err
	}
	return true, nil
}

// matchChildren matches pattern children, in order, against a subsequence of
// the anchor children, backtracking over which anchor children are skipped
func matchChildren(pattern, anchor []*graph.TreeNode, mapping graph.Mapping) (bool, error) {
	if len(pattern) == 0 {
		return true, nil
	}
	if len(anchor) < len(pattern) {
		return false, nil
	}
	ok, err := matchNode(pattern[0], anchor[0], mapping)
	if err != nil {
		return false, err
	}
	if ok {
		rest, err := matchChildren(pattern[1:], anchor[1:], mapping)
		if err != nil {
			return false, err
		}
		if rest {
			return true, nil
		}
		unassign(pattern[0], mapping)
	}
	// skip the current anchor child and retry
	return matchChildren(pattern, anchor[1:], mapping)
}

// unassign removes the subtree rooted at pattern from the mapping
func unassign(pattern *graph.TreeNode, mapping graph.Mapping) {
	delete(mapping, pattern.ID)
	for _, child := range pattern.Children {
		unassign(child, mapping)
	}
}

// MaximalFragment returns the candidate fragment with the greatest node count;
// ties are broken by first occurrence in the input order
func MaximalFragment(fragments []*graph.Tree) (*graph.Tree, error) {
	if len(fragments) == 0 {
		return nil, ErrEmptyFragments
	}
	result := fragments[0]
	for _, fragment := range fragments[1:] {
		if fragment.Size() > result.Size() {
			result = fragment
		}
	}
	return result, nil
}
