package matcher

import (
	"context"
	"fmt"

	"github.com/viant/patmatch/matcher/graph"
)

// SubgraphMatcher locates occurrences of graph patterns within a target
// directed multigraph. The search is a VF2-style backtracking over the
// before-phase projection of the pattern; extra target nodes and edges not
// referenced by the pattern are permitted.
type SubgraphMatcher struct {
	target *graph.Graph
}

// NewSubgraphMatcher creates a matcher for the given target graph
func NewSubgraphMatcher(target *graph.Graph) (*SubgraphMatcher, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target graph: %w", err)
	}
	return &SubgraphMatcher{target: target}, nil
}

// FindOccurrences returns a cursor over all mappings of the pattern's
// before-phase nodes into the target. Mappings are produced lazily; the caller
// stops the search by ceasing to pull from the cursor.
func (m *SubgraphMatcher) FindOccurrences(ctx context.Context, pattern *graph.GraphPattern) (*MappingCursor, error) {
	if pattern == nil || pattern.Graph == nil {
		return nil, fmt.Errorf("pattern %q without graph: %w", patternKey(pattern), graph.ErrMalformed)
	}
	if err := pattern.Graph.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern.Key, err)
	}
	query := pattern.Graph.Before()
	cursor := &MappingCursor{
		ctx:      ctx,
		target:   m.target,
		query:    query,
		queryIDs: query.NodeIDs(),
		assigned: graph.Mapping{},
		used:     map[string]bool{},
	}
	for _, node := range m.target.Nodes {
		cursor.targetIDs = append(cursor.targetIDs, node.ID)
	}
	cursor.positions = make([]int, len(cursor.queryIDs))
	// a target smaller than the query can never host it
	if len(cursor.targetIDs) < len(cursor.queryIDs) {
		cursor.done = true
	}
	return cursor, nil
}

func patternKey(pattern *graph.GraphPattern) string {
	if pattern == nil {
		return ""
	}
	return pattern.Key
}

// MappingCursor enumerates occurrences one at a time. The backtracking state
// lives in the cursor, so an abandoned cursor leaks nothing and a deadline on
// the context is honored between extension attempts.
type MappingCursor struct {
	ctx       context.Context
	target    *graph.Graph
	query     *graph.Graph
	queryIDs  []string // query nodes in ascending id order
	targetIDs []string // target nodes in insertion order
	assigned  graph.Mapping
	used      map[string]bool
	positions []int // next candidate index per query depth
	depth     int
	done      bool
}

// Next returns the next occurrence; the second result is false once the
// search space is exhausted
func (c *MappingCursor) Next() (graph.Mapping, bool, error) {
	if c.done {
		return nil, false, nil
	}
	if len(c.queryIDs) == 0 {
		// an empty query matches trivially with the empty mapping
		c.done = true
		return graph.Mapping{}, true, nil
	}
	for c.depth >= 0 {
		if err := c.ctx.Err(); err != nil {
			c.done = true
			return nil, false, err
		}
		advanced, err := c.advance()
		if err != nil {
			c.done = true
			return nil, false, err
		}
		if !advanced {
			// candidates exhausted at this depth, backtrack
			c.positions[c.depth] = 0
			c.depth--
			if c.depth >= 0 {
				c.unassign(c.depth)
			}
			continue
		}
		if c.depth == len(c.queryIDs)-1 {
			mapping := c.assigned.Clone()
			// release the deepest assignment so the next pull resumes past it
			c.unassign(c.depth)
			return mapping, true, nil
		}
		c.depth++
	}
	c.done = true
	return nil, false, nil
}

// advance assigns the next admissible target candidate at the current depth
func (c *MappingCursor) advance() (bool, error) {
	queryID := c.queryIDs[c.depth]
	for idx := c.positions[c.depth]; idx < len(c.targetIDs); idx++ {
		targetID := c.targetIDs[idx]
		if c.used[targetID] {
			continue
		}
		ok, err := c.admissible(queryID, targetID)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		c.assigned[queryID] = targetID
		c.used[targetID] = true
		c.positions[c.depth] = idx + 1
		return true, nil
	}
	return false, nil
}

func (c *MappingCursor) unassign(depth int) {
	queryID := c.queryIDs[depth]
	if targetID, ok := c.assigned[queryID]; ok {
		delete(c.assigned, queryID)
		delete(c.used, targetID)
	}
}

// admissible checks node compatibility and that every edge of the query
// between the candidate pair and already-mapped neighbors is individually
// satisfiable: per direction and kind, the query edge multiplicity must not
// exceed the target edge multiplicity
func (c *MappingCursor) admissible(queryID, targetID string) (bool, error) {
	ok, err := Compatible(c.query.Node(queryID), c.target.Node(targetID))
	if err != nil || !ok {
		return false, err
	}
	if !c.coversEdges(queryID, queryID, targetID, targetID) {
		// self-loop multiplicities
		return false, nil
	}
	for _, neighborID := range c.query.Neighbors(queryID) {
		mappedTarget, mapped := c.assigned[neighborID]
		if !mapped {
			continue
		}
		if !c.coversEdges(neighborID, queryID, mappedTarget, targetID) {
			return false, nil
		}
		if !c.coversEdges(queryID, neighborID, targetID, mappedTarget) {
			return false, nil
		}
	}
	return true, nil
}

func (c *MappingCursor) coversEdges(querySource, queryTarget, targetSource, targetTarget string) bool {
	for kind, count := range c.query.EdgeKinds(querySource, queryTarget) {
		if c.target.EdgeCount(targetSource, targetTarget, kind) < count {
			return false
		}
	}
	return true
}
