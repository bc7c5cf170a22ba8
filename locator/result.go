package locator

import "github.com/viant/patmatch/matcher/graph"

// Match pairs a pattern key with the mapping witnessing its occurrence
type Match struct {
	Key     string        `json:"key"`
	Mapping graph.Mapping `json:"mapping"`
}

// Result holds every candidate at maximal strength together with its witness.
// An empty result is explicit: Found reports false and Strength is meaningless
// rather than zero-valued evidence.
type Result struct {
	Strength int      `json:"strength"` // Node count of the strongest matched pattern
	Matches  []*Match `json:"matches,omitempty"`
}

// Found returns true if at least one candidate matched
func (r *Result) Found() bool {
	return r != nil && len(r.Matches) > 0
}

// merge folds one candidate evaluation into the running maximum; a strictly
// greater strength resets the tie set, an equal strength appends, anything
// less is discarded. The reduction is associative and commutative, so partial
// results from concurrent workers can be merged in any order.
func (r *Result) merge(strength int, match *Match) {
	switch {
	case !r.Found() || strength > r.Strength:
		r.Strength = strength
		r.Matches = []*Match{match}
	case strength == r.Strength:
		r.Matches = append(r.Matches, match)
	}
}
