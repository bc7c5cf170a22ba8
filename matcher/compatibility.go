package matcher

import (
	"fmt"
	"strings"

	"github.com/viant/patmatch/matcher/graph"
)

// Compatible reports whether a pattern node may be matched to a target node.
// Variable nodes compare by suffix since mined patterns rename variables across
// examples; every other category requires exact syntactic identity.
func Compatible(pattern, target *graph.Node) (bool, error) {
	if pattern.Label == "" || pattern.OriginalLabel == "" || target.Label == "" || target.OriginalLabel == "" {
		return false, nil
	}
	if pattern.IsVariable() && target.IsVariable() {
		if pattern.SuffixHint == nil {
			return false, fmt.Errorf("pattern node %q: %w", pattern.ID, ErrMissingSuffixHint)
		}
		return strings.HasSuffix(target.OriginalLabel, *pattern.SuffixHint), nil
	}
	return pattern.Label == target.Label && pattern.OriginalLabel == target.OriginalLabel, nil
}
