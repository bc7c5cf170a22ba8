package corpus

import "github.com/viant/patmatch/matcher/graph"

// commonSuffix returns the longest common suffix of the values; a single value
// is its own suffix, an empty slice yields the empty suffix
func commonSuffix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	result := values[0]
	for _, value := range values[1:] {
		limit := len(result)
		if len(value) < limit {
			limit = len(value)
		}
		matched := 0
		for matched < limit && result[len(result)-1-matched] == value[len(value)-1-matched] {
			matched++
		}
		result = result[len(result)-matched:]
	}
	return result
}

// attachGraphHints precomputes the suffix hint of every variable node as the
// longest common suffix of that variable's original labels across the
// pattern's fragments; fragments mined from different examples align nodes by
// id, a variable seen in one fragment only keeps its full name as hint
func attachGraphHints(fragments []*graph.Graph) {
	labels := map[string][]string{}
	for _, fragment := range fragments {
		for _, node := range fragment.Nodes {
			if node.IsVariable() {
				labels[node.ID] = append(labels[node.ID], node.OriginalLabel)
			}
		}
	}
	for _, fragment := range fragments {
		for _, node := range fragment.Nodes {
			if node.IsVariable() {
				hint := commonSuffix(labels[node.ID])
				node.SuffixHint = &hint
			}
		}
	}
}

// attachTreeHints precomputes suffix hints for tree fragments the same way;
// preorder node ids align corresponding variables across fragments
func attachTreeHints(fragments []*graph.Tree) {
	labels := map[string][]string{}
	for _, fragment := range fragments {
		fragment.Walk(func(node *graph.TreeNode) bool {
			if node.IsVariable() {
				labels[node.ID] = append(labels[node.ID], node.OriginalLabel)
			}
			return true
		})
	}
	for _, fragment := range fragments {
		fragment.Walk(func(node *graph.TreeNode) bool {
			if node.IsVariable() {
				hint := commonSuffix(labels[node.ID])
				node.SuffixHint = &hint
			}
			return true
		})
	}
}
