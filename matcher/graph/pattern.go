package graph

// GraphPattern is a mined code idiom in flow-graph form, partitioned by phase tag
type GraphPattern struct {
	Key   string `yaml:"key" json:"key"` // Identity of the pattern within its corpus
	Graph *Graph `yaml:"graph" json:"graph"`
}

// Size returns the node count of the full pattern, both phases included
func (p *GraphPattern) Size() int {
	if p == nil || p.Graph == nil {
		return 0
	}
	return p.Graph.Size()
}

// TreePattern groups the candidate tree fragments mined for one logical pattern
// from different examples
type TreePattern struct {
	Key       string  `yaml:"key" json:"key"`
	Fragments []*Tree `yaml:"fragments" json:"fragments"`
}
