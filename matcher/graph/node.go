package graph

import "strings"

// Phase indicates the role of a pattern node within a mined change pattern
type Phase string

const (
	// PhaseBefore marks precondition nodes; only these participate in localization
	PhaseBefore Phase = "before"
	// PhaseAfter marks postcondition nodes
	PhaseAfter Phase = "after"
)

const variableLabelPrefix = "var"

// Node is a labeled vertex of a program graph or tree
type Node struct {
	ID            string  `yaml:"id" json:"id"`                       // Unique identifier within its graph
	Label         string  `yaml:"label" json:"label"`                 // Syntactic/semantic category (variable, operator, call, literal, ...)
	OriginalLabel string  `yaml:"originalLabel" json:"originalLabel"` // Raw source text
	Phase         Phase   `yaml:"phase,omitempty" json:"phase,omitempty"`
	SuffixHint    *string `yaml:"suffixHint,omitempty" json:"suffixHint,omitempty"` // Precomputed variable-name suffix; nil means absent
}

// IsVariable returns true if the node belongs to the variable category
func (n *Node) IsVariable() bool {
	return strings.HasPrefix(n.Label, variableLabelPrefix)
}

// Edge connects two nodes of a directed multigraph; parallel edges are permitted
// and each counted separately
type Edge struct {
	Source string `yaml:"source" json:"source"`
	Target string `yaml:"target" json:"target"`
	Kind   string `yaml:"kind" json:"kind"`
}

// Mapping is an injective pattern-node to target-node correspondence witnessing a match
type Mapping map[string]string

// Clone creates a copy of the mapping
func (m Mapping) Clone() Mapping {
	result := make(Mapping, len(m))
	for key, value := range m {
		result[key] = value
	}
	return result
}
