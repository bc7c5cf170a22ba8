package golang

import (
	"context"
	"fmt"
	"os"
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/viant/patmatch/matcher/graph"
)

// Config controls tree construction
type Config struct {
	IncludeUnnamed bool // Include anonymous tokens (punctuation, keywords) as leaves
}

// DefaultConfig returns the default tree builder configuration
func DefaultConfig() *Config {
	return &Config{}
}

// TreeBuilder lowers Go source code into a labeled ordered tree using
// tree-sitter; children keep source order, identifiers become variable-category
// nodes so that suffix-based compatibility applies to them
type TreeBuilder struct {
	config *Config
}

// NewTreeBuilder creates a new TreeBuilder with the provided configuration
func NewTreeBuilder(config *Config) *TreeBuilder {
	if config == nil {
		config = DefaultConfig()
	}
	return &TreeBuilder{config: config}
}

// BuildSource parses Go source code from a byte slice and builds its labeled tree
func (b *TreeBuilder) BuildSource(ctx context.Context, src []byte) (*graph.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	counter := 0
	root := b.convert(tree.RootNode(), src, &counter)
	return &graph.Tree{Root: root}, nil
}

// BuildFile parses a Go source file and builds its labeled tree
func (b *TreeBuilder) BuildFile(ctx context.Context, filename string) (*graph.Tree, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return b.BuildSource(ctx, src)
}

// convert maps a tree-sitter node to a labeled tree node; leaves carry their
// source text as original label, inner nodes their syntactic category
func (b *TreeBuilder) convert(node *sitter.Node, src []byte, counter *int) *graph.TreeNode {
	result := &graph.TreeNode{
		Node: graph.Node{
			ID:            "n" + strconv.Itoa(*counter),
			Label:         node.Type(),
			OriginalLabel: node.Type(),
		},
	}
	*counter++

	if node.Type() == "identifier" {
		result.Label = "var"
		result.OriginalLabel = node.Content(src)
	} else if node.NamedChildCount() == 0 {
		result.OriginalLabel = node.Content(src)
	}

	count := int(node.NamedChildCount())
	if b.config.IncludeUnnamed {
		count = int(node.ChildCount())
	}
	for i := 0; i < count; i++ {
		var child *sitter.Node
		if b.config.IncludeUnnamed {
			child = node.Child(i)
		} else {
			child = node.NamedChild(i)
		}
		result.Children = append(result.Children, b.convert(child, src, counter))
	}
	return result
}
