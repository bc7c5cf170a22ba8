package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphFragmentFirst = `nodes:
  - id: x
    label: var
    originalLabel: rowCount
    phase: before
  - id: y
    label: add
    originalLabel: "+"
    phase: before
edges:
  - source: x
    target: y
    kind: operand
`

const graphFragmentSecond = `nodes:
  - id: x
    label: var
    originalLabel: colCount
    phase: before
  - id: y
    label: add
    originalLabel: "+"
    phase: before
edges:
  - source: x
    target: y
    kind: operand
`

const treeFragmentFirst = `root:
  id: n0
  label: assignment
  originalLabel: assignment
  children:
    - id: n1
      label: var
      originalLabel: rowTotal
    - id: n2
      label: literal
      originalLabel: "0"
`

const treeFragmentSecond = `root:
  id: n0
  label: assignment
  originalLabel: assignment
  children:
    - id: n1
      label: var
      originalLabel: colTotal
    - id: n2
      label: literal
      originalLabel: "0"
`

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	baseDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(baseDir, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return baseDir
}

func TestRepository_LoadGraphPatterns(t *testing.T) {
	baseDir := writeCorpus(t, map[string]string{
		"swap/fragment1.yaml": graphFragmentFirst,
		"swap/fragment2.yaml": graphFragmentSecond,
	})
	patterns, err := New().LoadGraphPatterns(context.Background(), baseDir)
	require.Nil(t, err)
	require.Equal(t, 1, len(patterns))

	pattern := patterns[0]
	assert.Equal(t, "swap", pattern.Key)
	assert.Equal(t, 2, pattern.Size())

	// hint is the longest common suffix of the variable across fragments
	variable := pattern.Graph.Node("x")
	require.NotNil(t, variable)
	require.NotNil(t, variable.SuffixHint)
	assert.Equal(t, "Count", *variable.SuffixHint)
	// non-variable nodes carry no hint
	assert.Nil(t, pattern.Graph.Node("y").SuffixHint)
}

func TestRepository_LoadTreePatterns(t *testing.T) {
	baseDir := writeCorpus(t, map[string]string{
		"init/fragment1.yaml": treeFragmentFirst,
		"init/fragment2.yaml": treeFragmentSecond,
		"init/fragment3.yaml": treeFragmentSecond, // duplicate, dropped by fingerprint
	})
	patterns, err := New().LoadTreePatterns(context.Background(), baseDir)
	require.Nil(t, err)
	require.Equal(t, 1, len(patterns))

	pattern := patterns[0]
	assert.Equal(t, "init", pattern.Key)
	require.Equal(t, 2, len(pattern.Fragments))

	variable := pattern.Fragments[0].Node("n1")
	require.NotNil(t, variable)
	require.NotNil(t, variable.SuffixHint)
	assert.Equal(t, "Total", *variable.SuffixHint)
}

func TestRepository_PatternOrderIsDeterministic(t *testing.T) {
	baseDir := writeCorpus(t, map[string]string{
		"zeta/fragment.yaml":  treeFragmentFirst,
		"alpha/fragment.yaml": treeFragmentFirst,
	})
	patterns, err := New().LoadTreePatterns(context.Background(), baseDir)
	require.Nil(t, err)
	require.Equal(t, 2, len(patterns))
	assert.Equal(t, "alpha", patterns[0].Key)
	assert.Equal(t, "zeta", patterns[1].Key)
}

func TestRepository_MalformedFragment(t *testing.T) {
	baseDir := writeCorpus(t, map[string]string{
		// edge references a missing node
		"broken/fragment.yaml": `nodes:
  - id: x
    label: var
    originalLabel: alpha
edges:
  - source: x
    target: missing
    kind: operand
`,
	})
	_, err := New().LoadGraphPatterns(context.Background(), baseDir)
	assert.NotNil(t, err)
}
