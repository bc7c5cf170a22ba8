package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectProject(t *testing.T) {
	rootDir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(rootDir, "go.mod"), []byte("module example.com/demo\n\ngo 1.21\n"), 0o644))
	pkgDir := filepath.Join(rootDir, "internal", "service")
	require.Nil(t, os.MkdirAll(pkgDir, 0o755))
	source := filepath.Join(pkgDir, "main.go")
	require.Nil(t, os.WriteFile(source, []byte("package service\n"), 0o644))

	project, err := DetectProject(source)
	require.Nil(t, err)
	assert.Equal(t, "example.com/demo", project.Module)
	assert.Equal(t, rootDir, project.RootPath)
	assert.Equal(t, "internal/service/main.go", project.RelativePath)
}

func TestDetectProject_NoModule(t *testing.T) {
	baseDir := t.TempDir()
	_, err := DetectProject(baseDir)
	assert.NotNil(t, err)
}
