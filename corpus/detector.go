package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Project represents information about a detected Go project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Module       string // Module path from go.mod
	RelativePath string // Path from project root to the specified file
}

// DetectProject locates the enclosing Go module of the given file or
// directory, so callers can address localization targets by module-relative
// path
func DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	dir := startDir
	for {
		modPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(modPath); err == nil {
			data, err := os.ReadFile(modPath)
			if err != nil {
				return nil, err
			}
			parsed, err := modfile.Parse(modPath, data, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", modPath, err)
			}
			if parsed.Module == nil {
				return nil, fmt.Errorf("%s has no module directive", modPath)
			}
			relPath, err := filepath.Rel(dir, absPath)
			if err != nil {
				relPath = filepath.Base(absPath)
			}
			return &Project{
				RootPath:     dir,
				Module:       parsed.Module.Mod.Path,
				RelativePath: filepath.ToSlash(relPath),
			}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no go.mod found above %s", startDir)
		}
		dir = parent
	}
}
