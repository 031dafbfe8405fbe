package native

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Manifest is the optional fplc.yaml workspace file naming additional
// unit search directories and per-unit path aliases (SPEC_FULL.md
// §10.4): the core's IMPORT statement only knows a unit name, so this
// host collaborator decides where that name resolves to a file.
type Manifest struct {
	SearchPaths []string          `yaml:"search_paths"`
	Units       map[string]string `yaml:"units"`
}

// LoadManifest reads and parses fplc.yaml at path. A missing file is not
// an error — it returns an empty Manifest, so a workspace with no
// manifest still resolves IMPORTs via the default search rule.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// Resolver builds an interp.ImportResolver rooted at baseDir: a unit
// named in IMPORT resolves to an explicit alias in the manifest first,
// then to "<name>.psl" under baseDir or any of the manifest's search
// paths, in order.
func (m *Manifest) Resolver(baseDir string) func(name string) (string, error) {
	dirs := append([]string{baseDir}, m.SearchPaths...)
	return func(name string) (string, error) {
		if alias, ok := m.Units[name]; ok {
			return LoadSource(resolveRelative(baseDir, alias))
		}
		var lastErr error
		for _, dir := range dirs {
			candidate := filepath.Join(resolveRelative(baseDir, dir), name+".psl")
			src, err := LoadSource(candidate)
			if err == nil {
				return src, nil
			}
			lastErr = err
		}
		return "", fmt.Errorf("unit %q not found in any search path: %w", name, lastErr)
	}
}

func resolveRelative(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
