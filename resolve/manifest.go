package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skiffrun/skiff/types"
)

// LoadProjectManifest reads the project manifest at root. A missing
// manifest is not an error: it returns (nil, nil), meaning no project
// context. A malformed manifest is fatal.
func LoadProjectManifest(root string) (*types.ProjectManifest, error) {
	path := filepath.Join(root, types.ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read project manifest %q: %w", path, err)
	}

	var manifest types.ProjectManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &manifest, nil
}

// LoadEngineManifest reads the engine manifest inside an engine
// install directory. Here absence is an error: callers check for the
// file before loading.
func LoadEngineManifest(dir string) (*types.EngineManifest, error) {
	path := filepath.Join(dir, types.EngineManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read engine manifest %q: %w", path, err)
	}

	var manifest types.EngineManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &manifest, nil
}
