package types

import "path/filepath"

// Manifest and dependency layout constants.
const (
	// ManifestFile is the project manifest name whose presence marks a
	// project root.
	ManifestFile = "project.yaml"

	// EngineDepName is the dependency name of the test engine package.
	EngineDepName = "skiff-engine"

	// EngineManifestFile is the manifest an installed engine carries in
	// its install directory.
	EngineManifestFile = "engine.yaml"

	// CapabilityRun is the invocation entry point capability the
	// launcher requires from an installed engine.
	CapabilityRun = "run"
)

// EnginesDir is the project-relative directory engines install into.
var EnginesDir = filepath.Join(".skiff", "engines")

// ProjectManifest is the parsed project.yaml descriptor. Dependency
// values are opaque version constraints; the launcher checks presence,
// not satisfaction.
type ProjectManifest struct {
	Name            string            `yaml:"name"`
	Version         string            `yaml:"version"`
	Dependencies    map[string]string `yaml:"dependencies"`
	DevDependencies map[string]string `yaml:"dev_dependencies"`
}

// DependsOnEngine reports whether the manifest declares the engine in
// normal or development dependencies.
func (m *ProjectManifest) DependsOnEngine() bool {
	if _, ok := m.Dependencies[EngineDepName]; ok {
		return true
	}
	_, ok := m.DevDependencies[EngineDepName]
	return ok
}

// EngineManifest is the parsed engine.yaml an installed engine exposes.
// Entrypoint is relative to the engine install directory.
type EngineManifest struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Entrypoint   string   `yaml:"entrypoint"`
	Capabilities []string `yaml:"capabilities"`
}

// HasCapability reports whether the engine declares the named
// capability.
func (m *EngineManifest) HasCapability(name string) bool {
	for _, c := range m.Capabilities {
		if c == name {
			return true
		}
	}
	return false
}
