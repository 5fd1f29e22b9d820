package types

// EngineSource identifies which engine implementation a resolution
// selected.
type EngineSource string

// Engine sources. Exactly one is chosen per invocation.
const (
	// EngineLocal is a project-local engine installed under the project
	// root's dependency directory.
	EngineLocal EngineSource = "local"

	// EngineBundled is the fallback implementation shipped with the
	// launcher.
	EngineBundled EngineSource = "bundled"
)

// Resolution records the outcome of engine resolution: the discovered
// project root and the engine implementation that will be invoked.
type Resolution struct {
	// Root is the discovered project root. Falls back to the working
	// directory when no manifest exists up to the filesystem root.
	Root string `json:"root" yaml:"root"`

	// Source is the selected engine implementation.
	Source EngineSource `json:"source" yaml:"source"`

	// Dir is the engine install directory. Empty for bundled.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`

	// Version is the engine version: the installed manifest's version
	// for local, the launcher version for bundled.
	Version string `json:"version" yaml:"version"`

	// Entry is the resolved entrypoint path for a local engine. The
	// bundled entrypoint is resolved lazily at invoke time.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`
}
