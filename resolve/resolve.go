package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skiffrun/skiff/types"
)

// Resolve discovers the project root enclosing cwd and selects the
// engine implementation for this invocation.
//
// A present local install always wins over the bundled fallback, so a
// broken local install is surfaced, never masked:
//   - installed but lacking the run capability -> ErrEngineIncompatible
//   - declared in the manifest but not installed -> ErrEngineMissing
//
// Only with no local install and no declaration does resolution fall
// back to the bundled engine. Resolution is single-level: the local
// engine's own nested dependencies are not inspected.
func Resolve(cwd string) (*types.Resolution, error) {
	root := FindProjectRoot(cwd)

	engineDir := filepath.Join(root, types.EnginesDir, types.EngineDepName)
	if installed(engineDir) {
		manifest, err := LoadEngineManifest(engineDir)
		if err != nil {
			return nil, &ResolveError{
				Kind:   ErrEngineIncompatible,
				Root:   root,
				Remedy: fmt.Sprintf("reinstall or upgrade the project's %s", types.EngineDepName),
				Err:    err,
			}
		}
		if manifest.Entrypoint == "" || !manifest.HasCapability(types.CapabilityRun) {
			return nil, &ResolveError{
				Kind:   ErrEngineIncompatible,
				Root:   root,
				Remedy: fmt.Sprintf("the installed %s (version %s) does not expose the %q entry point; upgrade it", types.EngineDepName, manifest.Version, types.CapabilityRun),
			}
		}
		return &types.Resolution{
			Root:    root,
			Source:  types.EngineLocal,
			Dir:     engineDir,
			Version: manifest.Version,
			Entry:   filepath.Join(engineDir, manifest.Entrypoint),
		}, nil
	}

	manifest, err := LoadProjectManifest(root)
	if err != nil {
		return nil, err
	}
	if manifest != nil && manifest.DependsOnEngine() {
		return nil, &ResolveError{
			Kind:   ErrEngineMissing,
			Root:   root,
			Remedy: fmt.Sprintf("the project declares %s but it is not installed under %s; install project dependencies and retry", types.EngineDepName, types.EnginesDir),
		}
	}

	return &types.Resolution{
		Root:    root,
		Source:  types.EngineBundled,
		Version: types.Version,
	}, nil
}

// installed reports whether an engine install exists: the install
// directory carries an engine manifest.
func installed(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, types.EngineManifestFile))
	return err == nil && !info.IsDir()
}
