// Package resolve discovers the invoking project's root and decides
// which engine implementation receives the validated options: a
// project-local install or the bundled fallback.
package resolve

import (
	"os"
	"path/filepath"

	"github.com/skiffrun/skiff/types"
)

// FindProjectRoot walks from dir toward the filesystem root looking
// for the project manifest and returns the first directory that
// carries one. The walk is iterative; on reaching the filesystem root
// (or a drive root on Windows) without a hit, the original dir is the
// root: no project context, not an error.
func FindProjectRoot(dir string) string {
	current := dir
	for {
		if hasManifest(current) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			// Filesystem or drive root reached.
			return dir
		}
		current = parent
	}
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, types.ManifestFile))
	return err == nil && !info.IsDir()
}
