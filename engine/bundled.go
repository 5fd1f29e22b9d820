package engine

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/skiffrun/skiff/types"
)

// resolveOnce ensures bundled-path resolution happens once per process.
var resolveOnce sync.Once
var bundledPath string
var bundledErr error

// BundledPath returns the path to the bundled engine binary: the
// engine distributed with the launcher installation. Resolution order
// is the launcher executable's own directory, then PATH. Resolves on
// first call; subsequent calls return the cached result.
func BundledPath() (string, error) {
	resolveOnce.Do(func() {
		bundledPath, bundledErr = resolveBundled()
	})
	return bundledPath, bundledErr
}

func resolveBundled() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		if entry, ok := bundledEntryIn(filepath.Dir(exe)); ok {
			return entry, nil
		}
	}

	if entry, err := exec.LookPath(bundledBinary()); err == nil {
		return entry, nil
	}

	return "", fmt.Errorf("bundled %s not found next to the launcher or on PATH", types.EngineDepName)
}

// bundledEntryIn checks dir for the bundled engine binary.
func bundledEntryIn(dir string) (string, bool) {
	entry := filepath.Join(dir, bundledBinary())
	info, err := os.Stat(entry)
	if err != nil || info.IsDir() {
		return "", false
	}
	return entry, true
}

func bundledBinary() string {
	if runtime.GOOS == "windows" {
		return types.EngineDepName + ".exe"
	}
	return types.EngineDepName
}
