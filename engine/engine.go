// Package engine invokes the resolved test-engine implementation.
//
// Both implementations are process-backed and share the delegation
// contract: the launcher writes one launch frame to the engine's
// stdin and waits for a result frame on its stdout. The engine's
// human-readable output goes to stderr and passes through untouched.
package engine

import (
	"context"

	"github.com/skiffrun/skiff/log"
	"github.com/skiffrun/skiff/types"
)

// Engine is the invocation capability the launcher requires from any
// implementation: run with these options in this root, report success.
type Engine interface {
	// Invoke runs the engine and returns its reported success flag.
	// A false flag means tests failed; an error means the engine could
	// not run or did not report.
	Invoke(ctx context.Context, opts *types.InvocationOptions, root string) (bool, error)
}

// New selects the implementation for a resolution. Exactly one engine
// is constructed and invoked per process run.
func New(res *types.Resolution, logger *log.Logger) Engine {
	if res.Source == types.EngineLocal {
		return &localEngine{entry: res.Entry, logger: logger}
	}
	return &bundledEngine{logger: logger}
}

// localEngine invokes a project-local engine install through its
// manifest-declared entrypoint.
type localEngine struct {
	entry  string
	logger *log.Logger
}

func (e *localEngine) Invoke(ctx context.Context, opts *types.InvocationOptions, root string) (bool, error) {
	e.logger.Debug("invoking local engine", map[string]any{"entry": e.entry})
	return invokeProcess(ctx, e.entry, opts, root)
}

// bundledEngine invokes the engine binary shipped alongside the
// launcher, resolved lazily at invoke time.
type bundledEngine struct {
	logger *log.Logger
}

func (e *bundledEngine) Invoke(ctx context.Context, opts *types.InvocationOptions, root string) (bool, error) {
	entry, err := BundledPath()
	if err != nil {
		return false, err
	}
	e.logger.Debug("invoking bundled engine", map[string]any{"entry": entry})
	return invokeProcess(ctx, entry, opts, root)
}
