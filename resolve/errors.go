package resolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for dependency-resolution failures.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrEngineMissing indicates the project manifest declares the
	// engine but no install exists under the dependency directory.
	ErrEngineMissing = errors.New("engine declared but not installed")

	// ErrEngineIncompatible indicates an installed engine that does not
	// expose the expected invocation entry point.
	ErrEngineIncompatible = errors.New("installed engine is incompatible")
)

// ResolveError wraps a resolution failure with the project root it
// occurred at and actionable remediation text. The sentinel stays
// reachable through errors.Is.
type ResolveError struct {
	// Kind is the sentinel error for classification.
	Kind error
	// Root is the project root resolution was running against.
	Root string
	// Remedy is the user-facing remediation instruction.
	Remedy string
	// Err is the underlying error, if any.
	Err error
}

func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("%v (project root %s)", e.Kind, e.Root)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Remedy != "" {
		msg = msg + "\n" + e.Remedy
	}
	return msg
}

// Unwrap returns the underlying error for chain traversal.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *ResolveError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}
