// Package launch validates invocation options before any resolution
// or delegation happens.
//
// Validation is fail-fast and ordered: the first violated rule aborts
// the invocation with a distinct error, and no partial validation
// state leaks downstream. After Validate returns nil the options are
// self-consistent and no later component re-checks these rules.
package launch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skiffrun/skiff/types"
)

// Sentinel errors for the cross-option rules.
// Use errors.Is(err, ErrXxx) for typed assertions.
var (
	// ErrWorkerConflict: serial in-process execution and a parallel
	// worker pool are incompatible execution strategies.
	ErrWorkerConflict = errors.New("--run-in-band and --max-workers are mutually exclusive")

	// ErrSelectionConflict: changed-file selection and explicit path
	// patterns are alternative test-selection strategies.
	ErrSelectionConflict = errors.New("--only-changed cannot be combined with path patterns")

	// ErrWatchExtensions: watch extensions have no effect without
	// continuous watching active.
	ErrWatchExtensions = errors.New("--watch-extensions requires --watch")

	// ErrEnvData: the environment-data payload must be valid JSON.
	ErrEnvData = errors.New("invalid --test-env-data")
)

// Validate enforces the cross-option rules, in order, mutating opts
// only to decode TestEnvData in place. Downstream consumers expect
// structured data there, not a raw string.
func Validate(opts *types.InvocationOptions) error {
	if opts.RunInBand && opts.MaxWorkersSet {
		return ErrWorkerConflict
	}

	if opts.OnlyChanged && len(opts.Patterns) > 0 {
		return fmt.Errorf("%w (got %d pattern arguments)", ErrSelectionConflict, len(opts.Patterns))
	}

	if len(opts.WatchExtensions) > 0 && !opts.Watch {
		return ErrWatchExtensions
	}

	if raw, ok := opts.TestEnvData.(string); ok && raw != "" {
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			return fmt.Errorf("%w: %v", ErrEnvData, err)
		}
		opts.TestEnvData = decoded
	}

	return nil
}
