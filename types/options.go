// Package types defines shared types for the skiff launcher: the
// validated invocation options, project and engine manifests, and the
// engine resolution record.
package types

// InvocationOptions is the full set of options accepted by a launch
// invocation. It is built from CLI flags (plus optional config-file
// defaults), mutated only by validation, and immutable afterward.
//
// The struct crosses the process boundary to the engine inside a
// launch frame, hence the msgpack tags.
type InvocationOptions struct {
	// Config is the path to a launcher defaults file, if any.
	Config string `json:"config,omitempty" msgpack:"config,omitempty"`

	// Coverage enables coverage collection in the engine.
	Coverage bool `json:"coverage" msgpack:"coverage"`

	// MaxWorkers is the requested worker-pool size. Zero means the
	// engine picks its own default.
	MaxWorkers int `json:"maxWorkers,omitempty" msgpack:"max_workers,omitempty"`

	// MaxWorkersSet records whether the worker count was given
	// explicitly. Validation needs the distinction; the engine does not.
	MaxWorkersSet bool `json:"-" msgpack:"-"`

	// OnlyChanged restricts the run to tests affected by uncommitted
	// changes. Mutually exclusive with Patterns.
	OnlyChanged bool `json:"onlyChanged" msgpack:"only_changed"`

	// RunInBand runs tests serially in the engine process.
	RunInBand bool `json:"runInBand" msgpack:"run_in_band"`

	// TestEnvData carries environment data for the engine. It arrives
	// as a raw JSON string and is replaced in place by its decoded
	// value during validation.
	TestEnvData any `json:"testEnvData,omitempty" msgpack:"test_env_data,omitempty"`

	// TestPathPattern filters test files by path regexp.
	TestPathPattern string `json:"testPathPattern,omitempty" msgpack:"test_path_pattern,omitempty"`

	// Watch keeps the engine running, re-executing on file changes.
	Watch bool `json:"watch" msgpack:"watch"`

	// WatchExtensions lists the file extensions the watcher tracks.
	// Only meaningful when Watch is set.
	WatchExtensions []string `json:"watchExtensions,omitempty" msgpack:"watch_extensions,omitempty"`

	// Bail stops the run after the first failing suite.
	Bail bool `json:"bail" msgpack:"bail"`

	// JSON makes the engine emit machine-readable results.
	JSON bool `json:"json" msgpack:"json"`

	// TestRunner overrides the engine's per-suite runner.
	TestRunner string `json:"testRunner,omitempty" msgpack:"test_runner,omitempty"`

	// Cache enables the engine's transform cache. Defaults to on.
	Cache bool `json:"cache" msgpack:"cache"`

	// Watcher enables the native filesystem watcher. Defaults to on.
	Watcher bool `json:"watcher" msgpack:"watcher"`

	// Verbose enables debug-level launcher logging and verbose engine
	// reporting.
	Verbose bool `json:"verbose" msgpack:"verbose"`

	// Patterns holds the free-form positional path-pattern arguments.
	// Mutually exclusive with OnlyChanged.
	Patterns []string `json:"patterns,omitempty" msgpack:"patterns,omitempty"`
}
