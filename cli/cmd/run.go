package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/skiffrun/skiff/cli/config"
	"github.com/skiffrun/skiff/engine"
	"github.com/skiffrun/skiff/launch"
	"github.com/skiffrun/skiff/log"
	"github.com/skiffrun/skiff/resolve"
	"github.com/skiffrun/skiff/types"
)

// Exit codes. Validation failures, resolution failures, and
// engine-reported test failures all exit 1; they are distinguished by
// their diagnostic text, never conflated internally.
const (
	exitSuccess = 0
	exitFailure = 1
)

// newEngine constructs the engine for a resolution. Replaced in tests.
var newEngine = engine.New

// RunAction is the app-level launch flow: options, validation,
// resolution, delegation, exit code.
func RunAction(c *cli.Context) error {
	if c.Bool("help") {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", exitFailure)
	}

	logger := log.NewLogger(c.Bool("verbose"))

	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid invocation: %v", err), exitFailure)
		}
		cfg = loaded
	}

	opts := buildOptions(c, cfg)
	if err := launch.Validate(opts); err != nil {
		return cli.Exit(fmt.Sprintf("invalid invocation: %v", err), exitFailure)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	res, err := resolve.Resolve(cwd)
	if err != nil {
		logger.Error("engine resolution failed", map[string]any{"cwd": cwd, "error": err.Error()})
		return cli.Exit(err.Error(), exitFailure)
	}

	logger = logger.WithResolution(res)
	logger.Debug("engine resolved", map[string]any{"entry": res.Entry})

	ok, err := newEngine(res, logger).Invoke(c.Context, opts, res.Root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("engine invocation failed: %v", err), exitFailure)
	}
	if !ok {
		// Tests failed. The engine already reported; no diagnostic here.
		return cli.Exit("", exitFailure)
	}
	return nil
}

// buildOptions assembles InvocationOptions from flags, with config
// file values filling in where the flag was not given.
func buildOptions(c *cli.Context, cfg *config.Config) *types.InvocationOptions {
	opts := &types.InvocationOptions{
		Config:          c.String("config"),
		Coverage:        c.Bool("coverage"),
		MaxWorkers:      c.Int("max-workers"),
		MaxWorkersSet:   c.IsSet("max-workers"),
		OnlyChanged:     c.Bool("only-changed"),
		RunInBand:       c.Bool("run-in-band"),
		TestPathPattern: c.String("test-path-pattern"),
		Watch:           c.Bool("watch"),
		WatchExtensions: splitExtensions(c.String("watch-extensions")),
		Bail:            c.Bool("bail"),
		JSON:            c.Bool("json"),
		TestRunner:      c.String("test-runner"),
		Cache:           c.Bool("cache"),
		Watcher:         c.Bool("watcher"),
		Verbose:         c.Bool("verbose"),
		Patterns:        c.Args().Slice(),
	}
	if raw := c.String("test-env-data"); raw != "" {
		opts.TestEnvData = raw
	}

	if cfg == nil {
		return opts
	}

	// Config defaults apply only where the flag is absent.
	if !c.IsSet("max-workers") && cfg.MaxWorkers > 0 {
		opts.MaxWorkers = cfg.MaxWorkers
	}
	if !c.IsSet("test-runner") && cfg.TestRunner != "" {
		opts.TestRunner = cfg.TestRunner
	}
	if !c.IsSet("test-path-pattern") && cfg.TestPathPattern != "" {
		opts.TestPathPattern = cfg.TestPathPattern
	}
	if !c.IsSet("watch-extensions") && len(cfg.WatchExtensions) > 0 {
		opts.WatchExtensions = cfg.WatchExtensions
	}
	if !c.IsSet("coverage") && cfg.Coverage != nil {
		opts.Coverage = *cfg.Coverage
	}
	if !c.IsSet("bail") && cfg.Bail != nil {
		opts.Bail = *cfg.Bail
	}
	if !c.IsSet("cache") && cfg.Cache != nil {
		opts.Cache = *cfg.Cache
	}
	if !c.IsSet("watcher") && cfg.Watcher != nil {
		opts.Watcher = *cfg.Watcher
	}

	return opts
}

// splitExtensions parses the comma-separated --watch-extensions list,
// trimming whitespace and dropping empty entries.
func splitExtensions(raw string) []string {
	if raw == "" {
		return nil
	}
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		if ext := strings.TrimSpace(part); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}
