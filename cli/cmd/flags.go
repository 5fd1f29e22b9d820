// Package cmd provides CLI commands and the launch flow for the skiff
// binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags for the read-only commands (version, resolve).
var (
	// FormatFlag selects output format: json, table, yaml.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// NoColorFlag disables colored output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
)

// ReadOnlyFlags returns the shared flags for all read-only commands.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		NoColorFlag,
	}
}

// RunFlags returns the app-level flags for the launch flow. The app
// owns its help flag so that usage output exits non-zero.
func RunFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "Show usage and exit non-zero",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a launcher defaults file (YAML)",
		},
		&cli.BoolFlag{
			Name:  "coverage",
			Usage: "Collect test coverage",
		},
		&cli.IntFlag{
			Name:    "max-workers",
			Aliases: []string{"w"},
			Usage:   "Number of parallel test workers",
		},
		&cli.BoolFlag{
			Name:    "run-in-band",
			Aliases: []string{"i"},
			Usage:   "Run tests serially in the engine process",
		},
		&cli.BoolFlag{
			Name:    "only-changed",
			Aliases: []string{"o"},
			Usage:   "Run only tests affected by uncommitted changes",
		},
		&cli.StringFlag{
			Name:  "test-env-data",
			Usage: "Environment data for the engine, as JSON",
		},
		&cli.StringFlag{
			Name:  "test-path-pattern",
			Usage: "Regexp filter for test file paths",
		},
		&cli.BoolFlag{
			Name:  "watch",
			Usage: "Re-run tests on file changes",
		},
		&cli.StringFlag{
			Name:  "watch-extensions",
			Usage: "Comma-separated file extensions to watch (requires --watch)",
		},
		&cli.BoolFlag{
			Name:    "bail",
			Aliases: []string{"b"},
			Usage:   "Stop after the first failing suite",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit machine-readable results",
		},
		&cli.StringFlag{
			Name:  "test-runner",
			Usage: "Override the engine's per-suite runner",
		},
		&cli.BoolFlag{
			Name:  "cache",
			Usage: "Use the engine's transform cache",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "watcher",
			Usage: "Use the native filesystem watcher",
			Value: true,
		},
		// No -v alias: the version flag owns it.
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Debug-level launcher logging and verbose engine output",
		},
	}
}
