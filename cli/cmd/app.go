package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/skiffrun/skiff/types"
)

// NewApp assembles the launcher application: the run flow as the
// app-level action plus the read-only subcommands. Callers own the
// ExitErrHandler: main installs the exiting one, tests a no-op.
func NewApp(commit string) *cli.App {
	return &cli.App{
		Name:      "skiff",
		Usage:     "Test-engine launcher",
		ArgsUsage: "[patterns...]",
		Version:   fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		// The app owns --help so that usage output exits non-zero.
		HideHelp: true,
		Flags:    RunFlags(),
		Action:   RunAction,
		Commands: []*cli.Command{
			ResolveCommand(),
			VersionCommand(commit),
		},
	}
}
