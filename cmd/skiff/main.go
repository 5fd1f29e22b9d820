// Package main provides the skiff CLI entrypoint.
//
// skiff validates invocation options, resolves which test-engine
// implementation should run (a project-local install or the bundled
// fallback), and delegates to it.
//
// Usage:
//
//	skiff [options] [patterns...]
//	skiff resolve | version
//
// Exit codes:
//   - 0: engine reported success
//   - 1: validation failure, resolution failure, engine failure, help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/skiffrun/skiff/cli/cmd"
	"github.com/skiffrun/skiff/cli/render"
	"github.com/skiffrun/skiff/launch"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	// The execution-mode contract is established once, before any
	// component runs: the engine and everything it loads see SKIFF_ENV.
	if err := launch.EnsureTestEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewApp(commit)
	app.ExitErrHandler = exitErrHandler

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder
		// errors. This branch handles unexpected errors that weren't
		// wrapped.
		os.Exit(1)
	}
}

// exitErrHandler handles errors from the CLI, preserving exit codes
// from cli.Exit(). Fatal diagnostics are surfaced verbatim on stderr,
// styled when stderr is a TTY.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// Empty messages and bare process exit statuses carry no
		// diagnostic value; skip them.
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, styled(msg))
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// styled applies error styling when stderr is a TTY.
func styled(msg string) string {
	if !isStderrTTY() {
		return msg
	}
	return render.ErrorStyle.Render(msg)
}

func isStderrTTY() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
