package main

import (
	"errors"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestExitErrHandler_NilError(t *testing.T) {
	// Should not panic or exit on nil error.
	exitErrHandler(nil, nil)
}

func TestExitCodes_Contract(t *testing.T) {
	// Exit code contract: 0 success; 1 for validation failure,
	// resolution failure, engine-reported failure, and help.
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: cli.Exit("", 0), want: 0},
		{name: "validation failure", err: cli.Exit("invalid invocation: --run-in-band and --max-workers are mutually exclusive", 1), want: 1},
		{name: "resolution failure", err: cli.Exit("engine declared but not installed", 1), want: 1},
		{name: "engine reported failure", err: cli.Exit("", 1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var coder cli.ExitCoder
			if !errors.As(tt.err, &coder) {
				t.Fatal("cli.Exit should return an ExitCoder")
			}
			if coder.ExitCode() != tt.want {
				t.Errorf("exit code = %d, want %d", coder.ExitCode(), tt.want)
			}
		})
	}
}

func TestExitErrHandler_WrappedExitCoder(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), cli.Exit("inner error", 1))

	var coder cli.ExitCoder
	if !errors.As(wrapped, &coder) {
		t.Fatal("wrapped error should still match cli.ExitCoder")
	}
	if coder.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", coder.ExitCode())
	}
}

func TestExitErrHandler_RegularErrorIsNotExitCoder(t *testing.T) {
	var coder cli.ExitCoder
	if errors.As(errors.New("regular error"), &coder) {
		t.Fatal("regular error should not be cli.ExitCoder")
	}
}

func TestStyled_NonTTYPassthrough(t *testing.T) {
	// Under go test stderr is not a char device, so messages pass
	// through unstyled.
	if isStderrTTY() {
		t.Skip("stderr unexpectedly a TTY")
	}
	if got := styled("plain"); got != "plain" {
		t.Errorf("styled() = %q, want passthrough", got)
	}
}
