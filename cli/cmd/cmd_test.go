package cmd

import (
	"testing"

	"github.com/urfave/cli/v2"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, f := range flags {
		names[f.Names()[0]] = true
	}
	return names
}

func TestReadOnlyFlags_IncludesFormat(t *testing.T) {
	names := flagNames(ReadOnlyFlags())
	if !names["format"] || !names["no-color"] {
		t.Error("read-only commands should share --format and --no-color")
	}
}

func TestRunFlags_CoversInvocationSurface(t *testing.T) {
	names := flagNames(RunFlags())
	for _, want := range []string{
		"help", "config", "coverage", "max-workers", "run-in-band",
		"only-changed", "test-env-data", "test-path-pattern", "watch",
		"watch-extensions", "bail", "json", "test-runner", "cache",
		"watcher", "verbose",
	} {
		if !names[want] {
			t.Errorf("run flags should include --%s", want)
		}
	}
}

func TestRunFlags_DefaultsOn(t *testing.T) {
	for _, f := range RunFlags() {
		b, ok := f.(*cli.BoolFlag)
		if !ok {
			continue
		}
		switch b.Name {
		case "cache", "watcher":
			if !b.Value {
				t.Errorf("--%s should default to enabled", b.Name)
			}
		default:
			if b.Value {
				t.Errorf("--%s should default to disabled", b.Name)
			}
		}
	}
}

// Setup appends the framework's version flag, so this catches any
// name or alias collision across the full flag surface the binary
// registers. The stdlib flag set panics on duplicates.
func TestApp_FlagNamesUnique(t *testing.T) {
	app := NewApp("test")
	app.Setup()

	seen := make(map[string]string)
	for _, f := range app.Flags {
		for _, name := range f.Names() {
			if prev, ok := seen[name]; ok {
				t.Errorf("flag name %q registered by both --%s and --%s", name, prev, f.Names()[0])
			}
			seen[name] = f.Names()[0]
		}
	}
}

func TestApp_PlainInvocationParses(t *testing.T) {
	// A bare invocation must reach the action, never die during flag
	// registration.
	app := NewApp("test")
	app.Action = func(*cli.Context) error { return nil }
	app.ExitErrHandler = func(*cli.Context, error) {}

	if err := app.Run([]string{"skiff"}); err != nil {
		t.Fatalf("plain invocation failed: %v", err)
	}
}

func TestVersionCommand_Shape(t *testing.T) {
	c := VersionCommand("abc123")
	if c.Name != "version" {
		t.Errorf("name = %q", c.Name)
	}
	if !flagNames(c.Flags)["format"] {
		t.Error("version should accept --format")
	}
}

func TestResolveCommand_Shape(t *testing.T) {
	c := ResolveCommand()
	if c.Name != "resolve" {
		t.Errorf("name = %q", c.Name)
	}
	if !flagNames(c.Flags)["format"] {
		t.Error("resolve should accept --format")
	}
}
