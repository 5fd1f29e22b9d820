package engine

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/skiffrun/skiff/ipc"
	"github.com/skiffrun/skiff/log"
	"github.com/skiffrun/skiff/types"
)

// TestMain doubles as a minimal engine when re-executed by the
// process-invocation tests: it reads the launch frame from stdin and
// reports success unless the options carry Bail.
func TestMain(m *testing.M) {
	if os.Getenv("SKIFF_ENGINE_HELPER") == "1" {
		helperEngineMain()
		return
	}
	os.Exit(m.Run())
}

func helperEngineMain() {
	payload, err := ipc.NewFrameDecoder(os.Stdin).ReadFrame()
	if err != nil {
		os.Exit(2)
	}
	frame, err := ipc.DecodeLaunch(payload)
	if err != nil {
		os.Exit(2)
	}

	success := frame.Options != nil && !frame.Options.Bail
	enc := ipc.NewFrameEncoder(os.Stdout)
	if err := enc.WriteResult(&ipc.ResultFrame{Success: success, Message: frame.Root}); err != nil {
		os.Exit(2)
	}
	os.Exit(0)
}

func testLogger() *log.Logger {
	return log.NewLoggerWithWriter(false, io.Discard)
}

func TestNew_SelectsLocal(t *testing.T) {
	res := &types.Resolution{Source: types.EngineLocal, Entry: "/proj/.skiff/engines/skiff-engine/bin/engine"}
	if _, ok := New(res, testLogger()).(*localEngine); !ok {
		t.Fatal("local resolution should produce a local engine")
	}
}

func TestNew_SelectsBundled(t *testing.T) {
	res := &types.Resolution{Source: types.EngineBundled, Version: types.Version}
	if _, ok := New(res, testLogger()).(*bundledEngine); !ok {
		t.Fatal("bundled resolution should produce a bundled engine")
	}
}

func TestInvokeProcess_Success(t *testing.T) {
	t.Setenv("SKIFF_ENGINE_HELPER", "1")
	root := t.TempDir()

	ok, err := invokeProcess(context.Background(), os.Args[0], &types.InvocationOptions{Cache: true}, root)
	if err != nil {
		t.Fatalf("invokeProcess failed: %v", err)
	}
	if !ok {
		t.Error("helper engine should report success")
	}
}

func TestInvokeProcess_ReportedFailure(t *testing.T) {
	t.Setenv("SKIFF_ENGINE_HELPER", "1")
	root := t.TempDir()

	// Bail makes the helper report failure; that is a false flag, not
	// an invocation error.
	ok, err := invokeProcess(context.Background(), os.Args[0], &types.InvocationOptions{Bail: true}, root)
	if err != nil {
		t.Fatalf("invokeProcess failed: %v", err)
	}
	if ok {
		t.Error("helper engine should report failure when bail is set")
	}
}

func TestInvokeProcess_MissingBinary(t *testing.T) {
	_, err := invokeProcess(context.Background(), "/nonexistent/engine", &types.InvocationOptions{}, t.TempDir())
	if err == nil {
		t.Fatal("expected error for a missing engine binary")
	}
}

func TestLocalEngine_InvokesEntry(t *testing.T) {
	t.Setenv("SKIFF_ENGINE_HELPER", "1")

	eng := &localEngine{entry: os.Args[0], logger: testLogger()}
	ok, err := eng.Invoke(context.Background(), &types.InvocationOptions{}, t.TempDir())
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !ok {
		t.Error("expected success from helper engine")
	}
}

func TestBundledEntryIn(t *testing.T) {
	dir := t.TempDir()
	if _, ok := bundledEntryIn(dir); ok {
		t.Fatal("empty dir should not resolve a bundled entry")
	}

	entry := filepath.Join(dir, bundledBinary())
	if err := os.WriteFile(entry, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	got, ok := bundledEntryIn(dir)
	if !ok {
		t.Fatal("bundled entry should resolve once the binary exists")
	}
	if got != entry {
		t.Errorf("entry = %q, want %q", got, entry)
	}
}
