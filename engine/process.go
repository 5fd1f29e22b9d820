package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/skiffrun/skiff/iox"
	"github.com/skiffrun/skiff/ipc"
	"github.com/skiffrun/skiff/types"
)

// invokeProcess runs one engine process to completion.
//
// Wiring: the launch frame goes to the engine's stdin, which is then
// closed; stdout carries IPC frames back; stderr is inherited so the
// engine's console output reaches the user directly. The returned
// flag is the engine's reported success, not its exit code.
func invokeProcess(ctx context.Context, entry string, opts *types.InvocationOptions, root string) (bool, error) {
	cmd := exec.CommandContext(ctx, entry)
	cmd.Dir = root
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return false, fmt.Errorf("failed to create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return false, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("failed to start engine %s: %w", entry, err)
	}

	frame := &ipc.LaunchFrame{
		Version: types.Version,
		Root:    root,
		Options: opts,
	}
	if err := ipc.NewFrameEncoder(stdin).WriteLaunch(frame); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return false, fmt.Errorf("failed to send launch frame: %w", err)
	}
	iox.DiscardClose(stdin)

	result, readErr := ipc.ReadResult(ipc.NewFrameDecoder(stdout))
	waitErr := cmd.Wait()

	if readErr != nil {
		if waitErr != nil {
			return false, fmt.Errorf("engine exited without reporting a result (%v): %w", waitErr, readErr)
		}
		return false, fmt.Errorf("engine exited without reporting a result: %w", readErr)
	}

	return result.Success, nil
}
