package compressor

import (
	"bytes"
	"context"
	"os/exec"
)

// run invokes the tool in dir and waits for it. Stdout is discarded; stderr
// is captured for the error report.
func run(ctx context.Context, dir, tool string, args []string) error {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return &ExecutionError{
			Tool:   tool,
			Args:   args,
			Stderr: stderrBuf.String(),
			Err:    err,
		}
	}
	return nil
}
