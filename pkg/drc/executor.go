package drc

import (
	"context"
	"io"
	"os/exec"
)

// Executor runs an external command with stdout and stderr both written to out.
// An error implementing HasExitCode means the command started and exited
// with a non-zero status.
type Executor interface {
	Exec(ctx context.Context, name string, args []string, out io.Writer) error
}

// HasExitCode is implemented by *exec.ExitError.
type HasExitCode interface {
	ExitCode() int
}

type OSExecutor struct{}

func NewOSExecutor() *OSExecutor {
	return &OSExecutor{}
}

func (e *OSExecutor) Exec(ctx context.Context, name string, args []string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run() //nolint:wrapcheck
}
