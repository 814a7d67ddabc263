package services

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts command execution for testability. Implementations run the
// binary to completion and return whatever the tool wrote to stderr alongside
// the exit error.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (stderr string, err error)
}

// CommandRunner executes binaries through os/exec. The process blocks until
// the tool exits; cancellation of ctx kills the child.
type CommandRunner struct{}

func (CommandRunner) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}
