package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandError is returned when a child process runs and exits non-zero.
type CommandError struct {
	Command string
	Args    []string
	Code    int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s exited with code %d", e.Command, strings.Join(e.Args, " "), e.Code)
}

// ProcessError is returned when a child process cannot be started.
type ProcessError struct {
	Command string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// runCommand runs name with args in dir. Failures are classified as
// *CommandError (non-zero exit), *ProcessError (spawn failure) or returned
// as is.
func runCommand(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return &ProcessError{Command: name, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Command: name, Args: args, Code: exitErr.ExitCode()}
	}
	return err
}
