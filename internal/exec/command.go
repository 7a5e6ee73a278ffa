// Package exec provides abstractions for executing the git command-line tool.
package exec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// Result contains the captured output of a command execution.
type Result struct {
	Stdout string
	Stderr string
}

// Runner executes a command in a working directory and captures its output.
type Runner interface {
	// Run executes a command in workingDir and returns its captured output.
	// A non-zero exit yields a *ProcessError; a missing binary yields
	// a *ToolNotFoundError. Exactly one process is spawned per call.
	Run(ctx context.Context, workingDir, name string, args ...string) (*Result, error)
}

// commandRunner implements Runner via os/exec.
type commandRunner struct{}

// NewRunner creates a new Runner.
//
//nolint:ireturn // Factory function intentionally returns interface
func NewRunner() Runner {
	return &commandRunner{}
}

// Run executes a command and returns the captured output.
func (*commandRunner) Run(ctx context.Context, workingDir, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = workingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return result, &ProcessError{
			Name:     name,
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr.String(),
		}
	}

	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return result, &ToolNotFoundError{Tool: name}
		}

		return result, errors.Wrapf(err, "executing %s", name)
	}

	return result, nil
}
