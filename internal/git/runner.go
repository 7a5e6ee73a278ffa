package git

import (
	"context"

	"github.com/smykla-labs/gitremotes/internal/exec"
)

// Runner defines the git remote operations the provider layer needs.
type Runner interface {
	// ListRemotes returns the raw `git remote -v` output for the repository.
	ListRemotes(ctx context.Context, repoPath string) (string, error)

	// AddRemote adds a remote; fetch additionally fetches it (`-f`).
	AddRemote(ctx context.Context, repoPath, name, url string, fetch bool) error

	// PruneRemote deletes stale remote-tracking refs for the remote.
	PruneRemote(ctx context.Context, repoPath, name string) error

	// RemoveRemote removes the remote and its tracking refs.
	RemoveRemote(ctx context.Context, repoPath, name string) error
}

// CLIRunner implements Runner by invoking the git binary.
type CLIRunner struct {
	exec exec.Runner
}

// NewCLIRunner creates a Runner backed by the git command-line tool.
func NewCLIRunner(execRunner exec.Runner) *CLIRunner {
	return &CLIRunner{exec: execRunner}
}

// ListRemotes returns the raw `git remote -v` output for the repository.
// Failures surface verbatim; retry and recovery policy belong to the caller.
func (r *CLIRunner) ListRemotes(ctx context.Context, repoPath string) (string, error) {
	result, err := r.exec.Run(ctx, repoPath, "git", "remote", "-v")
	if err != nil {
		return "", err
	}

	return result.Stdout, nil
}

// AddRemote adds a remote via `git remote add [-f] <name> <url>`.
func (r *CLIRunner) AddRemote(ctx context.Context, repoPath, name, url string, fetch bool) error {
	args := []string{"remote", "add"}
	if fetch {
		args = append(args, "-f")
	}

	args = append(args, name, url)

	_, err := r.exec.Run(ctx, repoPath, "git", args...)

	return err
}

// PruneRemote runs `git remote prune <name>`.
func (r *CLIRunner) PruneRemote(ctx context.Context, repoPath, name string) error {
	_, err := r.exec.Run(ctx, repoPath, "git", "remote", "prune", name)
	return err
}

// RemoveRemote runs `git remote remove <name>`.
func (r *CLIRunner) RemoveRemote(ctx context.Context, repoPath, name string) error {
	_, err := r.exec.Run(ctx, repoPath, "git", "remote", "remove", name)
	return err
}

// Ensure CLIRunner implements Runner.
var _ Runner = (*CLIRunner)(nil)
