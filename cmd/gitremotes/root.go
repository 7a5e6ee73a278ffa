package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/gitremotes/internal/config"
	"github.com/smykla-labs/gitremotes/internal/events"
	"github.com/smykla-labs/gitremotes/internal/exec"
	"github.com/smykla-labs/gitremotes/internal/git"
	"github.com/smykla-labs/gitremotes/internal/provider"
	"github.com/smykla-labs/gitremotes/internal/remotes"
	"github.com/smykla-labs/gitremotes/pkg/logger"
)

var (
	repoFlag    string
	debugMode   bool
	traceMode   bool
	logFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "gitremotes",
	Short: "Inspect and manage git remotes with hosting-provider metadata",
	Long: "gitremotes enumerates a repository's remotes, classifies them " +
		"against known hosting providers, and manages them via the git CLI.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&repoFlag,
		"repo",
		"r",
		".",
		"Path to the repository",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debugMode,
		"debug",
		false,
		"Enable debug logging",
	)
	rootCmd.PersistentFlags().BoolVar(
		&traceMode,
		"trace",
		false,
		"Enable trace logging",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFilePath,
		"log-file",
		"",
		"Write logs to a file instead of stderr",
	)
}

// resolveRepoPath turns the --repo flag into an absolute repository path.
func resolveRepoPath() (string, error) {
	path, err := filepath.Abs(repoFlag)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve repository path")
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return "", errors.Wrapf(git.ErrNotRepository, "%s", path)
	}

	return path, nil
}

// buildLogger creates the logger from the persistent flags.
//
//nolint:ireturn // Assembly helper intentionally returns the interface
func buildLogger() (logger.Logger, error) {
	if logFilePath != "" {
		return logger.NewFileLogger(logFilePath, debugMode, traceMode)
	}

	return logger.NewWriterLogger(os.Stderr, debugMode, traceMode), nil
}

// buildProvider assembles the remote-metadata provider and its collaborators.
func buildProvider() (*remotes.Provider, logger.Logger, error) {
	log, err := buildLogger()
	if err != nil {
		return nil, nil, err
	}

	checker := exec.NewToolChecker()
	if err := checker.RequireTool("git"); err != nil {
		return nil, nil, err
	}

	loader, err := config.NewLoader()
	if err != nil {
		return nil, nil, err
	}

	signatures := func(repoPath string) []provider.Signature {
		cfg, err := loader.Load(repoPath)
		if err != nil {
			log.Error("failed to load config", "repo", repoPath, "error", err)
			return provider.Load(nil, nil, nil)
		}

		return cfg.Signatures()
	}

	runner := git.NewCLIRunner(exec.NewRunner())
	bus := events.NewBus()

	return remotes.NewProvider(runner, bus, signatures, log), log, nil
}
