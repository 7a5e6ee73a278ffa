package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune <name>",
	Short: "Delete stale remote-tracking branches for a remote",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath()
	if err != nil {
		return err
	}

	rp, _, err := buildProvider()
	if err != nil {
		return err
	}

	if err := rp.PruneRemote(cmd.Context(), repoPath, args[0]); err != nil {
		return err
	}

	fmt.Printf("Pruned remote %s\n", args[0])

	return nil
}
