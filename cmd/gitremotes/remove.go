package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a remote from the repository",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath()
	if err != nil {
		return err
	}

	rp, _, err := buildProvider()
	if err != nil {
		return err
	}

	if err := rp.RemoveRemote(cmd.Context(), repoPath, args[0]); err != nil {
		return err
	}

	fmt.Printf("Removed remote %s\n", args[0])

	return nil
}
