package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/gitremotes/internal/remotes"
)

var fetchAfterAdd bool

var addCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a remote to the repository",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVarP(
		&fetchAfterAdd,
		"fetch",
		"f",
		false,
		"Fetch the remote after adding it",
	)
}

func runAdd(cmd *cobra.Command, args []string) error {
	repoPath, err := resolveRepoPath()
	if err != nil {
		return err
	}

	rp, _, err := buildProvider()
	if err != nil {
		return err
	}

	name, url := args[0], args[1]

	added, err := rp.AddRemoteWithResult(cmd.Context(), repoPath, name, url, remotes.AddOptions{
		Fetch: fetchAfterAdd,
	})
	if err != nil {
		return err
	}

	if added != nil && added.Provider != nil {
		fmt.Printf("Added remote %s (%s)\n", name, added.Provider.Name)
	} else {
		fmt.Printf("Added remote %s\n", name)
	}

	return nil
}
