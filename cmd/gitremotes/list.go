package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/gitremotes/internal/git"
	"github.com/smykla-labs/gitremotes/internal/remotes"
)

var jsonOutput bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repository's remotes with provider classification",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the remotes as JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	repoPath, err := resolveRepoPath()
	if err != nil {
		return err
	}

	rp, _, err := buildProvider()
	if err != nil {
		return err
	}

	collection := rp.GetRemotes(cmd.Context(), repoPath, remotes.ListOptions{Sort: true})

	if jsonOutput {
		return printJSON(collection)
	}

	printTable(collection)

	return nil
}

// remoteJSON is the stable JSON shape for host-application consumption.
type remoteJSON struct {
	Name     string `json:"name"`
	FetchURL string `json:"fetchUrl,omitempty"`
	PushURL  string `json:"pushUrl,omitempty"`
	Provider string `json:"provider,omitempty"`
}

func printJSON(collection []git.Remote) error {
	out := make([]remoteJSON, 0, len(collection))

	for _, remote := range collection {
		entry := remoteJSON{
			Name:     remote.Name,
			FetchURL: remote.FetchURL,
			PushURL:  remote.PushURL,
		}
		if remote.Provider != nil {
			entry.Provider = string(remote.Provider.Kind)
		}

		out = append(out, entry)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(out)
}

func printTable(collection []git.Remote) {
	if len(collection) == 0 {
		fmt.Println("No remotes configured.")
		return
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Name", "Fetch URL", "Push URL", "Provider"})

	for _, remote := range collection {
		providerName := "-"
		if remote.Provider != nil {
			providerName = remote.Provider.Name
		}

		_ = table.Append([]string{remote.Name, remote.FetchURL, remote.PushURL, providerName})
	}

	_ = table.Render()
}
