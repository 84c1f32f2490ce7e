package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the track tree sorted by recording date",
	Long: `Fetch the repository listing, build the folder tree, and print it as JSON
sorted by recording date. Folders with the most recent activity come first;
files within a folder are ordered oldest to newest.`,
	Example: `  # Print the tree for the configured repository
  tracklog tree

  # Use a different root directory
  tracklog tree --root voyages`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd)
	},
}

func runTree(cmd *cobra.Command) error {
	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if isVerbose(cmd) {
		cmd.Printf("Fetching tracks under %s/\n", getTracksRoot(cmd))
	}

	tree, dates := svc.LoadTree(ctx)
	if tree.IsEmpty() {
		cmd.Println("No tracks found.")
		return nil
	}

	if isVerbose(cmd) {
		cmd.Printf("Found %d tracks\n", tree.FileCount())
	}

	return printJSON(map[string]any{
		"tree":  tree,
		"dates": dates,
	})
}
