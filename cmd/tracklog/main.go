package main

import (
	"encoding/json"
	"fmt"
	"os"

	"tracklog/internal/github"
	"tracklog/internal/server/config"
	"tracklog/internal/server/service"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tracklog",
	Short: "Inspect sailing GPX tracks stored in a GitHub repository",
	Long: `tracklog fetches GPX track files from a GitHub repository, builds the
folder tree with per-track duration and distance statistics, and locates
the most recently recorded track.
Configuration is loaded from a .env file or environment variables.`,
}

func main() {
	cfg = config.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(recentCmd)

	rootCmd.PersistentFlags().StringP("root", "r", "", "Override tracks root directory from config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

func getTracksRoot(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	if root != "" {
		return root
	}
	return cfg.TracksRoot
}

func isVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}

// newService wires the GitHub source into a track service from config.
func newService(cmd *cobra.Command) (*service.TrackService, error) {
	if cfg.GitHubOwner == "" || cfg.GitHubRepo == "" {
		return nil, fmt.Errorf("GITHUB_OWNER and GITHUB_REPO must be configured")
	}

	var opts []github.Option
	if cfg.GitHubToken != "" {
		opts = append(opts, github.WithToken(cfg.GitHubToken))
	}
	source := github.NewClient(cfg.GitHubOwner, cfg.GitHubRepo, cfg.GitHubBranch,
		cfg.HTTPTimeout, opts...)

	return service.NewTrackService(source, getTracksRoot(cmd)), nil
}

func printJSON(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
