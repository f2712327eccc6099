// Package cli implements the ghsync command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	token string
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "ghsync",
	Short: "Sync a local directory into a GitHub repository path",
	Long: `ghsync pushes the files of a local flat directory into a path inside a
GitHub repository using only the Git Data API: no clone, no working copy.

Authentication can be provided via the --token flag or the GITHUB_TOKEN
environment variable.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "GitHub OAuth token")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// resolveToken returns the token flag, falling back to the environment.
func resolveToken() string {
	if token != "" {
		return token
	}

	return os.Getenv("GITHUB_TOKEN")
}
