package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/asana/ghsync"
	"github.com/asana/ghsync/github"
	"github.com/asana/ghsync/log"
)

var (
	syncOwner             string
	syncRepo              string
	syncLocalPath         string
	syncRepoPath          string
	syncMessage           string
	syncBranch            string
	syncBaseBranch        string
	syncCreateBranch      bool
	syncCreatePullRequest bool
	syncPreserveRepoFiles bool
	syncRequirePath       bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync a local directory into a repository path",
	Long: `Sync the contents of a local flat directory into a path inside a GitHub
repository. Only the trees on the path from the target directory up to the
root are rewritten; everything else is reused by hash. A sync that produces
no change makes no commit.

Examples:
  # Replace the contents of site/assets on master
  ghsync sync --owner asana --repo website --local ./build --path site/assets \
    --message "Publish assets"

  # Additively merge into a feature branch, creating it from master
  ghsync sync --owner asana --repo website --local ./build --path site/assets \
    --message "Publish assets" --branch publish --create-branch --preserve

  # Open a pull request after syncing
  ghsync sync --owner asana --repo website --local ./build --path site/assets \
    --message "Publish assets" --branch publish --create-branch --pull-request`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := resolveToken()
		if t == "" {
			return errors.New("no token provided: use --token or set GITHUB_TOKEN")
		}

		gateway, err := github.New(syncOwner, syncRepo, github.WithToken(t))
		if err != nil {
			return err
		}

		opts := ghsync.Options{
			LocalPath:         syncLocalPath,
			RepoPath:          syncRepoPath,
			Message:           syncMessage,
			Branch:            syncBranch,
			BaseBranch:        syncBaseBranch,
			CreateBranch:      syncCreateBranch,
			CreatePullRequest: syncCreatePullRequest,
			PreserveRepoFiles: syncPreserveRepoFiles,
			RequirePath:       syncRequirePath,
		}

		setters := []ghsync.Option{}
		if debug {
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
			setters = append(setters, ghsync.WithLogger(log.NewSlogAdapter(slog.New(handler))))
		}

		syncer, err := ghsync.New(gateway, opts, setters...)
		if err != nil {
			return err
		}

		result, err := syncer.Sync(cmd.Context())
		if err != nil {
			return err
		}

		printResult(result)

		return nil
	},
}

func printResult(result *ghsync.Result) {
	success := color.New(color.FgGreen)
	info := color.New(color.FgCyan)
	dim := color.New(color.Faint)

	if result.BranchCreated {
		info.Printf("created branch %s\n", result.Branch)
	}

	if result.NoChanges {
		dim.Printf("no changes, %s left at tree %s\n", result.Branch, shortHash(result.RootTree))
		return
	}

	success.Printf("synced %s to commit %s\n", result.Branch, shortHash(result.Commit.SHA))
	if result.PullRequest != nil {
		info.Printf("opened pull request #%d: %s\n", result.PullRequest.Number, result.PullRequest.URL)
	}
}

func shortHash(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}

	return sha
}

func init() {
	syncCmd.Flags().StringVar(&syncOwner, "owner", "", "Repository owner (user or organization)")
	syncCmd.Flags().StringVar(&syncRepo, "repo", "", "Repository name")
	syncCmd.Flags().StringVar(&syncLocalPath, "local", "", "Local directory to sync from")
	syncCmd.Flags().StringVar(&syncRepoPath, "path", "", "Target path inside the repository")
	syncCmd.Flags().StringVarP(&syncMessage, "message", "m", "", "Commit message")
	syncCmd.Flags().StringVar(&syncBranch, "branch", ghsync.DefaultBranch, "Target branch")
	syncCmd.Flags().StringVar(&syncBaseBranch, "base-branch", ghsync.DefaultBranch, "Base branch for branch creation and pull requests")
	syncCmd.Flags().BoolVar(&syncCreateBranch, "create-branch", false, "Create the target branch from the base branch if absent")
	syncCmd.Flags().BoolVar(&syncCreatePullRequest, "pull-request", false, "Open a pull request from the branch into the base branch")
	syncCmd.Flags().BoolVar(&syncPreserveRepoFiles, "preserve", false, "Keep remote files that have no local counterpart")
	syncCmd.Flags().BoolVar(&syncRequirePath, "require-path", false, "Fail when the target path does not already exist")

	for _, flag := range []string{"owner", "repo", "local", "path", "message"} {
		cobra.CheckErr(syncCmd.MarkFlagRequired(flag))
	}

	rootCmd.AddCommand(syncCmd)
}
