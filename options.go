package ghsync

import (
	"errors"

	"github.com/asana/ghsync/log"
)

// DefaultBranch is used for Branch and BaseBranch when they are left empty.
const DefaultBranch = "master"

// Options configures a sync. Required fields are listed first; the zero value
// of every optional field selects the default behavior.
//
// Defaults are applied once in New and contradictory combinations are rejected
// there, before any network call is made.
type Options struct {
	// LocalPath is the local flat directory to read. Required.
	LocalPath string
	// RepoPath is the slash-separated target path inside the repository. Required.
	RepoPath string
	// Message is the commit message. Its first line becomes the pull request
	// title when CreatePullRequest is set. Required.
	Message string

	// Branch is the target branch. Defaults to DefaultBranch.
	Branch string
	// BaseBranch is the base for branch creation and the pull request base.
	// Defaults to DefaultBranch.
	BaseBranch string

	// CreateBranch creates Branch from BaseBranch when it does not exist.
	CreateBranch bool
	// CreatePullRequest opens a pull request from Branch into BaseBranch
	// after a successful sync.
	CreatePullRequest bool
	// PreserveRepoFiles keeps remote files at RepoPath that have no local
	// counterpart (additive merge). When unset, the target directory is
	// replaced wholesale by the local contents.
	PreserveRepoFiles bool
	// RequirePath makes path resolution strict. The whole of RepoPath,
	// including the target directory itself, must already exist in the
	// repository; the sync fails on the first missing segment instead of
	// creating directories.
	RequirePath bool
}

// applyDefaults fills in defaulted fields in place.
func (o *Options) applyDefaults() {
	if o.Branch == "" {
		o.Branch = DefaultBranch
	}
	if o.BaseBranch == "" {
		o.BaseBranch = DefaultBranch
	}
}

// validate rejects missing required fields and contradictory combinations.
// It assumes defaults have been applied.
func (o *Options) validate() error {
	if o.LocalPath == "" {
		return NewInvalidOptionsError("LocalPath", "must not be empty")
	}
	if o.RepoPath == "" {
		return NewInvalidOptionsError("RepoPath", "must not be empty")
	}
	if o.Message == "" {
		return NewInvalidOptionsError("Message", "must not be empty")
	}
	if o.Branch == o.BaseBranch {
		// Creating a branch from itself or opening a pull request into
		// itself can never do anything useful.
		if o.CreateBranch {
			return NewInvalidOptionsError("CreateBranch", "branch and base branch must differ")
		}
		if o.CreatePullRequest {
			return NewInvalidOptionsError("CreatePullRequest", "branch and base branch must differ")
		}
	}

	return nil
}

// Option is a function that configures a Syncer during creation.
type Option func(*Syncer) error

// WithLogger configures a custom logger for the syncer. If not provided, a
// no-op logger is used by default.
func WithLogger(logger log.Logger) Option {
	return func(s *Syncer) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}
