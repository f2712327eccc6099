// Package ghsync synchronizes a local flat directory into a path inside a
// remote content-addressed repository, using only object-level write
// operations: no clone, no working copy.
//
// The syncer resolves the target branch, walks the existing trees along the
// target path, snapshots the local directory into a new leaf tree, rebuilds
// every ancestor tree bottom-up into a new root, and publishes a commit that
// advances the branch. Unchanged subtrees are reused by hash, and a sync that
// produces an identical root tree performs no remote mutation at all.
package ghsync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asana/ghsync/log"
)

// Syncer runs the sync pipeline against a Gateway. A Syncer is cheap and
// stateless between runs; per-sync state such as the tree cache lives only
// for the duration of one Sync call.
type Syncer struct {
	gateway Gateway
	opts    Options
	// logger is set by WithLogger. When nil, each sync falls back to the
	// logger carried in its context.
	logger log.Logger
}

// log returns the effective logger for one sync: the injected logger when
// WithLogger was given, otherwise whatever the context carries (a no-op
// logger when the context carries nothing).
func (s *Syncer) log(ctx context.Context) log.Logger {
	if s.logger != nil {
		return s.logger
	}

	return log.FromContext(ctx)
}

// Result reports the outcome of a successful sync.
type Result struct {
	// Branch is the fully qualified reference the sync targeted.
	Branch string
	// BranchCreated is true when the branch was created from the base branch.
	BranchCreated bool
	// NoChanges is true when the computed root tree matched the existing one
	// and no commit was made.
	NoChanges bool
	// RootTree is the hash of the root tree after the sync.
	RootTree string
	// Commit is the published commit, nil when NoChanges is true.
	Commit *Commit
	// PullRequest is the created pull request, nil unless one was opened by
	// this run. An already-existing pull request leaves it nil.
	PullRequest *PullRequest
}

// New creates a Syncer. Defaults are applied to opts and contradictory
// combinations rejected here, before any network traffic.
func New(gateway Gateway, opts Options, setters ...Option) (*Syncer, error) {
	if gateway == nil {
		return nil, errors.New("gateway cannot be nil")
	}

	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	s := &Syncer{
		gateway: gateway,
		opts:    opts,
	}

	for _, setter := range setters {
		if err := setter(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Sync runs the pipeline once. Steps run in strict order: branch resolution,
// path resolution, snapshot, ancestor rebuild, commit publication, pull
// request creation. The first failing step aborts the rest; objects already
// written to the store by then are unreferenced and harmless, so a failed
// sync is always safe to retry.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	logger := s.log(ctx)

	segments, err := splitPath(s.opts.RepoPath)
	if err != nil {
		return nil, err
	}

	ref, created, err := s.resolveBranch(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("branch resolved", "ref", ref.Name, "sha", ref.SHA, "created", created)

	head, err := s.gateway.GetCommit(ctx, ref.SHA)
	if err != nil {
		return nil, fmt.Errorf("getting head commit %s: %w", ref.SHA, err)
	}

	cache := newTreeCache()
	root, err := s.fetchTree(ctx, cache, head.Tree)
	if err != nil {
		return nil, fmt.Errorf("getting root tree: %w", err)
	}

	chain, err := s.resolvePath(ctx, cache, root, segments, s.opts.RequirePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("path resolved", "repoPath", s.opts.RepoPath, "depth", len(chain)-1, "cachedTrees", cache.len())

	// When the full path already exists, the stale leaf at the end of the
	// chain is replaced by the fresh snapshot rather than rebuilt.
	var existing *Tree
	if len(chain) == len(segments)+1 {
		existing = chain[len(segments)]
		chain = chain[:len(segments)]
	}

	leaf, err := s.buildSnapshot(ctx, existing)
	if err != nil {
		return nil, err
	}
	logger.Debug("snapshot built", "sha", leaf.SHA, "entries", len(leaf.Entries))

	// Directories that do not exist yet appear as empty trees so each
	// rebuild step has a parent to extend.
	for len(chain) < len(segments) {
		chain = append(chain, &Tree{})
	}
	chain = append(chain, leaf)

	newRoot, err := s.rebuildAncestors(ctx, chain, segments)
	if err != nil {
		return nil, err
	}
	logger.Debug("root tree computed", "sha", newRoot.SHA, "previous", root.SHA)

	result := &Result{
		Branch:        ref.Name,
		BranchCreated: created,
		RootTree:      newRoot.SHA,
	}

	if newRoot.SHA == root.SHA {
		logger.Info("no changes detected, skipping commit", "ref", ref.Name, "tree", root.SHA)
		result.NoChanges = true
		return result, nil
	}

	commit, err := s.publishCommit(ctx, ref, head, newRoot)
	if err != nil {
		return nil, err
	}
	logger.Info("commit published", "ref", ref.Name, "sha", commit.SHA, "tree", newRoot.SHA)
	result.Commit = commit

	if s.opts.CreatePullRequest {
		pr, err := s.createPullRequest(ctx)
		if err != nil {
			return nil, err
		}
		result.PullRequest = pr
	}

	return result, nil
}

// resolveBranch resolves the target branch reference, creating it from the
// base branch when requested. The bool result reports whether the branch was
// created by this call.
func (s *Syncer) resolveBranch(ctx context.Context) (Ref, bool, error) {
	name := qualifyBranch(s.opts.Branch)

	ref, err := s.gateway.GetRef(ctx, name)
	if err == nil {
		return ref, false, nil
	}
	if !errors.Is(err, ErrRefNotFound) {
		return Ref{}, false, fmt.Errorf("getting ref %s: %w", name, err)
	}

	if !s.opts.CreateBranch {
		return Ref{}, false, fmt.Errorf("branch %s does not exist and branch creation is disabled: %w", s.opts.Branch, err)
	}

	baseName := qualifyBranch(s.opts.BaseBranch)
	base, err := s.gateway.GetRef(ctx, baseName)
	if err != nil {
		return Ref{}, false, fmt.Errorf("getting base ref %s: %w", baseName, err)
	}

	created, err := s.gateway.CreateRef(ctx, name, base.SHA)
	if err != nil {
		return Ref{}, false, fmt.Errorf("creating ref %s: %w", name, err)
	}

	s.log(ctx).Info("branch created", "ref", created.Name, "from", baseName, "sha", created.SHA)

	return created, true, nil
}

// publishCommit creates the commit for the new root tree and advances the
// branch reference to it. The two steps are not atomic; a crash in between
// leaves an unreferenced commit object, which is harmless.
func (s *Syncer) publishCommit(ctx context.Context, ref Ref, parent *Commit, root *Tree) (*Commit, error) {
	commit, err := s.gateway.CreateCommit(ctx, s.opts.Message, root.SHA, []string{parent.SHA})
	if err != nil {
		return nil, fmt.Errorf("creating commit: %w", err)
	}

	if _, err := s.gateway.UpdateRef(ctx, ref.Name, commit.SHA); err != nil {
		return nil, fmt.Errorf("updating ref %s: %w", ref.Name, err)
	}

	return commit, nil
}

// createPullRequest opens a pull request from the target branch into the base
// branch. An already-open pull request counts as success.
func (s *Syncer) createPullRequest(ctx context.Context) (*PullRequest, error) {
	title, body := splitMessage(s.opts.Message)

	pr, err := s.gateway.CreatePullRequest(ctx, title, body, s.opts.BaseBranch, s.opts.Branch)
	if err != nil {
		if errors.Is(err, ErrPullRequestExists) {
			s.log(ctx).Info("pull request already exists", "head", s.opts.Branch, "base", s.opts.BaseBranch)
			return nil, nil
		}
		return nil, fmt.Errorf("creating pull request: %w", err)
	}

	s.log(ctx).Info("pull request created", "number", pr.Number, "url", pr.URL)

	return pr, nil
}

// qualifyBranch turns a bare branch name into a full reference name. Names
// already under refs/ are passed through.
func qualifyBranch(name string) string {
	if strings.HasPrefix(name, "refs/") {
		return name
	}

	return "refs/heads/" + name
}

// splitMessage splits a commit message into a pull request title (first line)
// and body (the remainder).
func splitMessage(message string) (title, body string) {
	title, body, _ = strings.Cut(message, "\n")

	return strings.TrimSpace(title), strings.TrimSpace(body)
}
