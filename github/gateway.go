// Package github implements the ghsync.Gateway contract on top of the GitHub
// Git Data API using the go-github SDK. It is the only package that knows
// about transport and authentication; the sync pipeline sees content-addressed
// objects and nothing else.
package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v67/github"

	"github.com/asana/ghsync"
)

// Gateway adapts a go-github client to the ghsync.Gateway interface for one
// repository.
type Gateway struct {
	client *github.Client
	owner  string
	repo   string
}

// config holds construction-time settings for a Gateway.
type config struct {
	client *github.Client
	token  string
}

// Option configures a Gateway during creation.
type Option func(*config) error

// WithToken authenticates API calls with the given OAuth token.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			return errors.New("token cannot be empty")
		}
		cfg.token = token
		return nil
	}
}

// WithClient supplies a pre-built go-github client, taking precedence over
// WithToken. This allows full control over base URL, transport, and
// authentication, which is also how tests point the gateway at a local server.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("client cannot be nil")
		}
		cfg.client = client
		return nil
	}
}

// New creates a Gateway bound to owner/repo.
func New(owner, repo string, opts ...Option) (*Gateway, error) {
	if owner == "" {
		return nil, errors.New("owner cannot be empty")
	}
	if repo == "" {
		return nil, errors.New("repo cannot be empty")
	}

	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.client == nil {
		if cfg.token == "" {
			return nil, errors.New("either a token or a client must be provided")
		}
		cfg.client = github.NewClient(nil).WithAuthToken(cfg.token)
	}

	return &Gateway{client: cfg.client, owner: owner, repo: repo}, nil
}

// GetRef resolves a reference name to the commit it points at.
// A missing reference maps to ghsync.ErrRefNotFound.
func (g *Gateway) GetRef(ctx context.Context, name string) (ghsync.Ref, error) {
	ref, resp, err := g.client.Git.GetRef(ctx, g.owner, g.repo, shortRef(name))
	if err != nil {
		if isStatus(resp, http.StatusNotFound) {
			return ghsync.Ref{}, ghsync.NewRefNotFoundError(name)
		}
		return ghsync.Ref{}, fmt.Errorf("get ref %s: %w", name, err)
	}

	return convertRef(ref), nil
}

// CreateRef creates a new reference pointing at the given commit hash.
func (g *Gateway) CreateRef(ctx context.Context, name, sha string) (ghsync.Ref, error) {
	ref, _, err := g.client.Git.CreateRef(ctx, g.owner, g.repo, &github.Reference{
		Ref:    github.String(fullRef(name)),
		Object: &github.GitObject{SHA: github.String(sha)},
	})
	if err != nil {
		return ghsync.Ref{}, fmt.Errorf("create ref %s: %w", name, err)
	}

	return convertRef(ref), nil
}

// UpdateRef advances an existing reference to the given commit hash.
// The update is a fast-forward; the API rejects non-fast-forward moves.
func (g *Gateway) UpdateRef(ctx context.Context, name, sha string) (ghsync.Ref, error) {
	ref, _, err := g.client.Git.UpdateRef(ctx, g.owner, g.repo, &github.Reference{
		Ref:    github.String(fullRef(name)),
		Object: &github.GitObject{SHA: github.String(sha)},
	}, false)
	if err != nil {
		return ghsync.Ref{}, fmt.Errorf("update ref %s: %w", name, err)
	}

	return convertRef(ref), nil
}

// GetCommit fetches a commit object by hash.
func (g *Gateway) GetCommit(ctx context.Context, sha string) (*ghsync.Commit, error) {
	commit, _, err := g.client.Git.GetCommit(ctx, g.owner, g.repo, sha)
	if err != nil {
		return nil, fmt.Errorf("get commit %s: %w", sha, err)
	}

	return convertCommit(commit), nil
}

// CreateCommit creates a commit object for the given tree and parents. The
// author identity is filled in by the store from the authenticated user.
func (g *Gateway) CreateCommit(ctx context.Context, message, tree string, parents []string) (*ghsync.Commit, error) {
	ghParents := make([]*github.Commit, len(parents))
	for i, parent := range parents {
		ghParents[i] = &github.Commit{SHA: github.String(parent)}
	}

	commit, _, err := g.client.Git.CreateCommit(ctx, g.owner, g.repo, &github.Commit{
		Message: github.String(message),
		Tree:    &github.Tree{SHA: github.String(tree)},
		Parents: ghParents,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create commit: %w", err)
	}

	return convertCommit(commit), nil
}

// GetTree fetches a single tree object, direct children only.
func (g *Gateway) GetTree(ctx context.Context, sha string) (*ghsync.Tree, error) {
	tree, _, err := g.client.Git.GetTree(ctx, g.owner, g.repo, sha, false)
	if err != nil {
		return nil, fmt.Errorf("get tree %s: %w", sha, err)
	}

	entries := make([]ghsync.TreeEntry, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		entries = append(entries, ghsync.TreeEntry{
			Path: entry.GetPath(),
			Mode: entry.GetMode(),
			Type: ghsync.EntryType(entry.GetType()),
			SHA:  entry.GetSHA(),
		})
	}

	return &ghsync.Tree{SHA: tree.GetSHA(), Entries: entries}, nil
}

// CreateTree creates a tree object from the given entry set.
func (g *Gateway) CreateTree(ctx context.Context, entries []ghsync.TreeEntry) (*ghsync.Tree, error) {
	ghEntries := make([]*github.TreeEntry, len(entries))
	for i, entry := range entries {
		ghEntries[i] = &github.TreeEntry{
			Path: github.String(entry.Path),
			Mode: github.String(entry.Mode),
			Type: github.String(string(entry.Type)),
			SHA:  github.String(entry.SHA),
		}
	}

	tree, _, err := g.client.Git.CreateTree(ctx, g.owner, g.repo, "", ghEntries)
	if err != nil {
		return nil, fmt.Errorf("create tree: %w", err)
	}

	return &ghsync.Tree{SHA: tree.GetSHA()}, nil
}

// CreateBlob stores raw file content and returns its hash. Content is sent
// base64-encoded so binary files round-trip safely.
func (g *Gateway) CreateBlob(ctx context.Context, content []byte) (string, error) {
	blob, _, err := g.client.Git.CreateBlob(ctx, g.owner, g.repo, &github.Blob{
		Content:  github.String(base64.StdEncoding.EncodeToString(content)),
		Encoding: github.String("base64"),
	})
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}

	return blob.GetSHA(), nil
}

// CreatePullRequest opens a pull request merging head into base. The API's
// "pull request already exists" validation failure maps to
// ghsync.ErrPullRequestExists so callers can treat a re-sync as a success.
func (g *Gateway) CreatePullRequest(ctx context.Context, title, body, base, head string) (*ghsync.PullRequest, error) {
	pr, resp, err := g.client.PullRequests.Create(ctx, g.owner, g.repo, &github.NewPullRequest{
		Title: github.String(title),
		Body:  github.String(body),
		Base:  github.String(base),
		Head:  github.String(head),
	})
	if err != nil {
		if isPullRequestExists(resp, err) {
			return nil, ghsync.NewPullRequestExistsError(head, base)
		}
		return nil, fmt.Errorf("create pull request: %w", err)
	}

	return &ghsync.PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Base:   pr.GetBase().GetRef(),
		Head:   pr.GetHead().GetRef(),
		URL:    pr.GetHTMLURL(),
	}, nil
}

func convertRef(ref *github.Reference) ghsync.Ref {
	return ghsync.Ref{
		Name: ref.GetRef(),
		SHA:  ref.GetObject().GetSHA(),
	}
}

func convertCommit(commit *github.Commit) *ghsync.Commit {
	parents := make([]string, 0, len(commit.Parents))
	for _, parent := range commit.Parents {
		parents = append(parents, parent.GetSHA())
	}

	return &ghsync.Commit{
		SHA:     commit.GetSHA(),
		Tree:    commit.GetTree().GetSHA(),
		Parents: parents,
		Message: commit.GetMessage(),
	}
}

// shortRef converts a reference name to the "heads/branch" form the read
// endpoints expect.
func shortRef(name string) string {
	return strings.TrimPrefix(name, "refs/")
}

// fullRef converts a reference name to the "refs/heads/branch" form the write
// endpoints expect.
func fullRef(name string) string {
	if strings.HasPrefix(name, "refs/") {
		return name
	}

	return "refs/" + name
}

func isStatus(resp *github.Response, code int) bool {
	return resp != nil && resp.Response != nil && resp.StatusCode == code
}

// isPullRequestExists detects the validation failure GitHub returns when a
// pull request between the two branches is already open.
func isPullRequestExists(resp *github.Response, err error) bool {
	if !isStatus(resp, http.StatusUnprocessableEntity) {
		return false
	}

	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) {
		return false
	}

	for _, e := range ghErr.Errors {
		if strings.Contains(strings.ToLower(e.Message), "already exists") {
			return true
		}
	}

	return false
}
