package ghsync

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/gateway.go . Gateway

// Gateway is the remote content-addressed object store the syncer writes
// through. Blobs, trees, and commits are write-once and identified by content
// hash; references are the single mutable entity. Implementations translate
// these operations onto a concrete transport (see the github subpackage).
//
// Error contract:
//   - GetRef returns an error matching ErrRefNotFound when the reference does
//     not exist. That condition is recoverable in the branch-bootstrap flow.
//   - CreatePullRequest returns an error matching ErrPullRequestExists when a
//     pull request between the two branches is already open.
//   - Every other failure is opaque to the syncer and aborts the pipeline.
type Gateway interface {
	// GetRef resolves a reference name to the commit it points at.
	GetRef(ctx context.Context, name string) (Ref, error)

	// CreateRef creates a new reference pointing at the given commit hash.
	CreateRef(ctx context.Context, name, sha string) (Ref, error)

	// UpdateRef advances an existing reference to the given commit hash.
	UpdateRef(ctx context.Context, name, sha string) (Ref, error)

	// GetCommit fetches a commit object by hash.
	GetCommit(ctx context.Context, sha string) (*Commit, error)

	// CreateCommit creates a commit object for the given tree and parents.
	CreateCommit(ctx context.Context, message, tree string, parents []string) (*Commit, error)

	// GetTree fetches a single tree object (direct children only) by hash.
	GetTree(ctx context.Context, sha string) (*Tree, error)

	// CreateTree creates a tree object from the given entry set. The store
	// computes the tree's hash from its entries, so identical entry sets
	// yield identical hashes.
	CreateTree(ctx context.Context, entries []TreeEntry) (*Tree, error)

	// CreateBlob stores raw file content and returns its hash.
	CreateBlob(ctx context.Context, content []byte) (string, error)

	// CreatePullRequest opens a pull request merging head into base.
	CreatePullRequest(ctx context.Context, title, body, base, head string) (*PullRequest, error)
}
