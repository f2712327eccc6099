package ghsync

import (
	"context"
	"fmt"
	"sync"
)

// stubGateway is a hand-rolled Gateway for unit tests of single pipeline
// steps. It serves seeded trees by hash and records writes; created objects
// get synthetic counter hashes, there is no content addressing.
type stubGateway struct {
	mu    sync.Mutex
	trees map[string]Tree

	blobErr error
	treeErr error

	getRefCalls     int
	getTreeCalls    int
	createBlobCalls int
	createTreeCalls int

	// createdTrees records the entries of every CreateTree call in order.
	// The tree returned for call i has hash "tree-i".
	createdTrees [][]TreeEntry
}

var _ Gateway = (*stubGateway)(nil)

func newStubGateway() *stubGateway {
	return &stubGateway{trees: make(map[string]Tree)}
}

// seedTree stores a tree under the given hash and returns a private copy
// usable as a walk root.
func (g *stubGateway) seedTree(sha string, entries ...TreeEntry) *Tree {
	g.trees[sha] = Tree{SHA: sha, Entries: entries}

	return &Tree{SHA: sha, Entries: append([]TreeEntry(nil), entries...)}
}

func (g *stubGateway) GetRef(ctx context.Context, name string) (Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getRefCalls++

	return Ref{}, fmt.Errorf("unexpected GetRef(%s)", name)
}

func (g *stubGateway) CreateRef(ctx context.Context, name, sha string) (Ref, error) {
	return Ref{}, fmt.Errorf("unexpected CreateRef(%s)", name)
}

func (g *stubGateway) UpdateRef(ctx context.Context, name, sha string) (Ref, error) {
	return Ref{}, fmt.Errorf("unexpected UpdateRef(%s)", name)
}

func (g *stubGateway) GetCommit(ctx context.Context, sha string) (*Commit, error) {
	return nil, fmt.Errorf("unexpected GetCommit(%s)", sha)
}

func (g *stubGateway) CreateCommit(ctx context.Context, message, tree string, parents []string) (*Commit, error) {
	return nil, fmt.Errorf("unexpected CreateCommit(%s)", tree)
}

func (g *stubGateway) GetTree(ctx context.Context, sha string) (*Tree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getTreeCalls++

	tree, ok := g.trees[sha]
	if !ok {
		return nil, fmt.Errorf("tree %s not found", sha)
	}

	entries := make([]TreeEntry, len(tree.Entries))
	copy(entries, tree.Entries)

	return &Tree{SHA: tree.SHA, Entries: entries}, nil
}

func (g *stubGateway) CreateTree(ctx context.Context, entries []TreeEntry) (*Tree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createTreeCalls++
	if g.treeErr != nil {
		return nil, g.treeErr
	}

	recorded := make([]TreeEntry, len(entries))
	copy(recorded, entries)
	g.createdTrees = append(g.createdTrees, recorded)

	return &Tree{SHA: fmt.Sprintf("tree-%d", len(g.createdTrees)-1), Entries: recorded}, nil
}

func (g *stubGateway) CreateBlob(ctx context.Context, content []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createBlobCalls++
	if g.blobErr != nil {
		return "", g.blobErr
	}

	return fmt.Sprintf("blob-%d", g.createBlobCalls-1), nil
}

func (g *stubGateway) CreatePullRequest(ctx context.Context, title, body, base, head string) (*PullRequest, error) {
	return nil, fmt.Errorf("unexpected CreatePullRequest(%s)", head)
}
