// Package testhelpers provides an in-memory content-addressed object store
// implementing ghsync.Gateway, used by pipeline tests. Hashes are computed
// from canonical object payloads, so identical content yields identical
// hashes exactly like the real store.
package testhelpers

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/asana/ghsync"
)

// CallCounts records how many times each gateway operation ran.
type CallCounts struct {
	GetRef            int
	CreateRef         int
	UpdateRef         int
	GetCommit         int
	CreateCommit      int
	GetTree           int
	CreateTree        int
	CreateBlob        int
	CreatePullRequest int
}

// Gateway is an in-memory ghsync.Gateway.
type Gateway struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	trees   map[string]ghsync.Tree
	commits map[string]ghsync.Commit
	refs    map[string]string
	pulls   []ghsync.PullRequest

	// Calls counts gateway operations for assertions.
	Calls CallCounts
	// CreatedTrees lists hashes passed out of CreateTree, in creation order.
	CreatedTrees []string
	// PullRequestExists makes CreatePullRequest fail with the
	// already-exists condition.
	PullRequestExists bool
	// FailWith, when non-nil, is returned by the named operation.
	FailWith map[string]error
}

// NewGateway creates an empty in-memory gateway.
func NewGateway() *Gateway {
	return &Gateway{
		blobs:   make(map[string][]byte),
		trees:   make(map[string]ghsync.Tree),
		commits: make(map[string]ghsync.Commit),
		refs:    make(map[string]string),
	}
}

func (g *Gateway) fail(op string) error {
	if g.FailWith == nil {
		return nil
	}

	return g.FailWith[op]
}

// GetRef implements ghsync.Gateway.
func (g *Gateway) GetRef(ctx context.Context, name string) (ghsync.Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.GetRef++

	if err := g.fail("GetRef"); err != nil {
		return ghsync.Ref{}, err
	}

	sha, ok := g.refs[name]
	if !ok {
		return ghsync.Ref{}, ghsync.NewRefNotFoundError(name)
	}

	return ghsync.Ref{Name: name, SHA: sha}, nil
}

// CreateRef implements ghsync.Gateway.
func (g *Gateway) CreateRef(ctx context.Context, name, sha string) (ghsync.Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.CreateRef++

	if err := g.fail("CreateRef"); err != nil {
		return ghsync.Ref{}, err
	}

	if _, ok := g.refs[name]; ok {
		return ghsync.Ref{}, fmt.Errorf("ref %s already exists", name)
	}

	g.refs[name] = sha

	return ghsync.Ref{Name: name, SHA: sha}, nil
}

// UpdateRef implements ghsync.Gateway.
func (g *Gateway) UpdateRef(ctx context.Context, name, sha string) (ghsync.Ref, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.UpdateRef++

	if err := g.fail("UpdateRef"); err != nil {
		return ghsync.Ref{}, err
	}

	if _, ok := g.refs[name]; !ok {
		return ghsync.Ref{}, ghsync.NewRefNotFoundError(name)
	}

	g.refs[name] = sha

	return ghsync.Ref{Name: name, SHA: sha}, nil
}

// GetCommit implements ghsync.Gateway.
func (g *Gateway) GetCommit(ctx context.Context, sha string) (*ghsync.Commit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.GetCommit++

	if err := g.fail("GetCommit"); err != nil {
		return nil, err
	}

	commit, ok := g.commits[sha]
	if !ok {
		return nil, fmt.Errorf("commit %s not found", sha)
	}

	return &commit, nil
}

// CreateCommit implements ghsync.Gateway.
func (g *Gateway) CreateCommit(ctx context.Context, message, tree string, parents []string) (*ghsync.Commit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.CreateCommit++

	if err := g.fail("CreateCommit"); err != nil {
		return nil, err
	}

	commit := ghsync.Commit{
		SHA:     hashCommit(message, tree, parents),
		Tree:    tree,
		Parents: append([]string(nil), parents...),
		Message: message,
	}
	g.commits[commit.SHA] = commit

	return &commit, nil
}

// GetTree implements ghsync.Gateway.
func (g *Gateway) GetTree(ctx context.Context, sha string) (*ghsync.Tree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.GetTree++

	if err := g.fail("GetTree"); err != nil {
		return nil, err
	}

	tree, ok := g.trees[sha]
	if !ok {
		return nil, fmt.Errorf("tree %s not found", sha)
	}

	entries := make([]ghsync.TreeEntry, len(tree.Entries))
	copy(entries, tree.Entries)

	return &ghsync.Tree{SHA: tree.SHA, Entries: entries}, nil
}

// CreateTree implements ghsync.Gateway.
func (g *Gateway) CreateTree(ctx context.Context, entries []ghsync.TreeEntry) (*ghsync.Tree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.CreateTree++

	if err := g.fail("CreateTree"); err != nil {
		return nil, err
	}

	sha := g.addTree(entries)
	g.CreatedTrees = append(g.CreatedTrees, sha)

	return &ghsync.Tree{SHA: sha}, nil
}

// CreateBlob implements ghsync.Gateway.
func (g *Gateway) CreateBlob(ctx context.Context, content []byte) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.CreateBlob++

	if err := g.fail("CreateBlob"); err != nil {
		return "", err
	}

	return g.addBlob(content), nil
}

// CreatePullRequest implements ghsync.Gateway.
func (g *Gateway) CreatePullRequest(ctx context.Context, title, body, base, head string) (*ghsync.PullRequest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls.CreatePullRequest++

	if err := g.fail("CreatePullRequest"); err != nil {
		return nil, err
	}

	if g.PullRequestExists {
		return nil, ghsync.NewPullRequestExistsError(head, base)
	}

	pr := ghsync.PullRequest{
		Number: len(g.pulls) + 1,
		Title:  title,
		Body:   body,
		Base:   base,
		Head:   head,
		URL:    fmt.Sprintf("https://example.test/pulls/%d", len(g.pulls)+1),
	}
	g.pulls = append(g.pulls, pr)

	return &pr, nil
}

// PullRequests returns the pull requests opened so far.
func (g *Gateway) PullRequests() []ghsync.PullRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]ghsync.PullRequest(nil), g.pulls...)
}

// Tree returns the stored tree with the given hash for assertions.
func (g *Gateway) Tree(sha string) (ghsync.Tree, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tree, ok := g.trees[sha]
	return tree, ok
}

// RefSHA returns the commit hash a reference currently points at.
func (g *Gateway) RefSHA(name string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sha, ok := g.refs[name]
	return sha, ok
}

// Seed helpers build repository fixtures without going through the gateway
// interface (and without bumping call counts).

// SeedBlob stores blob content and returns its hash.
func (g *Gateway) SeedBlob(content []byte) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addBlob(content)
}

// SeedTree stores a tree with the given entries and returns its hash.
func (g *Gateway) SeedTree(entries ...ghsync.TreeEntry) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addTree(entries)
}

// SeedCommit stores a commit for the given tree and returns its hash.
func (g *Gateway) SeedCommit(tree, message string, parents ...string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	commit := ghsync.Commit{
		SHA:     hashCommit(message, tree, parents),
		Tree:    tree,
		Parents: append([]string(nil), parents...),
		Message: message,
	}
	g.commits[commit.SHA] = commit

	return commit.SHA
}

// SeedRef points a reference at a commit hash.
func (g *Gateway) SeedRef(name, sha string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.refs[name] = sha
}

func (g *Gateway) addBlob(content []byte) string {
	sha := hashObject("blob", string(content))
	g.blobs[sha] = append([]byte(nil), content...)

	return sha
}

func (g *Gateway) addTree(entries []ghsync.TreeEntry) string {
	canonical := make([]ghsync.TreeEntry, len(entries))
	copy(canonical, entries)
	sort.Slice(canonical, func(i, j int) bool { return canonical[i].Path < canonical[j].Path })

	lines := make([]string, len(canonical))
	for i, entry := range canonical {
		lines[i] = strings.Join([]string{entry.Path, entry.Mode, string(entry.Type), entry.SHA}, "\x00")
	}

	sha := hashObject("tree", strings.Join(lines, "\n"))
	g.trees[sha] = ghsync.Tree{SHA: sha, Entries: canonical}

	return sha
}

func hashCommit(message, tree string, parents []string) string {
	return hashObject("commit", tree+"\x00"+strings.Join(parents, ",")+"\x00"+message)
}

func hashObject(kind, payload string) string {
	sum := sha1.Sum([]byte(kind + "\x00" + payload))

	return hex.EncodeToString(sum[:])
}
