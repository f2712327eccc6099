package ghsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildAncestors(t *testing.T) {
	t.Run("chain length must match segments", func(t *testing.T) {
		gw := newStubGateway()
		syncer := newTestSyncer(t, gw)

		_, err := syncer.rebuildAncestors(context.Background(), []*Tree{{}, {}}, []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ancestor chain")
	})

	t.Run("no segments returns the leaf as root", func(t *testing.T) {
		gw := newStubGateway()
		syncer := newTestSyncer(t, gw)

		leaf := &Tree{SHA: "leaf"}
		root, err := syncer.rebuildAncestors(context.Background(), []*Tree{leaf}, nil)
		require.NoError(t, err)
		assert.Equal(t, "leaf", root.SHA)
		assert.Zero(t, gw.createTreeCalls)
	})

	t.Run("sibling subtrees keep their hashes", func(t *testing.T) {
		gw, root := seedNestedRepo(t)
		syncer := newTestSyncer(t, gw)

		// Replace the tree at x/y and fold back up to a new root.
		chain, err := syncer.resolvePath(context.Background(), newTreeCache(), root, []string{"x", "y"}, false)
		require.NoError(t, err)
		chain[2] = &Tree{SHA: "sha-newleaf"}

		newRoot, err := syncer.rebuildAncestors(context.Background(), chain, []string{"x", "y"})
		require.NoError(t, err)
		require.NotEqual(t, "sha-root", newRoot.SHA)
		require.Len(t, gw.createdTrees, 2, "only the two ancestors on the path are recreated")

		// Deepest first: x is rebuilt pointing at the new leaf.
		rebuiltX := gw.createdTrees[0]
		require.Len(t, rebuiltX, 1)
		assert.Equal(t, "y", rebuiltX[0].Path)
		assert.Equal(t, "sha-newleaf", rebuiltX[0].SHA)

		// The new root references the rebuilt x and the untouched sibling
		// file by its original hash.
		rebuiltRoot := gw.createdTrees[1]
		for _, entry := range rebuiltRoot {
			switch entry.Path {
			case "x":
				assert.Equal(t, "tree-0", entry.SHA)
			case "readme.md":
				assert.Equal(t, "sha-blob", entry.SHA)
			default:
				t.Fatalf("unexpected entry %q in rebuilt root", entry.Path)
			}
		}
		require.Len(t, rebuiltRoot, 2)
	})

	t.Run("missing directories are created on the way up", func(t *testing.T) {
		gw := newStubGateway()
		syncer := newTestSyncer(t, gw)

		root := gw.seedTree("sha-root", TreeEntry{Path: "keep.txt", Mode: ModeFile, Type: EntryBlob, SHA: "sha-keep"})
		leaf := &Tree{SHA: "sha-leaf"}

		// Path site/assets does not exist: the chain holds the root, an
		// empty tree for the missing intermediate, and the new leaf.
		chain := []*Tree{root, {}, leaf}
		_, err := syncer.rebuildAncestors(context.Background(), chain, []string{"site", "assets"})
		require.NoError(t, err)
		require.Len(t, gw.createdTrees, 2)

		// The intermediate holds only the new assets entry.
		site := gw.createdTrees[0]
		require.Len(t, site, 1)
		assert.Equal(t, "assets", site[0].Path)
		assert.Equal(t, ModeTree, site[0].Mode)
		assert.Equal(t, EntryTree, site[0].Type)
		assert.Equal(t, "sha-leaf", site[0].SHA)

		// The root keeps its file and gains the new directory.
		newRoot := gw.createdTrees[1]
		assert.ElementsMatch(t, []string{"keep.txt", "site"}, entryPaths(newRoot))
		for _, entry := range newRoot {
			if entry.Path == "site" {
				assert.Equal(t, ModeTree, entry.Mode)
				assert.Equal(t, EntryTree, entry.Type)
				assert.Equal(t, "tree-0", entry.SHA)
			}
		}
	})

	t.Run("tree creation failure propagates", func(t *testing.T) {
		gw := newStubGateway()
		gw.treeErr = assert.AnError
		syncer := newTestSyncer(t, gw)

		root := gw.seedTree("sha-root")
		chain := []*Tree{root, {SHA: "sha-leaf"}}
		_, err := syncer.rebuildAncestors(context.Background(), chain, []string{"site"})
		require.ErrorIs(t, err, assert.AnError)
	})
}
