package ghsync

// treeCache is a sync-scoped cache of fetched tree objects keyed by hash.
// It only exists to avoid refetching shared trees during one sync; it is
// never carried across syncs.
//
// The rebuild step mutates tree entry slices in place, and the same hash may
// be reachable from several points in a single sync, so get returns a
// structural copy rather than the cached original.
type treeCache struct {
	trees map[string]*Tree
}

func newTreeCache() *treeCache {
	return &treeCache{trees: make(map[string]*Tree)}
}

// get returns a defensive copy of the cached tree, if present.
func (c *treeCache) get(sha string) (*Tree, bool) {
	tree, ok := c.trees[sha]
	if !ok {
		return nil, false
	}

	return copyTree(tree), true
}

// put stores its own copy of the tree so later callers cannot corrupt it.
func (c *treeCache) put(tree *Tree) {
	if tree == nil || tree.SHA == "" {
		return
	}

	c.trees[tree.SHA] = copyTree(tree)
}

func (c *treeCache) len() int {
	return len(c.trees)
}

// copyTree clones a tree and its entry slice. Entries hold only value fields,
// so a slice copy is a full structural copy.
func copyTree(tree *Tree) *Tree {
	entries := make([]TreeEntry, len(tree.Entries))
	copy(entries, tree.Entries)

	return &Tree{SHA: tree.SHA, Entries: entries}
}
