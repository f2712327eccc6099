package ghsync

import (
	"context"
	"fmt"
)

// rebuildAncestors folds a finalized leaf tree back up through its ancestor
// chain and returns the new root tree.
//
// chain holds the trees from root to leaf, inclusive; segments holds the
// corresponding path segments, one fewer than the trees since the root has no
// segment. Ancestors that do not exist yet are represented by empty trees in
// the chain. Only trees on the path from leaf to root are recreated; every
// sibling subtree keeps being referenced by hash (structural sharing).
//
// The fold is strictly sequential, deepest to shallowest, because each step's
// resulting hash is input to the next.
func (s *Syncer) rebuildAncestors(ctx context.Context, chain []*Tree, segments []string) (*Tree, error) {
	if len(chain) != len(segments)+1 {
		return nil, fmt.Errorf("ancestor chain has %d trees for %d path segments", len(chain), len(segments))
	}

	for len(segments) > 0 {
		child := chain[len(chain)-1]
		parent := chain[len(chain)-2]
		segment := segments[len(segments)-1]

		pointChildAt(parent, segment, child.SHA)

		// Resubmit the parent from canonical entry fields only, dropping
		// whatever extra metadata the store attached on read.
		entries := make([]TreeEntry, len(parent.Entries))
		for i, entry := range parent.Entries {
			entries[i] = TreeEntry{
				Path: entry.Path,
				Mode: entry.Mode,
				Type: entry.Type,
				SHA:  entry.SHA,
			}
		}

		rebuilt, err := s.gateway.CreateTree(ctx, entries)
		if err != nil {
			return nil, fmt.Errorf("rebuilding tree for %s: %w", segment, err)
		}

		s.log(ctx).Debug("rebuilt ancestor tree", "segment", segment, "sha", rebuilt.SHA, "child", child.SHA)

		chain = chain[:len(chain)-1]
		chain[len(chain)-1] = rebuilt
		segments = segments[:len(segments)-1]
	}

	return chain[0], nil
}

// pointChildAt sets the entry named segment in parent to reference the given
// tree hash, adding the entry when the directory did not exist before.
func pointChildAt(parent *Tree, segment, sha string) {
	for i := range parent.Entries {
		if parent.Entries[i].Path == segment {
			parent.Entries[i].Mode = ModeTree
			parent.Entries[i].Type = EntryTree
			parent.Entries[i].SHA = sha
			return
		}
	}

	parent.Entries = append(parent.Entries, TreeEntry{
		Path: segment,
		Mode: ModeTree,
		Type: EntryTree,
		SHA:  sha,
	})
}
