package ghsync

import (
	"context"
	"fmt"
	"strings"
)

// resolvePath walks root down the given path segments and returns the chain
// of existing trees along the way, root first. The walk stops at the first
// segment with no matching subtree: in lenient mode the partial chain is a
// valid result meaning "the directory does not exist yet", in strict mode it
// is a PathNotFoundError.
//
// Every tree fetched during the walk is inserted into the cache keyed by its
// hash, so repeated encounters of a shared subtree are served from cache.
func (s *Syncer) resolvePath(ctx context.Context, cache *treeCache, root *Tree, segments []string, strict bool) ([]*Tree, error) {
	chain := make([]*Tree, 0, len(segments)+1)
	chain = append(chain, root)

	current := root
	for _, segment := range segments {
		var next *TreeEntry
		for i := range current.Entries {
			entry := &current.Entries[i]
			if entry.Type == EntryTree && entry.Path == segment {
				next = entry
				break
			}
		}

		if next == nil {
			if strict {
				return nil, NewPathNotFoundError(strings.Join(segments, "/"), segment)
			}
			return chain, nil
		}

		subtree, err := s.fetchTree(ctx, cache, next.SHA)
		if err != nil {
			return nil, fmt.Errorf("resolving path segment %s: %w", segment, err)
		}

		chain = append(chain, subtree)
		current = subtree
	}

	return chain, nil
}

// fetchTree returns the tree with the given hash, from the cache when
// possible. Trees fetched from the store are added to the cache.
func (s *Syncer) fetchTree(ctx context.Context, cache *treeCache, sha string) (*Tree, error) {
	if tree, ok := cache.get(sha); ok {
		return tree, nil
	}

	tree, err := s.gateway.GetTree(ctx, sha)
	if err != nil {
		return nil, fmt.Errorf("getting tree %s: %w", sha, err)
	}

	cache.put(tree)

	return copyTree(tree), nil
}
