package ghsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// buildSnapshot turns the local flat directory into a new tree object.
//
// Each regular file becomes a blob plus a tree entry; subdirectories are
// skipped with a warning, recursion is out of scope. Blob creation for
// sibling files runs concurrently since each produces an independent
// content-addressed object; the final tree is assembled from the unordered
// result set, so completion order does not matter.
//
// When existing is non-nil and PreserveRepoFiles is set, entries of the
// existing tree whose name has no local counterpart are carried over
// verbatim. A local file always supersedes a remote entry of the same name.
func (s *Syncer) buildSnapshot(ctx context.Context, existing *Tree) (*Tree, error) {
	logger := s.log(ctx)

	dirEntries, err := os.ReadDir(s.opts.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("reading local directory %s: %w", s.opts.LocalPath, err)
	}

	results := make([]*TreeEntry, len(dirEntries))
	g, gctx := errgroup.WithContext(ctx)
	for i, dirEntry := range dirEntries {
		i, dirEntry := i, dirEntry
		if dirEntry.IsDir() {
			logger.Warn("skipping directory, only flat directories are synced",
				"name", dirEntry.Name(), "localPath", s.opts.LocalPath)
			continue
		}

		g.Go(func() error {
			content, err := os.ReadFile(filepath.Join(s.opts.LocalPath, dirEntry.Name()))
			if err != nil {
				return fmt.Errorf("reading %s: %w", dirEntry.Name(), err)
			}

			sha, err := s.gateway.CreateBlob(gctx, content)
			if err != nil {
				return fmt.Errorf("creating blob for %s: %w", dirEntry.Name(), err)
			}

			logger.Debug("created blob", "name", dirEntry.Name(), "sha", sha)
			results[i] = &TreeEntry{
				Path: dirEntry.Name(),
				Mode: ModeFile,
				Type: EntryBlob,
				SHA:  sha,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]TreeEntry, 0, len(results))
	local := make(map[string]struct{}, len(results))
	for _, result := range results {
		if result == nil {
			continue
		}
		entries = append(entries, *result)
		local[result.Path] = struct{}{}
	}

	if existing != nil && s.opts.PreserveRepoFiles {
		for _, entry := range existing.Entries {
			if _, ok := local[entry.Path]; ok {
				continue
			}
			entries = append(entries, TreeEntry{
				Path: entry.Path,
				Mode: entry.Mode,
				Type: entry.Type,
				SHA:  entry.SHA,
			})
		}
	}

	tree, err := s.gateway.CreateTree(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("creating snapshot tree: %w", err)
	}

	return tree, nil
}
