package ghsync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asana/ghsync/log/mocks"
)

// writeLocalFiles creates a temp directory holding the given files.
func writeLocalFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func entryPaths(entries []TreeEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}

	return paths
}

func TestBuildSnapshot(t *testing.T) {
	newSnapshotSyncer := func(t *testing.T, gw Gateway, dir string, preserve bool) *Syncer {
		t.Helper()

		opts := validOptions()
		opts.LocalPath = dir
		opts.PreserveRepoFiles = preserve

		syncer, err := New(gw, opts)
		require.NoError(t, err)

		return syncer
	}

	t.Run("files become blob entries", func(t *testing.T) {
		gw := newStubGateway()
		dir := writeLocalFiles(t, map[string]string{"a.txt": "1", "b.txt": "2"})

		tree, err := newSnapshotSyncer(t, gw, dir, false).buildSnapshot(context.Background(), nil)
		require.NoError(t, err)
		require.NotEmpty(t, tree.SHA)

		require.Len(t, gw.createdTrees, 1)
		created := gw.createdTrees[0]
		assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, entryPaths(created))
		for _, entry := range created {
			assert.Equal(t, ModeFile, entry.Mode)
			assert.Equal(t, EntryBlob, entry.Type)
			assert.NotEmpty(t, entry.SHA)
		}
		assert.Equal(t, 2, gw.createBlobCalls)
	})

	t.Run("subdirectories are skipped with a warning", func(t *testing.T) {
		gw := newStubGateway()
		dir := writeLocalFiles(t, map[string]string{"a.txt": "1"})
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

		logger := &mocks.FakeLogger{}
		syncer, err := New(gw, Options{LocalPath: dir, RepoPath: "site", Message: "m"}, WithLogger(logger))
		require.NoError(t, err)

		_, err = syncer.buildSnapshot(context.Background(), nil)
		require.NoError(t, err)

		require.Len(t, gw.createdTrees, 1)
		assert.ElementsMatch(t, []string{"a.txt"}, entryPaths(gw.createdTrees[0]))

		require.Equal(t, 1, logger.WarnCallCount())
		msg, _ := logger.WarnArgsForCall(0)
		assert.Contains(t, msg, "skipping directory")
	})

	t.Run("preserve keeps unmatched remote entries", func(t *testing.T) {
		gw := newStubGateway()
		dir := writeLocalFiles(t, map[string]string{"a.txt": "1", "b.txt": "2"})

		existing := &Tree{
			SHA: "existing",
			Entries: []TreeEntry{
				{Path: "c.txt", Mode: ModeFile, Type: EntryBlob, SHA: "keepme"},
			},
		}

		_, err := newSnapshotSyncer(t, gw, dir, true).buildSnapshot(context.Background(), existing)
		require.NoError(t, err)

		require.Len(t, gw.createdTrees, 1)
		created := gw.createdTrees[0]
		assert.ElementsMatch(t, []string{"a.txt", "b.txt", "c.txt"}, entryPaths(created))
		for _, entry := range created {
			if entry.Path == "c.txt" {
				assert.Equal(t, "keepme", entry.SHA, "carried-over entry keeps its hash")
			}
		}
	})

	t.Run("without preserve remote entries are replaced", func(t *testing.T) {
		gw := newStubGateway()
		dir := writeLocalFiles(t, map[string]string{"a.txt": "1", "b.txt": "2"})

		existing := &Tree{
			SHA: "existing",
			Entries: []TreeEntry{
				{Path: "c.txt", Mode: ModeFile, Type: EntryBlob, SHA: "dropme"},
			},
		}

		_, err := newSnapshotSyncer(t, gw, dir, false).buildSnapshot(context.Background(), existing)
		require.NoError(t, err)

		require.Len(t, gw.createdTrees, 1)
		assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, entryPaths(gw.createdTrees[0]))
	})

	t.Run("local files supersede remote entries with the same name", func(t *testing.T) {
		gw := newStubGateway()
		dir := writeLocalFiles(t, map[string]string{"a.txt": "new content"})

		existing := &Tree{
			SHA: "existing",
			Entries: []TreeEntry{
				{Path: "a.txt", Mode: ModeFile, Type: EntryBlob, SHA: "stale"},
			},
		}

		_, err := newSnapshotSyncer(t, gw, dir, true).buildSnapshot(context.Background(), existing)
		require.NoError(t, err)

		require.Len(t, gw.createdTrees, 1)
		created := gw.createdTrees[0]
		require.Len(t, created, 1)
		assert.NotEqual(t, "stale", created[0].SHA)
	})

	t.Run("missing local directory is a fatal error", func(t *testing.T) {
		gw := newStubGateway()
		syncer, err := New(gw, Options{LocalPath: "/does/not/exist", RepoPath: "site", Message: "m"})
		require.NoError(t, err)

		_, err = syncer.buildSnapshot(context.Background(), nil)
		require.Error(t, err)
		assert.Zero(t, gw.createBlobCalls)
	})

	t.Run("blob failure aborts the snapshot", func(t *testing.T) {
		gw := newStubGateway()
		gw.blobErr = assert.AnError
		dir := writeLocalFiles(t, map[string]string{"a.txt": "1"})

		_, err := newSnapshotSyncer(t, gw, dir, false).buildSnapshot(context.Background(), nil)
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, gw.createTreeCalls)
	})
}
