package ghsync

// EntryType identifies what kind of object a tree entry points at.
type EntryType string

const (
	// EntryBlob marks an entry pointing at file content.
	EntryBlob EntryType = "blob"
	// EntryTree marks an entry pointing at a nested directory tree.
	EntryTree EntryType = "tree"
)

// File modes in the octal string form the object store uses.
const (
	// ModeFile is the mode for regular files.
	ModeFile = "100644"
	// ModeTree is the mode for directory entries.
	ModeTree = "040000"
)

// TreeEntry is a single entry in a tree object. Path is one path segment,
// unique within its owning tree, never a slash-separated path.
type TreeEntry struct {
	// Path is the entry name within the tree (e.g. "index.html")
	Path string
	// Mode is the file mode ("100644" for files, "040000" for trees)
	Mode string
	// Type is the kind of object the entry points at
	Type EntryType
	// SHA is the content hash of the referenced object
	SHA string
}

// Tree is an immutable, content-addressed directory listing. Two trees with
// identical entry sets receive the same SHA from the store; the syncer relies
// on that to detect no-op syncs.
type Tree struct {
	// SHA is the content hash of this tree object
	SHA string
	// Entries contains the direct children of this tree (non-recursive)
	Entries []TreeEntry
}

// Commit is an immutable snapshot record pointing at one root tree.
type Commit struct {
	// SHA is the content hash of this commit object
	SHA string
	// Tree is the hash of the root tree the commit snapshots
	Tree string
	// Parents holds the hashes of the parent commits
	Parents []string
	// Message is the commit message
	Message string
}

// Ref is a mutable named pointer to a commit. It is the only mutable entity
// in the object model; everything else is write-once.
type Ref struct {
	// Name is the full reference name (e.g. "refs/heads/main")
	Name string
	// SHA is the commit hash the reference points at
	SHA string
}

// PullRequest describes a merge request opened by the sync pipeline.
type PullRequest struct {
	// Number is the store-assigned pull request number
	Number int
	// Title is the pull request title (first line of the commit message)
	Title string
	// Body is the pull request description
	Body string
	// Base is the branch the pull request merges into
	Base string
	// Head is the branch the pull request merges from
	Head string
	// URL is a human-facing link to the pull request, when the store provides one
	URL string
}
