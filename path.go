package ghsync

import (
	"path"
	"strings"
)

// normalizePath canonicalizes a repository path. Surrounding whitespace and
// slashes are trimmed, runs of slashes collapse to one, and "." components
// resolve away. An empty result names the repository root. A ".." segment is
// an error: every path is anchored at the root tree and may only descend.
func normalizePath(p string) (string, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "", nil
	}

	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return "", NewInvalidPathError(p, "path contains parent directory references (..)")
		}
	}

	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", nil
	}

	return cleaned, nil
}

// splitPath normalizes a repository path and splits it into segments.
// Empty segments are discarded; an empty result means the repository root.
func splitPath(p string) ([]string, error) {
	normalized, err := normalizePath(p)
	if err != nil {
		return nil, err
	}

	if normalized == "" {
		return nil, nil
	}

	return strings.Split(normalized, "/"), nil
}
