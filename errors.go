package ghsync

import (
	"errors"
	"fmt"
)

var (
	// ErrRefNotFound is returned when a requested reference does not exist in
	// the repository. It is recoverable when branch creation was requested;
	// otherwise it is a fatal configuration problem.
	ErrRefNotFound = errors.New("ref not found")

	// ErrPathNotFound is returned by the strict path resolver when an
	// intermediate directory along the target path does not exist.
	ErrPathNotFound = errors.New("path not found")

	// ErrPullRequestExists is returned when the store reports that a pull
	// request between the two branches already exists. The sync pipeline
	// treats it as success.
	ErrPullRequestExists = errors.New("pull request already exists")

	// ErrInvalidOptions is returned when the sync options are missing required
	// fields or combine contradictory settings.
	ErrInvalidOptions = errors.New("invalid options")
)

// RefNotFoundError provides structured information about a missing reference.
// It supports errors.Is with ErrRefNotFound.
type RefNotFoundError struct {
	Ref string
	Err error
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref %s not found: %v", e.Ref, e.Err)
}

func (e *RefNotFoundError) Unwrap() error {
	return e.Err
}

// NewRefNotFoundError creates a RefNotFoundError for the given reference name.
func NewRefNotFoundError(ref string) *RefNotFoundError {
	return &RefNotFoundError{Ref: ref, Err: ErrRefNotFound}
}

// PathNotFoundError reports which segment of a repository path could not be
// resolved. It supports errors.Is with ErrPathNotFound.
type PathNotFoundError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path %s not found (missing segment %q): %v", e.Path, e.Segment, e.Err)
}

func (e *PathNotFoundError) Unwrap() error {
	return e.Err
}

// NewPathNotFoundError creates a PathNotFoundError for the given path and the
// first segment that failed to resolve.
func NewPathNotFoundError(path, segment string) *PathNotFoundError {
	return &PathNotFoundError{Path: path, Segment: segment, Err: ErrPathNotFound}
}

// PullRequestExistsError reports an already-open pull request between the two
// branches. It supports errors.Is with ErrPullRequestExists.
type PullRequestExistsError struct {
	Head string
	Base string
	Err  error
}

func (e *PullRequestExistsError) Error() string {
	return fmt.Sprintf("pull request from %s into %s already exists: %v", e.Head, e.Base, e.Err)
}

func (e *PullRequestExistsError) Unwrap() error {
	return e.Err
}

// NewPullRequestExistsError creates a PullRequestExistsError for the given
// head and base branches.
func NewPullRequestExistsError(head, base string) *PullRequestExistsError {
	return &PullRequestExistsError{Head: head, Base: base, Err: ErrPullRequestExists}
}

// InvalidOptionsError reports which option field failed validation and why.
// It supports errors.Is with ErrInvalidOptions.
type InvalidOptionsError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Reason)
}

func (e *InvalidOptionsError) Unwrap() error {
	return e.Err
}

// NewInvalidOptionsError creates an InvalidOptionsError for the given field.
func NewInvalidOptionsError(field, reason string) *InvalidOptionsError {
	return &InvalidOptionsError{Field: field, Reason: reason, Err: ErrInvalidOptions}
}

// InvalidPathError reports a repository path the syncer refuses to use.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// NewInvalidPathError creates an InvalidPathError with the specified details.
func NewInvalidPathError(path, reason string) *InvalidPathError {
	return &InvalidPathError{Path: path, Reason: reason}
}
