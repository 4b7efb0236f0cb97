package git

import (
	"errors"
	"fmt"
)

// ErrInvalidCommitID is returned when an identifier is not a full hex hash.
var ErrInvalidCommitID = errors.New("invalid commit id")

// RepositoryOpenError reports a path that is missing or not a Git repository.
type RepositoryOpenError struct {
	Path string
	Err  error
}

func (e *RepositoryOpenError) Error() string {
	return fmt.Sprintf("open repository %s: %v", e.Path, e.Err)
}

func (e *RepositoryOpenError) Unwrap() error { return e.Err }

// CommitResolutionError reports a reference or identifier that could not be
// resolved to a commit.
type CommitResolutionError struct {
	Ref string
	Err error
}

func (e *CommitResolutionError) Error() string {
	return fmt.Sprintf("resolve commit %s: %v", e.Ref, e.Err)
}

func (e *CommitResolutionError) Unwrap() error { return e.Err }

// NoParentError reports a root commit, which has nothing to diff against.
type NoParentError struct {
	SHA string
}

func (e *NoParentError) Error() string {
	return fmt.Sprintf("commit %s has no parent", e.SHA)
}
