package git

import "github.com/mihirlaud/conseil/internal/diff"

// Repository is the version-control access the document engine consumes.
// This abstraction allows for easier testing and potential alternative implementations.
type Repository interface {
	// Head returns the commit the repository currently points at.
	Head() (CommitInfo, error)
	// ResolveCommit looks up a commit by its full hex identifier.
	ResolveCommit(id string) (CommitInfo, error)
	// FirstParent returns the first parent of the commit, or a *NoParentError.
	FirstParent(id string) (CommitInfo, error)
	// ForEachDiffLine streams the diff between two commits' trees, file by file.
	ForEachDiffLine(parentID, childID string, fn func(diff.Line) error) error
}

// Compile-time interface conformance check.
var _ Repository = (*GoGitRepository)(nil)
