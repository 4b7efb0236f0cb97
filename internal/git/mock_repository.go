package git

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/mihirlaud/conseil/internal/diff"
)

// MockRepository is a test double for GoGitRepository.
// It allows tests to provide predefined commits and diff lines without needing a real Git repository.
type MockRepository struct {
	HeadSHA string
	Commits map[string]CommitInfo
	Parents map[string][]string
	Diffs   map[string][]diff.Line // keyed by child SHA
	Error   error                  // returned by ForEachDiffLine when set
}

// NewMockRepository creates an empty MockRepository.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		Commits: make(map[string]CommitInfo),
		Parents: make(map[string][]string),
		Diffs:   make(map[string][]diff.Line),
	}
}

// MockSHA derives a stable 40-character hex identifier from seed.
func MockSHA(seed string) string {
	sum := sha1.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// AddCommit registers a commit with the given parents. The first commit added becomes HEAD.
func (m *MockRepository) AddCommit(sha, message string, parents ...string) *MockRepository {
	m.Commits[sha] = CommitInfo{SHA: sha, Message: message}
	m.Parents[sha] = parents
	if m.HeadSHA == "" {
		m.HeadSHA = sha
	}
	return m
}

// SetDiff sets the lines ForEachDiffLine emits for childSHA.
func (m *MockRepository) SetDiff(childSHA string, lines ...diff.Line) *MockRepository {
	m.Diffs[childSHA] = lines
	return m
}

// Head returns the commit named by HeadSHA.
func (m *MockRepository) Head() (CommitInfo, error) {
	if m.HeadSHA == "" {
		return CommitInfo{}, &CommitResolutionError{Ref: "HEAD", Err: errors.New("reference not found")}
	}
	return m.ResolveCommit(m.HeadSHA)
}

// ResolveCommit returns the registered commit.
func (m *MockRepository) ResolveCommit(id string) (CommitInfo, error) {
	if !IsCommitID(id) {
		return CommitInfo{}, &CommitResolutionError{Ref: id, Err: ErrInvalidCommitID}
	}
	c, ok := m.Commits[strings.ToLower(id)]
	if !ok {
		return CommitInfo{}, &CommitResolutionError{Ref: id, Err: errors.New("object not found")}
	}
	return c, nil
}

// FirstParent returns the first registered parent.
func (m *MockRepository) FirstParent(id string) (CommitInfo, error) {
	c, err := m.ResolveCommit(id)
	if err != nil {
		return CommitInfo{}, err
	}
	parents := m.Parents[c.SHA]
	if len(parents) == 0 {
		return CommitInfo{}, &NoParentError{SHA: c.SHA}
	}
	return m.ResolveCommit(parents[0])
}

// ForEachDiffLine replays the lines registered for childID.
func (m *MockRepository) ForEachDiffLine(parentID, childID string, fn func(diff.Line) error) error {
	if m.Error != nil {
		return m.Error
	}
	if _, err := m.ResolveCommit(parentID); err != nil {
		return err
	}
	for _, l := range m.Diffs[strings.ToLower(childID)] {
		if err := fn(l); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time interface conformance check.
var _ Repository = (*MockRepository)(nil)
