package git

import (
	"fmt"
	"strings"
	"time"
)

// shortSHALen is the number of hash characters shown in commit labels.
const shortSHALen = 6

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Subject returns the first line of the commit message, trimmed.
func (c CommitInfo) Subject() string {
	message := c.Message
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}

// CommitRef pairs a commit identifier with its human-readable label.
type CommitRef struct {
	ID    string
	Label string
}

// NewCommitRef builds the reference shown in the commit picker.
func NewCommitRef(c CommitInfo) CommitRef {
	return CommitRef{ID: c.SHA, Label: FormatLabel(c.Subject(), c.SHA)}
}

// FormatLabel renders "<subject> : <first 6 hash chars>...".
func FormatLabel(subject, sha string) string {
	short := sha
	if len(short) > shortSHALen {
		short = short[:shortSHALen]
	}
	return fmt.Sprintf("%s : %s...", subject, short)
}

// AncestryList is a first-parent chain; index 0 is the starting commit.
type AncestryList []CommitRef

// Labels returns the labels in traversal order.
func (a AncestryList) Labels() []string {
	labels := make([]string, len(a))
	for i, ref := range a {
		labels[i] = ref.Label
	}
	return labels
}

// CommitLookup resolves picker labels back to commit identifiers.
// Labels are not guaranteed unique; a later Set for the same label wins.
type CommitLookup struct {
	ids map[string]string
}

// NewCommitLookup creates an empty lookup.
func NewCommitLookup() *CommitLookup {
	return &CommitLookup{ids: make(map[string]string)}
}

// Set maps label to id, overwriting any previous mapping.
func (l *CommitLookup) Set(label, id string) {
	l.ids[label] = id
}

// Get returns the identifier for label.
func (l *CommitLookup) Get(label string) (string, bool) {
	id, ok := l.ids[label]
	return id, ok
}

// Len returns the number of distinct labels.
func (l *CommitLookup) Len() int {
	return len(l.ids)
}

// Reset removes every mapping.
func (l *CommitLookup) Reset() {
	clear(l.ids)
}

// OpenOptions configures how a repository is read.
type OpenOptions struct {
	Branch       string   // Walk from this revision instead of HEAD
	ContextLines int      // Unified diff context lines; <= 0 uses the go-git default
	Include      []string // Glob patterns to include
	Exclude      []string // Glob patterns to exclude
}
