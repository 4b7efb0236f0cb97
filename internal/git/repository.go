package git

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/mihirlaud/conseil/internal/diff"
)

// GoGitRepository reads commits and diffs from an on-disk Git repository.
type GoGitRepository struct {
	repo        *git.Repository
	path        string
	opts        OpenOptions
	filterCache map[string]bool
}

// Open opens the repository at path.
func Open(path string, opts OpenOptions) (*GoGitRepository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, &RepositoryOpenError{Path: path, Err: err}
	}

	if opts.ContextLines <= 0 {
		opts.ContextLines = fdiff.DefaultContextLines
	}

	// Validate patterns up front so a bad glob fails the open, not the first diff.
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return &GoGitRepository{
		repo:        repo,
		path:        path,
		opts:        opts,
		filterCache: make(map[string]bool),
	}, nil
}

// Path returns the path the repository was opened from.
func (r *GoGitRepository) Path() string {
	return r.path
}

// Head returns the commit at HEAD, or at the configured branch when one is set.
func (r *GoGitRepository) Head() (CommitInfo, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return CommitInfo{}, &CommitResolutionError{Ref: "HEAD", Err: err}
		}
		return r.resolveHash("HEAD", ref.Hash())
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return CommitInfo{}, &CommitResolutionError{Ref: rev, Err: err}
	}
	return r.resolveHash(rev, *hash)
}

// ResolveCommit looks up a commit by its full hex identifier.
func (r *GoGitRepository) ResolveCommit(id string) (CommitInfo, error) {
	c, err := r.commitObject(id)
	if err != nil {
		return CommitInfo{}, err
	}
	return toCommitInfo(c), nil
}

// FirstParent returns the first parent of the commit identified by id.
func (r *GoGitRepository) FirstParent(id string) (CommitInfo, error) {
	c, err := r.commitObject(id)
	if err != nil {
		return CommitInfo{}, err
	}

	if c.NumParents() == 0 {
		return CommitInfo{}, &NoParentError{SHA: c.Hash.String()}
	}

	parent, err := c.Parent(0)
	if err != nil {
		return CommitInfo{}, &CommitResolutionError{Ref: c.ParentHashes[0].String(), Err: err}
	}
	return toCommitInfo(parent), nil
}

// ForEachDiffLine computes the tree diff from parentID to childID and calls fn
// for every line of its unified rendering. Lines before a file's first "@@"
// carry OriginFileHeader and "@@" lines carry OriginHunkHeader.
func (r *GoGitRepository) ForEachDiffLine(parentID, childID string, fn func(diff.Line) error) error {
	parent, err := r.commitObject(parentID)
	if err != nil {
		return err
	}
	child, err := r.commitObject(childID)
	if err != nil {
		return err
	}

	patch, err := parent.Patch(child)
	if err != nil {
		return fmt.Errorf("diff %s..%s: %w", parent.Hash, child.Hash, err)
	}

	for _, filePatch := range patch.FilePatches() {
		path := filePatchPath(filePatch)
		if path == "" {
			continue
		}

		matched, err := r.matchesFilters(path)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}

		var buf bytes.Buffer
		enc := fdiff.NewUnifiedEncoder(&buf, r.opts.ContextLines)
		if err := enc.Encode(singleFilePatch{filePatch}); err != nil {
			return fmt.Errorf("encode diff for %s: %w", path, err)
		}

		if err := emitUnifiedLines(path, buf.Bytes(), fn); err != nil {
			return err
		}
	}

	return nil
}

func (r *GoGitRepository) resolveHash(ref string, hash plumbing.Hash) (CommitInfo, error) {
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return CommitInfo{}, &CommitResolutionError{Ref: ref, Err: err}
	}
	return toCommitInfo(c), nil
}

func (r *GoGitRepository) commitObject(id string) (*object.Commit, error) {
	if !IsCommitID(id) {
		return nil, &CommitResolutionError{Ref: id, Err: ErrInvalidCommitID}
	}
	c, err := r.repo.CommitObject(plumbing.NewHash(id))
	if err != nil {
		return nil, &CommitResolutionError{Ref: id, Err: err}
	}
	return c, nil
}

// matchesFilters checks if a path matches the include/exclude filters.
func (r *GoGitRepository) matchesFilters(path string) (bool, error) {
	if len(r.opts.Include) == 0 && len(r.opts.Exclude) == 0 {
		return true, nil
	}
	if cached, ok := r.filterCache[path]; ok {
		return cached, nil
	}

	matched, err := matchesFilters(path, r.opts.Include, r.opts.Exclude)
	if err != nil {
		return false, err
	}
	r.filterCache[path] = matched
	return matched, nil
}

func matchesFilters(path string, include, exclude []string) (bool, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(include) == 0 {
		return true, nil
	}

	for _, pattern := range include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

// IsCommitID reports whether id is a full hex object hash.
func IsCommitID(id string) bool {
	return plumbing.IsHash(id)
}

func toCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Committer.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: c.Message,
	}
}

// filePatchPath prefers the old path; added files only have a new one.
func filePatchPath(fp fdiff.FilePatch) string {
	from, to := fp.Files()
	switch {
	case from != nil:
		return from.Path()
	case to != nil:
		return to.Path()
	default:
		return ""
	}
}

// singleFilePatch lets the unified encoder render one file at a time so every
// emitted line can be attributed to its path.
type singleFilePatch struct {
	fp fdiff.FilePatch
}

func (p singleFilePatch) FilePatches() []fdiff.FilePatch { return []fdiff.FilePatch{p.fp} }
func (p singleFilePatch) Message() string                { return "" }

// emitUnifiedLines splits one file's unified diff into classified lines.
func emitUnifiedLines(path string, data []byte, fn func(diff.Line) error) error {
	inBody := false
	for len(data) > 0 {
		var raw []byte
		if idx := bytes.IndexByte(data, '\n'); idx != -1 {
			raw, data = data[:idx+1], data[idx+1:]
		} else {
			raw, data = data, nil
		}

		line := classifyUnifiedLine(raw, &inBody)
		line.Path = path
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

func classifyUnifiedLine(raw []byte, inBody *bool) diff.Line {
	if bytes.HasPrefix(raw, []byte("@@")) {
		*inBody = true
		return diff.Line{Origin: diff.OriginHunkHeader, Content: raw}
	}
	if !*inBody || len(raw) == 0 {
		return diff.Line{Origin: diff.OriginFileHeader, Content: raw}
	}

	switch origin := diff.Origin(raw[0]); origin {
	case diff.OriginAdded, diff.OriginRemoved, diff.OriginContext, diff.OriginNoNewline:
		return diff.Line{Origin: origin, Content: raw[1:]}
	default:
		return diff.Line{Origin: diff.OriginContext, Content: raw}
	}
}
