package document

import (
	"errors"
	"log/slog"

	"github.com/mihirlaud/conseil/internal/git"
)

var (
	// ErrNoRepository is returned when a session operation needs an open repository.
	ErrNoRepository = errors.New("no repository open")
	// ErrNoDocument is returned when editing before any document was built.
	ErrNoDocument = errors.New("no document built")
)

// Opener opens the repository at path.
type Opener func(path string) (git.Repository, error)

// GoGitOpener returns an Opener backed by git.Open.
func GoGitOpener(opts git.OpenOptions) Opener {
	return func(path string) (git.Repository, error) {
		repo, err := git.Open(path, opts)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Template Template
	Walk     git.WalkOptions
	Logger   *slog.Logger
}

// Session holds the repository, commit lookup and current document for one
// interactive run.
type Session struct {
	open   Opener
	opts   SessionOptions
	logger *slog.Logger

	repo     git.Repository
	lookup   *git.CommitLookup
	ancestry git.AncestryList
	doc      *Document
}

// NewSession creates a session with nothing open.
func NewSession(open Opener, opts SessionOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		open:   open,
		opts:   opts,
		logger: logger,
		lookup: git.NewCommitLookup(),
	}
}

// OpenRepository opens path and walks its history from HEAD. On success the
// commit lookup is rebuilt and the current document cleared; on failure the
// session is unchanged.
func (s *Session) OpenRepository(path string) error {
	repo, err := s.open(path)
	if err != nil {
		var openErr *git.RepositoryOpenError
		if !errors.As(err, &openErr) {
			err = &git.RepositoryOpenError{Path: path, Err: err}
		}
		return err
	}

	lookup := git.NewCommitLookup()
	ancestry, err := git.Walk(repo, "", lookup, s.opts.Walk)
	if err != nil {
		return err
	}

	s.repo = repo
	s.lookup = lookup
	s.ancestry = ancestry
	s.doc = nil

	s.logger.Info("Opened repository", "path", path, "commits", len(ancestry))
	return nil
}

// SelectCommit builds the document for label and makes it current. If the
// build fails the previous document is kept.
func (s *Session) SelectCommit(label string) error {
	if s.repo == nil {
		return ErrNoRepository
	}

	doc, err := NewBuilder(s.repo, s.logger).Build(label, s.lookup, s.opts.Template)
	if err != nil {
		return err
	}

	s.doc = doc
	return nil
}

// EditSlot changes the text of one slot in the current document.
func (s *Session) EditSlot(kind SlotKind, idx int, text string) error {
	if s.doc == nil {
		return ErrNoDocument
	}
	return s.doc.SetText(kind, idx, text)
}

// Repository returns the open repository, or nil.
func (s *Session) Repository() git.Repository { return s.repo }

// Ancestry returns the commit references from the last successful open.
func (s *Session) Ancestry() git.AncestryList { return s.ancestry }

// Lookup returns the label lookup.
func (s *Session) Lookup() *git.CommitLookup { return s.lookup }

// Document returns the current document, or nil before the first build.
func (s *Session) Document() *Document { return s.doc }
