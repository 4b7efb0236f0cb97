package document

import (
	"fmt"
	"log/slog"

	"github.com/mihirlaud/conseil/internal/diff"
	"github.com/mihirlaud/conseil/internal/git"
)

// Builder assembles a Document for one commit.
type Builder struct {
	repo   git.Repository
	logger *slog.Logger
}

// NewBuilder creates a Builder reading from repo.
func NewBuilder(repo git.Repository, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{repo: repo, logger: logger}
}

// Build resolves label through lookup, diffs the commit against its first
// parent and expands tmpl over the resulting hunks. A label that is unknown
// or does not map to a full hash falls back to HEAD. A root commit yields
// *git.NoParentError.
func (b *Builder) Build(label string, lookup *git.CommitLookup, tmpl Template) (*Document, error) {
	commit, err := b.resolve(label, lookup)
	if err != nil {
		return nil, err
	}

	parent, err := b.repo.FirstParent(commit.SHA)
	if err != nil {
		return nil, err
	}

	seg := diff.NewSegmenter(b.logger)
	err = b.repo.ForEachDiffLine(parent.SHA, commit.SHA, func(l diff.Line) error {
		seg.Add(l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read diff for %s: %w", commit.SHA, err)
	}
	hunks := seg.Finish()

	b.logger.Debug("Segmented diff",
		"commit", commit.SHA,
		"parent", parent.SHA,
		"hunks", len(hunks),
		"skipped", len(seg.Skipped()))

	doc := NewDocument()
	doc.Commit = commit
	doc.Parent = parent

	exp := NewExpander(doc, b.logger)
	exp.Expand(PhaseIntro, tmpl.Intro, nil)
	for i := range hunks {
		exp.Expand(PhasePerFile, tmpl.PerFile, &hunks[i])
	}
	exp.Expand(PhaseOutro, tmpl.Outro, nil)

	return doc, nil
}

func (b *Builder) resolve(label string, lookup *git.CommitLookup) (git.CommitInfo, error) {
	var (
		id string
		ok bool
	)
	if lookup != nil {
		id, ok = lookup.Get(label)
	}
	if !ok || !git.IsCommitID(id) {
		b.logger.Warn("Commit label not resolvable, using HEAD", "label", label)
		return b.repo.Head()
	}
	return b.repo.ResolveCommit(id)
}
