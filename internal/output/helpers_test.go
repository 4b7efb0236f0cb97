package output

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mihirlaud/conseil/internal/diff"
	"github.com/mihirlaud/conseil/internal/document"
	"github.com/mihirlaud/conseil/internal/git"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildDocument builds a document for a single commit whose diff is lines.
func buildDocument(t *testing.T, tmpl document.Template, lines ...diff.Line) *document.Document {
	t.Helper()
	head := git.MockSHA("head")
	parent := git.MockSHA("parent")
	repo := git.NewMockRepository().
		AddCommit(head, "fix bug", parent).
		AddCommit(parent, "initial").
		SetDiff(head, lines...)

	doc, err := document.NewBuilder(repo, discardLogger()).Build("", nil, tmpl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func line(path string, origin diff.Origin, content string) diff.Line {
	return diff.Line{Path: path, Origin: origin, Content: []byte(content)}
}

// e2eDocument is the single-file "+hello" document with intro [heading]
// and per-file [filename, diff].
func e2eDocument(t *testing.T) *document.Document {
	t.Helper()
	tmpl := document.NewTemplate([]string{"heading"}, []string{"filename", "diff"}, nil)
	return buildDocument(t, tmpl, line("a.txt", diff.OriginAdded, "hello\n"))
}

func richDocument(t *testing.T) *document.Document {
	t.Helper()
	tmpl := document.NewTemplate(
		[]string{"heading", "paragraph"},
		[]string{"subheading", "filename", "diff", "paragraph"},
		[]string{"paragraph"},
	)
	return buildDocument(t, tmpl,
		line("a.go", diff.OriginContext, "package a\n"),
		line("a.go", diff.OriginRemoved, "var x = 1\n"),
		line("a.go", diff.OriginAdded, "var x = 2\n"),
		line("b.go", diff.OriginAdded, "package b\n"),
	)
}

func testReport(doc *document.Document) *DocumentReport {
	return &DocumentReport{
		RepoPath:    "/repo",
		GeneratedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		Document:    doc,
	}
}

func richTemplateDiffOnly() document.Template {
	return document.NewTemplate(nil, []string{"diff"}, nil)
}
