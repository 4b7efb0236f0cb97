package document

import (
	"io"
	"log/slog"

	"github.com/mihirlaud/conseil/internal/diff"
	"github.com/mihirlaud/conseil/internal/git"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func added(path, content string) diff.Line {
	return diff.Line{Path: path, Origin: diff.OriginAdded, Content: []byte(content)}
}

// scenario is the three-commit history C0 <- C1 <- C2 where C2 adds
// a.txt containing "hello".
type scenario struct {
	repo       *git.MockRepository
	c0, c1, c2 string
}

func newScenario() scenario {
	s := scenario{
		c0: git.MockSHA("c0"),
		c1: git.MockSHA("c1"),
		c2: git.MockSHA("c2"),
	}
	s.repo = git.NewMockRepository().
		AddCommit(s.c2, "fix bug", s.c1).
		AddCommit(s.c1, "add readme", s.c0).
		AddCommit(s.c0, "initial").
		SetDiff(s.c2,
			diff.Line{Path: "a.txt", Origin: diff.OriginFileHeader, Content: []byte("diff --git a/a.txt b/a.txt\n")},
			diff.Line{Path: "a.txt", Origin: diff.OriginHunkHeader, Content: []byte("@@ -0,0 +1 @@\n")},
			added("a.txt", "hello\n"),
		).
		SetDiff(s.c1, added("README.md", "readme\n"))
	return s
}

func (s scenario) lookup() *git.CommitLookup {
	lookup := git.NewCommitLookup()
	if _, err := git.Walk(s.repo, "", lookup, git.WalkOptions{}); err != nil {
		panic(err)
	}
	return lookup
}

func (s scenario) label(sha string) string {
	c, err := s.repo.ResolveCommit(sha)
	if err != nil {
		panic(err)
	}
	return git.NewCommitRef(c).Label
}

func e2eTemplate() Template {
	return NewTemplate([]string{"heading"}, []string{"filename", "diff"}, nil)
}
