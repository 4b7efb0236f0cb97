package diff

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func line(path string, origin Origin, content string) Line {
	return Line{Path: path, Origin: origin, Content: []byte(content)}
}

func TestSegment_Empty(t *testing.T) {
	hunks := Segment(nil, discardLogger())
	if len(hunks) != 0 {
		t.Fatalf("expected 0 hunks, got %d", len(hunks))
	}
}

func TestSegment_SingleFile(t *testing.T) {
	lines := []Line{
		line("a.txt", OriginContext, "one\n"),
		line("a.txt", OriginRemoved, "two\n"),
		line("a.txt", OriginAdded, "deux\n"),
		line("a.txt", OriginContext, "three\n"),
	}

	hunks := Segment(lines, discardLogger())
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}

	want := []HunkLine{
		{Text: " one\n", Kind: EditContext},
		{Text: "-two\n", Kind: EditRemoved},
		{Text: "+deux\n", Kind: EditAdded},
		{Text: " three\n", Kind: EditContext},
	}
	if hunks[0].Path != "a.txt" {
		t.Errorf("Path = %q, want %q", hunks[0].Path, "a.txt")
	}
	if len(hunks[0].Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(hunks[0].Lines))
	}
	for i, w := range want {
		if hunks[0].Lines[i] != w {
			t.Errorf("line[%d] = %+v, want %+v", i, hunks[0].Lines[i], w)
		}
	}
}

func TestSegment_NonAdjacentRunsAreNotMerged(t *testing.T) {
	lines := []Line{
		line("a.txt", OriginAdded, "a1\n"),
		line("b.txt", OriginAdded, "b1\n"),
		line("b.txt", OriginAdded, "b2\n"),
		line("a.txt", OriginRemoved, "a2\n"),
	}

	hunks := Segment(lines, discardLogger())

	wantPaths := []string{"a.txt", "b.txt", "a.txt"}
	if len(hunks) != len(wantPaths) {
		t.Fatalf("expected %d hunks, got %d", len(wantPaths), len(hunks))
	}
	for i, p := range wantPaths {
		if hunks[i].Path != p {
			t.Errorf("hunk[%d].Path = %q, want %q", i, hunks[i].Path, p)
		}
	}
	if len(hunks[1].Lines) != 2 {
		t.Errorf("hunk[1] has %d lines, want 2", len(hunks[1].Lines))
	}
}

func TestSegment_TrailingHunkIsFlushed(t *testing.T) {
	lines := []Line{
		line("a.txt", OriginAdded, "a\n"),
		line("z.txt", OriginAdded, "z\n"),
	}

	hunks := Segment(lines, discardLogger())
	if len(hunks) != 2 {
		t.Fatalf("expected 2 hunks, got %d", len(hunks))
	}
	if hunks[1].Path != "z.txt" || hunks[1].Lines[0].Text != "+z\n" {
		t.Errorf("trailing hunk = %+v", hunks[1])
	}
}

func TestSegment_HeadersAreFiltered(t *testing.T) {
	lines := []Line{
		line("a.txt", OriginFileHeader, "diff --git a/a.txt b/a.txt\n"),
		line("a.txt", OriginHunkHeader, "@@ -0,0 +1 @@\n"),
		line("a.txt", OriginAdded, "hello\n"),
		line("b.txt", OriginFileHeader, "diff --git a/b.txt b/b.txt\n"),
	}

	hunks := Segment(lines, discardLogger())
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d: %+v", len(hunks), hunks)
	}
	if len(hunks[0].Lines) != 1 || hunks[0].Lines[0].Text != "+hello\n" {
		t.Errorf("unexpected lines: %+v", hunks[0].Lines)
	}
}

func TestSegmenter_SkipsUndecodableLine(t *testing.T) {
	s := NewSegmenter(discardLogger())
	s.Add(line("a.txt", OriginAdded, "ok\n"))
	s.Add(Line{Path: "a.txt", Origin: OriginAdded, Content: []byte{0xff, 0xfe, '\n'}})
	s.Add(line("a.txt", OriginContext, "still ok\n"))

	hunks := s.Finish()
	if len(hunks) != 1 {
		t.Fatalf("expected 1 hunk, got %d", len(hunks))
	}
	if len(hunks[0].Lines) != 2 {
		t.Fatalf("expected 2 lines after skip, got %d", len(hunks[0].Lines))
	}

	skipped := s.Skipped()
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %d", len(skipped))
	}
	var decodeErr *LineDecodeError
	if !errors.As(skipped[0], &decodeErr) {
		t.Fatalf("expected LineDecodeError, got %T", skipped[0])
	}
	if decodeErr.Path != "a.txt" || decodeErr.Len != 3 {
		t.Errorf("unexpected error fields: %+v", decodeErr)
	}
}

func TestSegmenter_FinishResets(t *testing.T) {
	s := NewSegmenter(discardLogger())
	s.Add(line("a.txt", OriginAdded, "a\n"))
	if got := len(s.Finish()); got != 1 {
		t.Fatalf("first Finish returned %d hunks, want 1", got)
	}
	if got := len(s.Finish()); got != 0 {
		t.Errorf("second Finish returned %d hunks, want 0", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		origin   Origin
		expected EditKind
	}{
		{name: "Added", origin: OriginAdded, expected: EditAdded},
		{name: "Removed", origin: OriginRemoved, expected: EditRemoved},
		{name: "Context", origin: OriginContext, expected: EditContext},
		{name: "No newline trailer", origin: OriginNoNewline, expected: EditContext},
		{name: "Unknown", origin: Origin('='), expected: EditContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.origin)
			if result != tt.expected {
				t.Errorf("Classify(%q) = %v, expected %v", rune(tt.origin), result, tt.expected)
			}
		})
	}
}

func TestEditKind_String(t *testing.T) {
	tests := []struct {
		kind     EditKind
		expected string
	}{
		{EditAdded, "added"},
		{EditRemoved, "removed"},
		{EditContext, "context"},
		{EditKind(42), "context"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestHunk_Counts(t *testing.T) {
	h := Hunk{Path: "a.txt", Lines: []HunkLine{
		{Text: "+a\n", Kind: EditAdded},
		{Text: "+b\n", Kind: EditAdded},
		{Text: "-c\n", Kind: EditRemoved},
		{Text: " d\n", Kind: EditContext},
	}}
	if h.Added() != 2 {
		t.Errorf("Added() = %d, want 2", h.Added())
	}
	if h.Removed() != 1 {
		t.Errorf("Removed() = %d, want 1", h.Removed())
	}
}
