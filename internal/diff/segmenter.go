package diff

import (
	"log/slog"
	"unicode/utf8"
)

// Segmenter groups a stream of diff lines into per-file hunks.
// A new hunk starts whenever the file path of an incoming line differs from
// the path tracked since the previous hunk was closed.
type Segmenter struct {
	logger *slog.Logger

	currentPath string
	current     []HunkLine
	hunks       []Hunk
	skipped     []error
}

// NewSegmenter creates a Segmenter. A nil logger falls back to slog.Default().
func NewSegmenter(logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Segmenter{logger: logger}
}

// Add consumes one diff line. Header lines are ignored; lines whose content
// is not valid UTF-8 are logged and dropped.
func (s *Segmenter) Add(line Line) {
	if line.Origin.IsHeader() {
		return
	}

	if line.Path != s.currentPath {
		s.flush()
		s.currentPath = line.Path
	}

	if !utf8.Valid(line.Content) {
		err := &LineDecodeError{Path: line.Path, Origin: line.Origin, Len: len(line.Content)}
		s.logger.Warn("Skipping undecodable diff line", "path", line.Path, "error", err)
		s.skipped = append(s.skipped, err)
		return
	}

	s.current = append(s.current, HunkLine{
		Text: string(rune(line.Origin)) + string(line.Content),
		Kind: Classify(line.Origin),
	})
}

// Finish flushes the trailing hunk and returns all hunks in the order their
// first line was observed. The segmenter is reset afterwards.
func (s *Segmenter) Finish() []Hunk {
	s.flush()
	hunks := s.hunks
	s.hunks = nil
	s.currentPath = ""
	return hunks
}

// Skipped returns the decode errors for lines dropped so far.
func (s *Segmenter) Skipped() []error {
	return s.skipped
}

func (s *Segmenter) flush() {
	if len(s.current) == 0 {
		return
	}
	s.hunks = append(s.hunks, Hunk{Path: s.currentPath, Lines: s.current})
	s.current = nil
}

// Segment runs a fresh Segmenter over lines and returns the resulting hunks.
func Segment(lines []Line, logger *slog.Logger) []Hunk {
	s := NewSegmenter(logger)
	for _, l := range lines {
		s.Add(l)
	}
	return s.Finish()
}
