package diff

// Origin is the single-character marker a diff line carries.
type Origin byte

const (
	OriginContext    Origin = ' '
	OriginAdded      Origin = '+'
	OriginRemoved    Origin = '-'
	OriginFileHeader Origin = 'F'
	OriginHunkHeader Origin = 'H'
	// OriginNoNewline marks the "\ No newline at end of file" trailer.
	OriginNoNewline Origin = '\\'
)

// IsHeader reports whether the origin marks a file or fragment header line.
// Header lines never become part of a hunk.
func (o Origin) IsHeader() bool {
	return o == OriginFileHeader || o == OriginHunkHeader
}

// EditKind classifies a line inside a hunk.
type EditKind int

const (
	EditContext EditKind = iota
	EditAdded
	EditRemoved
)

// String returns a string representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditAdded:
		return "added"
	case EditRemoved:
		return "removed"
	default:
		return "context"
	}
}

// Classify maps an origin marker to its edit kind.
func Classify(o Origin) EditKind {
	switch o {
	case OriginAdded:
		return EditAdded
	case OriginRemoved:
		return EditRemoved
	default:
		return EditContext
	}
}

// Line is one raw line of a diff as produced by the repository.
type Line struct {
	Path    string
	Origin  Origin
	Content []byte
}

// HunkLine is a rendered diff line (origin marker followed by content) and its edit kind.
type HunkLine struct {
	Text string
	Kind EditKind
}

// Hunk is a contiguous run of diff lines belonging to one file.
type Hunk struct {
	Path  string
	Lines []HunkLine
}

// Added returns the number of added lines in the hunk.
func (h Hunk) Added() int {
	return h.count(EditAdded)
}

// Removed returns the number of removed lines in the hunk.
func (h Hunk) Removed() int {
	return h.count(EditRemoved)
}

func (h Hunk) count(kind EditKind) int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind == kind {
			n++
		}
	}
	return n
}
