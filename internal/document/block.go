package document

import (
	"fmt"

	"github.com/mihirlaud/conseil/internal/diff"
)

// SlotKind identifies one of the three editable text stores.
type SlotKind int

const (
	SlotHeading SlotKind = iota
	SlotSubheading
	SlotParagraph
)

// String returns the display name, which is also the default-text prefix.
func (k SlotKind) String() string {
	switch k {
	case SlotHeading:
		return "Heading"
	case SlotSubheading:
		return "Subheading"
	case SlotParagraph:
		return "Paragraph"
	default:
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
}

// ParseSlotKind accepts the template token spelling of a kind.
func ParseSlotKind(s string) (SlotKind, error) {
	switch Token(s) {
	case TokenHeading:
		return SlotHeading, nil
	case TokenSubheading:
		return SlotSubheading, nil
	case TokenParagraph:
		return SlotParagraph, nil
	default:
		return 0, fmt.Errorf("unknown slot kind %q", s)
	}
}

// Block is one entry of a document. The set of implementations is closed.
type Block interface {
	block()
}

// SlotBlock is a Block whose text lives in a slot store.
type SlotBlock interface {
	Block
	SlotRef() (SlotKind, int)
}

// Heading is a top-level title.
type Heading struct{ Slot int }

// Subheading is a second-level title.
type Subheading struct{ Slot int }

// Paragraph is free prose.
type Paragraph struct{ Slot int }

// Filename names the file whose hunk follows.
type Filename struct{ Path string }

// Hunk embeds the changed lines of one file.
type Hunk struct{ diff.Hunk }

func (Heading) block()    {}
func (Subheading) block() {}
func (Paragraph) block()  {}
func (Filename) block()   {}
func (Hunk) block()       {}

func (b Heading) SlotRef() (SlotKind, int)    { return SlotHeading, b.Slot }
func (b Subheading) SlotRef() (SlotKind, int) { return SlotSubheading, b.Slot }
func (b Paragraph) SlotRef() (SlotKind, int)  { return SlotParagraph, b.Slot }

var (
	_ SlotBlock = Heading{}
	_ SlotBlock = Subheading{}
	_ SlotBlock = Paragraph{}
	_ Block     = Filename{}
	_ Block     = Hunk{}
)
