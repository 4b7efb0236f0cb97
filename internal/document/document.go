package document

import (
	"fmt"

	"github.com/mihirlaud/conseil/internal/diff"
	"github.com/mihirlaud/conseil/internal/git"
)

// Document is an ordered block sequence plus the slot stores its editable
// blocks point into.
type Document struct {
	// Commit and Parent identify the diff the document was built from.
	Commit git.CommitInfo
	Parent git.CommitInfo

	blocks []Block
	stores [3]SlotStore
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	d := &Document{}
	for k := range d.stores {
		d.stores[k].kind = SlotKind(k)
	}
	return d
}

// Blocks returns the block sequence. Callers must not modify it.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Store returns the slot store for kind.
func (d *Document) Store(kind SlotKind) *SlotStore {
	if kind < SlotHeading || kind > SlotParagraph {
		panic(fmt.Sprintf("document: invalid slot kind %d", int(kind)))
	}
	return &d.stores[kind]
}

// Text returns the current text of an editable block.
func (d *Document) Text(b SlotBlock) string {
	kind, idx := b.SlotRef()
	text, ok := d.Store(kind).Text(idx)
	if !ok {
		panic(fmt.Sprintf("document: %s block references missing slot %d", kind, idx))
	}
	return text
}

// SetText edits a slot in place. Blocks referencing it see the new text.
func (d *Document) SetText(kind SlotKind, idx int, text string) error {
	if kind < SlotHeading || kind > SlotParagraph {
		return fmt.Errorf("invalid slot kind %d", int(kind))
	}
	return d.stores[kind].Set(idx, text)
}

// Hunks returns the hunks embedded in the document, in order.
func (d *Document) Hunks() []diff.Hunk {
	var hunks []diff.Hunk
	for _, b := range d.blocks {
		if h, ok := b.(Hunk); ok {
			hunks = append(hunks, h.Hunk)
		}
	}
	return hunks
}

// addSlot allocates a slot with default text "<Kind> <n>" and appends the
// block that references it.
func (d *Document) addSlot(kind SlotKind) {
	store := &d.stores[kind]
	idx := store.Append(fmt.Sprintf("%s %d", kind, store.Len()+1))

	switch kind {
	case SlotHeading:
		d.blocks = append(d.blocks, Heading{Slot: idx})
	case SlotSubheading:
		d.blocks = append(d.blocks, Subheading{Slot: idx})
	case SlotParagraph:
		d.blocks = append(d.blocks, Paragraph{Slot: idx})
	}
}

func (d *Document) append(b Block) {
	d.blocks = append(d.blocks, b)
}
