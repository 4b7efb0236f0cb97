package document

import "fmt"

// SlotRangeError reports an edit addressed past the end of a slot store.
type SlotRangeError struct {
	Kind  SlotKind
	Index int
	Len   int
}

func (e *SlotRangeError) Error() string {
	return fmt.Sprintf("%s slot %d out of range (have %d)", e.Kind, e.Index, e.Len)
}

// SlotStore is an append-only list of editable texts. Indices handed out by
// Append stay valid for the life of the store.
type SlotStore struct {
	kind  SlotKind
	texts []string
}

// Append stores text and returns its index.
func (s *SlotStore) Append(text string) int {
	s.texts = append(s.texts, text)
	return len(s.texts) - 1
}

// Text returns the text at idx.
func (s *SlotStore) Text(idx int) (string, bool) {
	if idx < 0 || idx >= len(s.texts) {
		return "", false
	}
	return s.texts[idx], true
}

// Set replaces the text at idx.
func (s *SlotStore) Set(idx int, text string) error {
	if idx < 0 || idx >= len(s.texts) {
		return &SlotRangeError{Kind: s.kind, Index: idx, Len: len(s.texts)}
	}
	s.texts[idx] = text
	return nil
}

// Len returns the number of slots allocated.
func (s *SlotStore) Len() int {
	return len(s.texts)
}

// Texts returns a copy of every slot's text.
func (s *SlotStore) Texts() []string {
	return append([]string(nil), s.texts...)
}
