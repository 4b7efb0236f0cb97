package diff

import "fmt"

// LineDecodeError reports a diff line whose content is not valid UTF-8 text.
type LineDecodeError struct {
	Path   string
	Origin Origin
	Len    int
}

func (e *LineDecodeError) Error() string {
	return fmt.Sprintf("undecodable %q line in %s (%d bytes)", rune(e.Origin), e.Path, e.Len)
}
