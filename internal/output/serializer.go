package output

import (
	"fmt"
	"strings"

	"github.com/mihirlaud/conseil/internal/document"
)

// Serialize renders doc as markdown. Editable blocks read their current slot
// text, so the result reflects every edit made so far. Serialize does not
// modify doc.
func Serialize(doc *document.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks() {
		writeBlock(&sb, doc, b)
	}
	return sb.String()
}

func writeBlock(sb *strings.Builder, doc *document.Document, b document.Block) {
	switch b := b.(type) {
	case document.Heading:
		sb.WriteString("# ")
		sb.WriteString(doc.Text(b))
		sb.WriteByte('\n')
	case document.Subheading:
		sb.WriteString("## ")
		sb.WriteString(doc.Text(b))
		sb.WriteByte('\n')
	case document.Paragraph:
		sb.WriteString(doc.Text(b))
		sb.WriteByte('\n')
	case document.Filename:
		sb.WriteString("File: `")
		sb.WriteString(b.Path)
		sb.WriteString("`\n")
	case document.Hunk:
		sb.WriteString("```diff\n")
		for _, l := range b.Lines {
			sb.WriteString(l.Text)
		}
		sb.WriteString("```\n")
	default:
		panic(fmt.Sprintf("output: unhandled block type %T", b))
	}
}
