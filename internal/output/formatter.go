package output

import (
	"io"
	"time"

	"github.com/mihirlaud/conseil/internal/document"
)

// Compile-time interface conformance checks.
var (
	_ DocumentWriter = (*ConsoleWriter)(nil)
	_ DocumentWriter = (*JSONWriter)(nil)
	_ DocumentWriter = (*CSVWriter)(nil)
	_ DocumentWriter = (*MarkdownWriter)(nil)
	_ DocumentWriter = (*CIWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// Formats lists the accepted --format values.
var Formats = []OutputFormat{FormatMarkdown, FormatConsole, FormatJSON, FormatCSV, FormatCI}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	// Stdout receives output when OutputPath is empty; nil means os.Stdout.
	Stdout io.Writer
}

// DocumentReport is a built document plus where it came from.
type DocumentReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Document    *document.Document
}

// DocumentWriter writes a document report in one format.
type DocumentWriter interface {
	Write(report *DocumentReport, options OutputOptions) error
}

// NewDocumentWriter creates a writer for the specified format.
func NewDocumentWriter(format OutputFormat) DocumentWriter {
	switch format {
	case FormatJSON:
		return &JSONWriter{}
	case FormatCSV:
		return &CSVWriter{}
	case FormatMarkdown:
		return &MarkdownWriter{}
	case FormatCI:
		return &CIWriter{}
	default:
		return &ConsoleWriter{}
	}
}
