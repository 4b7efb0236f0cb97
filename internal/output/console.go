package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mihirlaud/conseil/internal/diff"
	"github.com/mihirlaud/conseil/internal/document"
)

// ConsoleWriter previews a document in the terminal.
type ConsoleWriter struct{}

// Write outputs a colored preview of the document.
func (w *ConsoleWriter) Write(report *DocumentReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	doc := report.Document
	title := color.New(color.FgGreen, color.Bold)
	title.Fprintln(out, "Document Preview")
	if report.RepoPath != "" {
		fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	}
	if doc.Commit.SHA != "" {
		fmt.Fprintf(out, "Commit: %s %s (parent %s)\n", shortSHA(doc.Commit.SHA), doc.Commit.Subject(), shortSHA(doc.Parent.SHA))
	}
	fmt.Fprintf(out, "Files changed: %d\n\n", len(summarizeFiles(doc)))

	bold := color.New(color.Bold)
	for _, b := range doc.Blocks() {
		switch b := b.(type) {
		case document.Heading:
			bold.Fprintf(out, "# %s\n", doc.Text(b))
		case document.Subheading:
			bold.Fprintf(out, "## %s\n", doc.Text(b))
		case document.Paragraph:
			fmt.Fprintln(out, doc.Text(b))
		case document.Filename:
			fmt.Fprintf(out, "File: %s\n", b.Path)
		case document.Hunk:
			writeConsoleHunk(out, b.Hunk)
		}
	}

	return nil
}

func writeConsoleHunk(out io.Writer, h diff.Hunk) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)

	for _, l := range h.Lines {
		text := strings.TrimSuffix(l.Text, "\n")
		switch l.Kind {
		case diff.EditAdded:
			added.Fprintln(out, text)
		case diff.EditRemoved:
			removed.Fprintln(out, text)
		default:
			fmt.Fprintln(out, text)
		}
	}
}
