package output

import (
	"encoding/json"
	"fmt"

	"github.com/mihirlaud/conseil/internal/document"
)

// JSONWriter writes the document structure as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a document.
type JSONReport struct {
	RepoPath    string      `json:"repo"`
	GeneratedAt string      `json:"generatedAt"`
	Commit      *JSONCommit `json:"commit,omitempty"`
	Parent      *JSONCommit `json:"parent,omitempty"`
	Blocks      []JSONBlock `json:"blocks"`
	Markdown    string      `json:"markdown"`
}

// JSONCommit identifies one side of the diff.
type JSONCommit struct {
	SHA     string `json:"sha"`
	Subject string `json:"subject"`
	Author  string `json:"author,omitempty"`
	When    string `json:"when,omitempty"`
}

// JSONBlock is one block. Slot and Text are set for editable kinds, Path for
// filename and hunk blocks, Lines for hunks.
type JSONBlock struct {
	Kind  string         `json:"kind"`
	Slot  *int           `json:"slot,omitempty"`
	Text  string         `json:"text,omitempty"`
	Path  string         `json:"path,omitempty"`
	Lines []JSONHunkLine `json:"lines,omitempty"`
}

// JSONHunkLine is a rendered diff line with its edit kind.
type JSONHunkLine struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

// Write outputs the document as indented JSON.
func (w *JSONWriter) Write(report *DocumentReport, options OutputOptions) error {
	doc := report.Document

	jsonReport := JSONReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt.Format(reportDateTimeLayout),
		Blocks:      make([]JSONBlock, 0, doc.Len()),
		Markdown:    Serialize(doc),
	}
	if doc.Commit.SHA != "" {
		jsonReport.Commit = &JSONCommit{
			SHA:     doc.Commit.SHA,
			Subject: doc.Commit.Subject(),
			Author:  doc.Commit.Author.Name,
			When:    doc.Commit.When.Format(reportDateTimeLayout),
		}
	}
	if doc.Parent.SHA != "" {
		jsonReport.Parent = &JSONCommit{SHA: doc.Parent.SHA, Subject: doc.Parent.Subject()}
	}

	for _, b := range doc.Blocks() {
		jsonReport.Blocks = append(jsonReport.Blocks, toJSONBlock(doc, b))
	}

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func toJSONBlock(doc *document.Document, b document.Block) JSONBlock {
	switch b := b.(type) {
	case document.SlotBlock:
		kind, idx := b.SlotRef()
		return JSONBlock{Kind: kind.String(), Slot: &idx, Text: doc.Text(b)}
	case document.Filename:
		return JSONBlock{Kind: "Filename", Path: b.Path}
	case document.Hunk:
		lines := make([]JSONHunkLine, len(b.Lines))
		for i, l := range b.Lines {
			lines[i] = JSONHunkLine{Text: l.Text, Kind: l.Kind.String()}
		}
		return JSONBlock{Kind: "Hunk", Path: b.Path, Lines: lines}
	default:
		panic(fmt.Sprintf("output: unhandled block type %T", b))
	}
}
