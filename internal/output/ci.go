package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CIWriter writes NDJSON (one JSON object per line) for CI pipelines.
type CIWriter struct{}

// CISummary is the first line of CI output.
type CISummary struct {
	Type         string `json:"type"`
	Commit       string `json:"commit"`
	Parent       string `json:"parent"`
	TotalFiles   int    `json:"totalFiles"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
	Blocks       int    `json:"blocks"`
}

// CIFileEntry is one changed file.
type CIFileEntry struct {
	Type         string `json:"type"`
	Path         string `json:"path"`
	Hunks        int    `json:"hunks"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
}

// Write outputs a summary line followed by one line per file.
func (w *CIWriter) Write(report *DocumentReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	doc := report.Document
	stats := summarizeFiles(doc)

	summary := CISummary{
		Type:       "summary",
		Commit:     doc.Commit.SHA,
		Parent:     doc.Parent.SHA,
		TotalFiles: len(stats),
		Blocks:     doc.Len(),
	}
	for _, s := range stats {
		summary.LinesAdded += s.Added
		summary.LinesRemoved += s.Removed
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, s := range stats {
		entry := CIFileEntry{
			Type:         "file",
			Path:         s.Path,
			Hunks:        s.Hunks,
			LinesAdded:   s.Added,
			LinesRemoved: s.Removed,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
