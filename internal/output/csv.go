package output

import (
	"encoding/csv"
	"fmt"
)

// CSVWriter writes per-file change counts as CSV.
type CSVWriter struct{}

// Write outputs one row per changed file.
func (w *CSVWriter) Write(report *DocumentReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"Commit", "Path", "Hunks", "LinesAdded", "LinesRemoved"}); err != nil {
		return err
	}

	for _, s := range summarizeFiles(report.Document) {
		row := []string{
			report.Document.Commit.SHA,
			s.Path,
			fmt.Sprintf("%d", s.Hunks),
			fmt.Sprintf("%d", s.Added),
			fmt.Sprintf("%d", s.Removed),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
