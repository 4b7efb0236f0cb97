package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultExportPath is where exports land when no path is configured.
const DefaultExportPath = "markdown/entry.md"

// ExportWriteError reports a failed export. The destination is left as it
// was before the attempt.
type ExportWriteError struct {
	Path string
	Err  error
}

func (e *ExportWriteError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportWriteError) Unwrap() error { return e.Err }

// MarkdownWriter writes the serialized document. With an output path the file
// is replaced atomically; otherwise the text goes to stdout.
type MarkdownWriter struct{}

// Write outputs the document as markdown.
func (w *MarkdownWriter) Write(report *DocumentReport, options OutputOptions) error {
	text := Serialize(report.Document)

	if options.OutputPath == "" {
		out, _, err := openOutputWriter(options)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, text)
		return err
	}

	return ExportFile(options.OutputPath, []byte(text))
}

// ExportFile writes data to path through a temporary file in the same
// directory followed by a rename. Missing parent directories are created.
func ExportFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &ExportWriteError{Path: path, Err: err}
	}
	return nil
}
