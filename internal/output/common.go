package output

import (
	"io"
	"os"

	"github.com/mihirlaud/conseil/internal/document"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

func openOutputWriter(options OutputOptions) (io.Writer, *os.File, error) {
	if options.OutputPath == "" {
		if options.Stdout != nil {
			return options.Stdout, nil, nil
		}
		return os.Stdout, nil, nil
	}
	file, err := os.Create(options.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// fileStat summarizes the hunks of one path.
type fileStat struct {
	Path    string
	Hunks   int
	Added   int
	Removed int
}

// summarizeFiles aggregates hunk counts per path in first-seen order.
func summarizeFiles(doc *document.Document) []fileStat {
	var stats []fileStat
	index := make(map[string]int)
	for _, h := range doc.Hunks() {
		i, ok := index[h.Path]
		if !ok {
			i = len(stats)
			index[h.Path] = i
			stats = append(stats, fileStat{Path: h.Path})
		}
		stats[i].Hunks++
		stats[i].Added += h.Added()
		stats[i].Removed += h.Removed()
	}
	return stats
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
