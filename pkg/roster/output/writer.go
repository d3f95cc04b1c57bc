package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// ArchiveSuffixLayout formats the timestamp appended to archived documents.
const ArchiveSuffixLayout = "_02-01-2006-15-04"

// Writer stores the current roster document and a dated archival copy.
type Writer struct {
	// Dir receives the current document.
	Dir string
	// HistoryDir receives archival copies.
	HistoryDir string
	// BaseName is the document name without extension (e.g. "Roster").
	BaseName string
}

// WriteResult reports where a document was written.
type WriteResult struct {
	CurrentPath string
	ArchivePath string
}

// CurrentPath returns the fixed path of the current document.
func (w *Writer) CurrentPath() string {
	return filepath.Join(w.Dir, w.BaseName+".json")
}

// ArchivePath returns the archival path for a document written at now.
func (w *Writer) ArchivePath(now time.Time) string {
	return filepath.Join(w.HistoryDir, w.BaseName+now.Format(ArchiveSuffixLayout)+".json")
}

// Write stores data as the current document and as an archival copy.
func (w *Writer) Write(data []byte, now time.Time) (WriteResult, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return WriteResult{}, fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.MkdirAll(w.HistoryDir, 0755); err != nil {
		return WriteResult{}, fmt.Errorf("failed to create history dir: %w", err)
	}

	result := WriteResult{
		CurrentPath: w.CurrentPath(),
		ArchivePath: w.ArchivePath(now),
	}

	if err := os.WriteFile(result.CurrentPath, data, 0644); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write current document: %w", err)
	}
	log.Info().Str("path", result.CurrentPath).Msg("Written roster JSON")

	if err := os.WriteFile(result.ArchivePath, data, 0644); err != nil {
		return WriteResult{}, fmt.Errorf("failed to write archive document: %w", err)
	}
	log.Info().Str("path", result.ArchivePath).Msg("Written roster JSON to history")

	return result, nil
}
