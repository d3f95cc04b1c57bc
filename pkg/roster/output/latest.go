package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoSpreadsheet indicates a folder holds no candidate roster file.
var ErrNoSpreadsheet = errors.New("no spreadsheet found")

// IsSpreadsheet reports whether name looks like a finished xlsx download.
// Office lock files ("~$...") and partial downloads are rejected.
func IsSpreadsheet(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, "~") || strings.Contains(base, ".tmp") || strings.HasSuffix(base, ".crdownload") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	return ext == ".xlsx" || ext == ".xlsm"
}

// LatestSpreadsheet returns the most recently modified spreadsheet in dir.
func LatestSpreadsheet(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read roster folder: %w", err)
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		if entry.IsDir() || !IsSpreadsheet(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest = filepath.Join(dir, entry.Name())
			latestTime = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w in %s", ErrNoSpreadsheet, dir)
	}
	return latest, nil
}
