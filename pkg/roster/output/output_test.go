package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

func sampleWeeks() []models.WeekRecord {
	monday := time.Date(2024, time.October, 7, 0, 0, 0, 0, time.UTC)
	return []models.WeekRecord{{
		Week:            monday,
		ParsedTimestamp: time.Date(2024, time.October, 9, 8, 0, 0, 0, time.UTC),
		Days: []models.DayRecord{{
			Day:  "Monday",
			Date: monday,
			Shifts: []models.ShiftRecord{{
				Name:        "Morning",
				Time:        models.TimeRange{Start: "08:00", End: "16:00"},
				Assignments: []models.Assignment{{Type: "Nurse", Person: "Alice", State: models.Assigned}},
			}},
		}},
	}}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = ToJSON(sampleWeeks(), true)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `"week": "07-10-2024"`)
	assert.Contains(t, string(data), `"assignType": "assigned"`)

	weeks, err := FromJSON(data)
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.True(t, weeks[0].Week.Equal(sampleWeeks()[0].Week))
	assert.Equal(t, sampleWeeks()[0].Days[0].Shifts, weeks[0].Days[0].Shifts)
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`[{"week":"2024-10-07"}]`))
	assert.Error(t, err)
}

func TestWriterPaths(t *testing.T) {
	w := &Writer{Dir: "out", HistoryDir: filepath.Join("out", "History"), BaseName: "Roster"}
	now := time.Date(2024, time.October, 9, 7, 3, 0, 0, time.UTC)

	assert.Equal(t, filepath.Join("out", "Roster.json"), w.CurrentPath())
	assert.Equal(t, filepath.Join("out", "History", "Roster_09-10-2024-07-03.json"), w.ArchivePath(now))
}

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: filepath.Join(dir, "out"), HistoryDir: filepath.Join(dir, "out", "History"), BaseName: "Roster"}
	now := time.Date(2024, time.October, 9, 7, 3, 0, 0, time.UTC)

	first, err := w.Write([]byte(`["first"]`), now)
	require.NoError(t, err)
	second, err := w.Write([]byte(`["second"]`), now.Add(time.Minute))
	require.NoError(t, err)

	// the current document is replaced, archives accumulate
	assert.Equal(t, first.CurrentPath, second.CurrentPath)
	assert.NotEqual(t, first.ArchivePath, second.ArchivePath)

	current, err := os.ReadFile(second.CurrentPath)
	require.NoError(t, err)
	assert.Equal(t, `["second"]`, string(current))

	archived, err := os.ReadFile(first.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, `["first"]`, string(archived))

	entries, err := os.ReadDir(w.HistoryDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestIsSpreadsheet(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"roster.xlsx", true},
		{"Roster.XLSX", true},
		{"macro.xlsm", true},
		{filepath.Join("dir", "roster.xlsx"), true},
		{"~$roster.xlsx", false},
		{"roster.tmp.xlsx", false},
		{"roster.xlsx.crdownload", false},
		{"roster.xls", false},
		{"roster.csv", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsSpreadsheet(tt.name), tt.name)
	}
}

func TestLatestSpreadsheet(t *testing.T) {
	dir := t.TempDir()

	_, err := LatestSpreadsheet(dir)
	assert.ErrorIs(t, err, ErrNoSpreadsheet)

	old := filepath.Join(dir, "old.xlsx")
	recent := filepath.Join(dir, "recent.xlsx")
	lock := filepath.Join(dir, "~$recent.xlsx")
	for _, p := range []string{old, recent, lock, filepath.Join(dir, "notes.txt")} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "newer.xlsx"), 0755))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, base, base))
	require.NoError(t, os.Chtimes(recent, base.Add(time.Minute), base.Add(time.Minute)))
	require.NoError(t, os.Chtimes(lock, base.Add(time.Hour), base.Add(time.Hour)))

	latest, err := LatestSpreadsheet(dir)
	require.NoError(t, err)
	assert.Equal(t, recent, latest)

	_, err = LatestSpreadsheet(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
