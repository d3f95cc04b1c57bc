package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/ukaji3/roster-go/pkg/roster/output"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
)

// Parse extracts one week record per roster sheet in wb. Sheets, days and
// shifts that do not parse are left out. An empty result means no roster
// data was found; it is not an error.
func Parse(wb *models.Workbook, opts Options) ([]models.WeekRecord, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrNoSheets
	}
	if err := opts.Parser.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parser config: %w", err)
	}

	// Pick roster sheets before touching any cells
	var rosterSheets []*models.Sheet
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		if !parser.IsRosterSheet(sheet.Name) {
			log.Debug().Str("sheet", sheet.Name).Msg("Skipping non-roster sheet")
			continue
		}
		rosterSheets = append(rosterSheets, sheet)
	}

	weeks := []models.WeekRecord{}
	for _, sheet := range rosterSheets {
		log.Debug().Str("sheet", sheet.Name).Msg("Processing roster sheet")

		week, days, err := parser.ParseSheet(sheet, opts.Parser)
		if err != nil {
			log.Info().Str("sheet", sheet.Name).Err(err).Msg("Skipping roster sheet")
			continue
		}
		if len(days) == 0 {
			log.Info().Str("sheet", sheet.Name).Msg("No days found in roster sheet")
			continue
		}

		weeks = append(weeks, models.WeekRecord{
			Week:            week,
			ParsedTimestamp: opts.now().UTC(),
			Days:            days,
		})
		log.Info().
			Str("sheet", sheet.Name).
			Str("week", week.Format(models.DateLayout)).
			Int("days", len(days)).
			Msg("Parsed roster sheet")
	}

	return weeks, nil
}

// ParseFile reads the workbook at path and parses it.
func ParseFile(path string, opts Options) ([]models.WeekRecord, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := parser.ReadWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return Parse(wb, opts)
}

// RunResult describes the outcome of Run.
type RunResult struct {
	// Weeks holds the parsed weeks; empty when no roster data was found.
	Weeks []models.WeekRecord
	// Output reports the written files. Zero when nothing was written.
	Output output.WriteResult
}

// Run parses the workbook at path and, if any week was found, writes the
// current document and an archival copy through opts.Writer.
func Run(path string, opts Options) (*RunResult, error) {
	if opts.Writer == nil {
		return nil, ErrNoWriter
	}

	log.Info().Str("path", path).Msg("Parsing roster workbook")
	weeks, err := ParseFile(path, opts)
	if err != nil {
		return nil, NewRunError(path, "parse", err)
	}

	result := &RunResult{Weeks: weeks}
	if len(weeks) == 0 {
		log.Info().Str("path", path).Msg("No roster data found in the workbook")
		return result, nil
	}

	data, err := output.ToJSON(weeks, opts.Pretty)
	if err != nil {
		return nil, NewRunError(path, "serialize", err)
	}

	written, err := opts.Writer.Write(data, opts.now())
	if err != nil {
		return nil, NewRunError(path, "write", err)
	}
	result.Output = written

	log.Info().Int("weeks", len(weeks)).Msg("Successfully parsed roster")
	return result, nil
}
