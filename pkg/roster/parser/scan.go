package parser

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// FindDateRows returns the 0-based rows whose column A holds a number strictly
// inside the configured date-serial window.
func FindDateRows(s *models.Sheet, cfg Config) []int {
	var rows []int
	lastRow := s.LastRow()
	for row := 0; row <= lastRow; row++ {
		cell := s.Cell(row, 0)
		if !cell.IsNumber() {
			continue
		}
		if cell.Number > cfg.DateSerialMin && cell.Number < cfg.DateSerialMax {
			rows = append(rows, row)
		}
	}
	return rows
}

// ParseSheet resolves the week of a roster sheet and parses every day block
// in it. Days that fail to parse are skipped; the returned slice may be empty.
func ParseSheet(s *models.Sheet, cfg Config) (time.Time, []models.DayRecord, error) {
	week, err := ResolveWeekAnchor(s, cfg)
	if err != nil {
		return time.Time{}, nil, err
	}

	log.Debug().
		Str("sheet", s.Name).
		Str("week", week.Format(models.DateLayout)).
		Msg("Resolved week start")

	var days []models.DayRecord
	for _, row := range FindDateRows(s, cfg) {
		log.Debug().
			Str("sheet", s.Name).
			Int("row", row+1).
			Float64("serial", s.Cell(row, 0).Number).
			Msg("Found date row")

		day, err := ParseDayBlock(s, row, cfg)
		if err != nil {
			log.Debug().
				Str("sheet", s.Name).
				Int("row", row+1).
				Err(err).
				Msg("Skipping day block")
			continue
		}

		log.Debug().
			Str("sheet", s.Name).
			Str("day", day.Day).
			Int("shifts", len(day.Shifts)).
			Msg("Parsed day")
		days = append(days, *day)
	}

	return week, days, nil
}
