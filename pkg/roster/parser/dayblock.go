package parser

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// ParseDayBlock parses the day whose date serial sits in column A of dateRow.
// The next row must be the header row; shift rows follow until a blank
// stretch leads into the next date, a date row is reached, or the block runs
// past cfg.MaxBlockRows.
func ParseDayBlock(s *models.Sheet, dateRow int, cfg Config) (*models.DayRecord, error) {
	dateCell := s.Cell(dateRow, 0)
	if !dateCell.IsNumber() || dateCell.IsBlank() {
		return nil, ErrNotDateCell
	}
	date := DateOnly(SerialToTime(dateCell.Number))

	headerRow := dateRow + 1
	if !strings.EqualFold(s.Cell(headerRow, 0).String(), cfg.HeaderLabel) {
		return nil, ErrNoHeaderRow
	}

	headers := readHeaders(s, headerRow, cfg.FirstTypeColumn)
	if len(headers) == 0 {
		return nil, ErrNoHeaderColumns
	}

	var shifts []models.ShiftRecord
	lastRow := s.LastRow()

scan:
	for row := headerRow + 1; row <= lastRow; row++ {
		if s.Cell(row, 0).IsEmpty() {
			if dateWithin(s, row, cfg.LookaheadRows) || row-headerRow > cfg.MaxBlockRows {
				break
			}
			continue
		}

		shift, err := ParseShiftRow(s, row, headers)
		switch {
		case errors.Is(err, ErrDateBoundary):
			break scan
		case err != nil:
			log.Debug().
				Str("sheet", s.Name).
				Int("row", row+1).
				Err(err).
				Msg("Skipping shift row")
		default:
			shifts = append(shifts, *shift)
		}
	}

	if len(shifts) == 0 {
		return nil, ErrEmptyDay
	}

	return &models.DayRecord{
		Day:    date.Weekday().String(),
		Date:   date,
		Shifts: shifts,
	}, nil
}

// readHeaders collects the non-empty header cells from firstCol to the
// sheet's last used column.
func readHeaders(s *models.Sheet, headerRow, firstCol int) []Header {
	var headers []Header
	lastCol := s.LastCol()
	for col := firstCol; col <= lastCol; col++ {
		cell := s.Cell(headerRow, col)
		if cell.IsEmpty() {
			continue
		}
		headers = append(headers, Header{Col: col, Label: cell.String()})
	}
	return headers
}

// dateWithin reports whether any of the n rows after row holds a number in
// column A, meaning the next day block starts shortly.
func dateWithin(s *models.Sheet, row, n int) bool {
	for i := 1; i <= n; i++ {
		cell := s.Cell(row+i, 0)
		if cell.IsNumber() && !cell.IsBlank() {
			return true
		}
	}
	return false
}
