package parser

import (
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// ResolveWeekAnchor reads the anchor cell and returns the Monday of its week.
func ResolveWeekAnchor(s *models.Sheet, cfg Config) (time.Time, error) {
	row, col, err := cfg.anchorCoordinates()
	if err != nil {
		return time.Time{}, err
	}

	cell := s.Cell(row, col)
	if cell.IsBlank() {
		return time.Time{}, ErrAnchorMissing
	}

	var date time.Time
	switch cell.Kind {
	case models.CellNumber:
		date = SerialToTime(cell.Number)
	case models.CellText:
		parsed, ok := ParseTextDate(cell.Text)
		if !ok {
			return time.Time{}, ErrAnchorUnparseable
		}
		date = parsed
	}

	return MondayOf(date), nil
}
