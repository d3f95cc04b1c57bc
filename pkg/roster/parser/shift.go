package parser

import (
	"strings"

	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Header is one shift-type column discovered in a day's header row.
type Header struct {
	Col   int
	Label string
}

// ParseShiftRow parses one shift: name from column A, time range from column B
// and one assignment per populated header column.
func ParseShiftRow(s *models.Sheet, row int, headers []Header) (*models.ShiftRecord, error) {
	nameCell := s.Cell(row, 0)
	if nameCell.IsNumber() {
		return nil, ErrDateBoundary
	}

	timeCell := s.Cell(row, 1)
	if timeCell.IsBlank() {
		return nil, ErrInvalidTimeRange
	}
	timeRange, ok := ParseTimeRange(timeCell.String())
	if !ok {
		return nil, ErrInvalidTimeRange
	}

	var assignments []models.Assignment
	for _, h := range headers {
		cell := s.Cell(row, h.Col)
		if cell.IsBlank() {
			continue
		}
		state := models.Requested
		if IsYellow(cell.Fill) {
			state = models.Assigned
		}
		assignments = append(assignments, models.Assignment{
			Type:   h.Label,
			Person: strings.TrimSpace(cell.String()),
			State:  state,
		})
	}

	if len(assignments) == 0 {
		return nil, ErrNoAssignments
	}

	return &models.ShiftRecord{
		Name:        strings.TrimSpace(nameCell.String()),
		Time:        timeRange,
		Assignments: assignments,
	}, nil
}
