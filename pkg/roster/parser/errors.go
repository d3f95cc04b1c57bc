package parser

import "errors"

// Soft-skip reasons. None of them aborts a parse; the affected unit is left out.
var (
	ErrAnchorMissing     = errors.New("week anchor cell is empty")
	ErrAnchorUnparseable = errors.New("week anchor cell is not a date")
	ErrNotDateCell       = errors.New("day block does not start with a date serial")
	ErrNoHeaderRow       = errors.New("date row is not followed by a header row")
	ErrNoHeaderColumns   = errors.New("header row has no shift-type columns")
	ErrEmptyDay          = errors.New("day block has no shifts")
	ErrDateBoundary      = errors.New("row starts the next day block")
	ErrInvalidTimeRange  = errors.New("shift time range is missing or malformed")
	ErrNoAssignments     = errors.New("shift row has no assignments")
)
