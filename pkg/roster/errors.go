package roster

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheets indicates the workbook contains no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrNoWriter indicates Run was called without an output writer.
var ErrNoWriter = errors.New("no output writer configured")

// RunError represents a failure in one stage of a parse run.
type RunError struct {
	Path  string
	Stage string // "read", "parse", "serialize", "write"
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("roster run failed for %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError.
func NewRunError(path, stage string, err error) *RunError {
	return &RunError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
