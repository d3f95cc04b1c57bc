// Package parser interprets roster worksheets into day and shift records.
package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Config holds the layout heuristics used while scanning a roster sheet.
type Config struct {
	// AnchorCell is the A1 reference of the cell holding a date in the roster week.
	AnchorCell string
	// DateSerialMin and DateSerialMax bound (exclusively) the numeric values
	// in column A that start a day block.
	DateSerialMin float64
	DateSerialMax float64
	// HeaderLabel is the column A text (case-insensitive) of a day's header row.
	HeaderLabel string
	// FirstTypeColumn is the 0-based column of the first shift-type header.
	FirstTypeColumn int
	// LookaheadRows is how far past a blank row to look for the next date.
	LookaheadRows int
	// MaxBlockRows stops a day block that runs past this many rows below its header.
	MaxBlockRows int
}

// Named defaults for the layout heuristics.
const (
	DefaultAnchorCell      = "A3"
	DefaultDateSerialMin   = 40000
	DefaultDateSerialMax   = 50000
	DefaultHeaderLabel     = "shift"
	DefaultFirstTypeColumn = 2
	LookaheadRows          = 3
	MaxBlockRows           = 10
)

// DefaultConfig returns the layout heuristics matching the published roster template.
func DefaultConfig() Config {
	return Config{
		AnchorCell:      DefaultAnchorCell,
		DateSerialMin:   DefaultDateSerialMin,
		DateSerialMax:   DefaultDateSerialMax,
		HeaderLabel:     DefaultHeaderLabel,
		FirstTypeColumn: DefaultFirstTypeColumn,
		LookaheadRows:   LookaheadRows,
		MaxBlockRows:    MaxBlockRows,
	}
}

// Validate checks that the config describes a usable layout.
func (c Config) Validate() error {
	if _, _, err := c.anchorCoordinates(); err != nil {
		return err
	}
	if c.DateSerialMin >= c.DateSerialMax {
		return fmt.Errorf("date serial window [%v, %v] is empty", c.DateSerialMin, c.DateSerialMax)
	}
	if c.HeaderLabel == "" {
		return fmt.Errorf("header label must not be empty")
	}
	if c.FirstTypeColumn < 2 {
		return fmt.Errorf("first type column must be at least 2, got %d", c.FirstTypeColumn)
	}
	if c.LookaheadRows < 0 || c.MaxBlockRows < 0 {
		return fmt.Errorf("lookahead and block limits must not be negative")
	}
	return nil
}

// anchorCoordinates converts AnchorCell into 0-based row and column.
func (c Config) anchorCoordinates() (row, col int, err error) {
	col, row, err = excelize.CellNameToCoordinates(c.AnchorCell)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid anchor cell %q: %w", c.AnchorCell, err)
	}
	return row - 1, col - 1, nil
}
