// Package models defines data structures for roster extraction.
package models

import (
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is a missing or blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a numeric cell (including date serials).
	CellNumber
	// CellText is a string cell.
	CellText
)

// Cell is a single spreadsheet cell value plus its fill color.
type Cell struct {
	// Kind selects which of Number or Text is meaningful.
	Kind CellKind
	// Number is the numeric value when Kind is CellNumber.
	Number float64
	// Text is the string value when Kind is CellText.
	Text string
	// Fill is the pattern fill foreground color as hex (e.g. "FFFF00"), empty if none.
	Fill string
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// WithFill returns a copy of c carrying the given fill color.
func (c Cell) WithFill(color string) Cell {
	c.Fill = color
	return c
}

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber
}

// IsBlank reports whether the cell carries no usable value.
// Zero numbers and whitespace-only text count as blank.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellNumber:
		return c.Number == 0
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return true
	}
}

// IsEmpty reports whether the cell holds nothing at all. Unlike IsBlank,
// whitespace-only text is a value.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellNumber:
		return c.Number == 0
	case CellText:
		return c.Text == ""
	default:
		return true
	}
}

// String returns the cell value as text. Numbers use the shortest
// representation ("45572", "0.5").
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}
