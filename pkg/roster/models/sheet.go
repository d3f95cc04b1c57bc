package models

// Sheet is a fully materialized worksheet.
type Sheet struct {
	// Name is the sheet tab name.
	Name string
	// Rows holds cells by 0-based row then column index. Rows may be ragged.
	Rows [][]Cell
}

// Cell returns the cell at the 0-based row and column, or an empty cell
// when the coordinates fall outside the stored data.
func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || col < 0 || row >= len(s.Rows) {
		return Cell{}
	}
	r := s.Rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// LastRow returns the 0-based index of the last row holding a non-empty cell,
// or -1 for an empty sheet.
func (s *Sheet) LastRow() int {
	for row := len(s.Rows) - 1; row >= 0; row-- {
		for _, c := range s.Rows[row] {
			if c.Kind != CellEmpty {
				return row
			}
		}
	}
	return -1
}

// LastCol returns the 0-based index of the right-most non-empty cell across
// all rows, or -1 for an empty sheet.
func (s *Sheet) LastCol() int {
	last := -1
	for _, r := range s.Rows {
		for col := len(r) - 1; col > last; col-- {
			if r[col].Kind != CellEmpty {
				last = col
				break
			}
		}
	}
	return last
}
