package models

// Workbook is an ordered collection of sheets read from one file.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// Sheets holds the sheets in tab order.
	Sheets []Sheet
}
