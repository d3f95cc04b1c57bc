package parser

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/roster-go/pkg/roster/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook opens an xlsx file and materializes every sheet's values and
// fill colors.
func ReadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFile(f, filepath.Base(path))
}

// ReadFile materializes an already opened workbook.
func ReadFile(f *excelize.File, name string) (*models.Workbook, error) {
	wb := &models.Workbook{Name: name}
	styles := make(styleCache)

	for _, sheetName := range f.GetSheetList() {
		sheet, err := readSheet(f, sheetName, styles)
		if err != nil {
			// Keep the sheet so callers still see it; it just has no rows.
			log.Warn().Str("sheet", sheetName).Err(err).Msg("Failed to read sheet cells")
			sheet = models.Sheet{Name: sheetName}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// ReadSheet extracts cell values and fill colors from a sheet.
// Values are read unformatted so date cells keep their serial number.
func ReadSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	return readSheet(f, sheetName, make(styleCache))
}

func readSheet(f *excelize.File, sheetName string, styles styleCache) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{Name: sheetName, Rows: make([][]models.Cell, len(rows))}
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return models.Sheet{}, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return models.Sheet{}, err
			}
			cell := parseValue(cellValue, cellType)
			cell.Fill = styles.fill(f, sheetName, cellName)
			cells[colIdx] = cell
		}
		sheet.Rows[rowIdx] = cells
	}

	return sheet, nil
}

// parseValue turns a raw cell string into a Cell. String-typed cells stay
// text even when they look numeric; everything else that parses as a float
// is a number.
func parseValue(s string, cellType excelize.CellType) models.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeBool, excelize.CellTypeError:
		return models.TextCell(s)
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return models.NumberCell(TimeToSerial(t))
		}
		return models.TextCell(s)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberCell(f)
	}
	return models.TextCell(s)
}

// styleCache remembers the fill color of each style index.
type styleCache map[int]string

func (c styleCache) fill(f *excelize.File, sheetName, cellName string) string {
	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return ""
	}
	if color, ok := c[styleID]; ok {
		return color
	}

	color := ""
	style, err := f.GetStyle(styleID)
	if err == nil && style != nil && style.Fill.Type == "pattern" && len(style.Fill.Color) > 0 {
		color = style.Fill.Color[0]
	}
	c[styleID] = color
	return color
}
