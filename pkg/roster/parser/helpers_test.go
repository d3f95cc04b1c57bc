package parser

import "github.com/ukaji3/roster-go/pkg/roster/models"

var blank = models.Cell{}

func txt(s string) models.Cell { return models.TextCell(s) }

func num(v float64) models.Cell { return models.NumberCell(v) }

func yellow(s string) models.Cell { return models.TextCell(s).WithFill("FFFFFF00") }

func row(cells ...models.Cell) []models.Cell { return cells }

func newSheet(name string, rows ...[]models.Cell) *models.Sheet {
	return &models.Sheet{Name: name, Rows: rows}
}
