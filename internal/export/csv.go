// Package export renders planting records in the spreadsheet-friendly CSV
// layout offered for download.
//
// Fields are joined with bare commas and never quoted, so a crop name that
// contains a comma shifts the remaining columns of its row. Consumers that
// need strict CSV should read the rows from Rows instead.
package export

import (
	"strings"

	"github.com/mamadbah2/plantio/internal/domain/models"
)

const (
	// Header is the literal first line of every export.
	Header = "Cultura,Área (ha),Data,Lucro (R$)"
	// FileName is the name offered to the browser for the download.
	FileName = "registros_agricolas.csv"
	// ContentType is served with the download.
	ContentType = "text/csv; charset=utf-8"

	lineSeparator = "\n"
)

// HeaderRow is Header split into its columns.
var HeaderRow = []string{"Cultura", "Área (ha)", "Data", "Lucro (R$)"}

// Rows returns the header followed by one row per record, in the given order.
func Rows(records []models.PlantingRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, HeaderRow)
	for _, rec := range records {
		rows = append(rows, recordRow(rec))
	}
	return rows
}

// ToCSV renders the records as CSV text without a trailing newline.
func ToCSV(records []models.PlantingRecord) string {
	lines := make([]string, 0, len(records)+1)
	for _, row := range Rows(records) {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, lineSeparator)
}

func recordRow(rec models.PlantingRecord) []string {
	return []string{
		rec.Crop,
		models.FormatArea(rec.AreaHectares),
		rec.DateText,
		models.FormatFixed2(rec.TotalProfit),
	}
}
