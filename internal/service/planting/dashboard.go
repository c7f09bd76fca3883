package planting

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/plantio/internal/domain/models"
)

const (
	// DashboardTitle heads the record list.
	DashboardTitle = "🌱 Registros do Agricultor"
)

// Dashboard is everything a renderer needs to draw the current state.
type Dashboard struct {
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	MessageKind MessageKind             `json:"message_kind"`
	Records     []models.PlantingRecord `json:"records"`
	Lines       []string                `json:"lines"`
	Totals      models.Totals           `json:"totals"`
	AreaLine    string                  `json:"area_line"`
	ProfitLine  string                  `json:"profit_line"`
}

// RecordLine formats one list entry.
func RecordLine(rec models.PlantingRecord) string {
	return fmt.Sprintf("• %s %s | %s ha | Plantado em: %s | Lucro: R$ %s",
		models.CropEmoji(rec.Crop),
		rec.Crop,
		models.FormatArea(rec.AreaHectares),
		rec.DateText,
		models.FormatFixed2(rec.TotalProfit))
}

// AreaLine formats the total planted area.
func AreaLine(totals models.Totals) string {
	return fmt.Sprintf("📊 Área total plantada: %s hectares", models.FormatFixed2(totals.TotalArea))
}

// ProfitLine formats the estimated total profit.
func ProfitLine(totals models.Totals) string {
	return fmt.Sprintf("💰 Lucro total estimado: R$ %s", models.FormatFixed2(totals.TotalProfit))
}

// Text renders the dashboard as plain text, one element per line.
func (d Dashboard) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	if d.Message != "" {
		b.WriteString(d.Message)
		b.WriteString("\n")
	}
	for _, line := range d.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(d.AreaLine)
	b.WriteString("\n")
	b.WriteString(d.ProfitLine)
	b.WriteString("\n")
	return b.String()
}

func buildDashboard(message string, kind MessageKind, records []models.PlantingRecord) Dashboard {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, RecordLine(rec))
	}

	totals := models.Aggregate(records)

	return Dashboard{
		Title:       DashboardTitle,
		Message:     message,
		MessageKind: kind,
		Records:     records,
		Lines:       lines,
		Totals:      totals,
		AreaLine:    AreaLine(totals),
		ProfitLine:  ProfitLine(totals),
	}
}
