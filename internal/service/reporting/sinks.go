package reporting

import (
	"context"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/repository/mongodb"
	"github.com/mamadbah2/plantio/internal/repository/sheets"
)

// SheetsSink mirrors the export rows into a spreadsheet range.
type SheetsSink struct {
	repo       sheets.Repository
	sheetRange string
}

// NewSheetsSink returns a sink writing into sheetRange.
func NewSheetsSink(repo sheets.Repository, sheetRange string) *SheetsSink {
	return &SheetsSink{repo: repo, sheetRange: sheetRange}
}

// Name identifies the sink in logs and publish responses.
func (s *SheetsSink) Name() string { return "sheets" }

// Publish overwrites the configured range with the header and record rows.
func (s *SheetsSink) Publish(ctx context.Context, snap Snapshot) error {
	return s.repo.ReplaceRange(ctx, s.sheetRange, snap.Rows)
}

// ArchiveSink stores each export as a MongoDB document.
type ArchiveSink struct {
	repo mongodb.Repository
}

// NewArchiveSink returns a sink archiving into repo.
func NewArchiveSink(repo mongodb.Repository) *ArchiveSink {
	return &ArchiveSink{repo: repo}
}

// Name identifies the sink in logs and publish responses.
func (s *ArchiveSink) Name() string { return "mongodb" }

// Publish inserts one archive document per call; earlier exports are kept.
func (s *ArchiveSink) Publish(ctx context.Context, snap Snapshot) error {
	return s.repo.SaveExport(ctx, models.ExportArchive{
		FileName:    snap.FileName,
		Content:     snap.CSV,
		RecordCount: len(snap.Records),
		TotalArea:   snap.Totals.TotalArea,
		TotalProfit: snap.Totals.TotalProfit,
		CreatedAt:   snap.GeneratedAt.UTC(),
	})
}
