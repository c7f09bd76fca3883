package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/export"
	"github.com/mamadbah2/plantio/internal/service/planting"
)

type staticSource []models.PlantingRecord

func (s staticSource) Records() []models.PlantingRecord { return s }

type fakeSink struct {
	name  string
	err   error
	snaps []Snapshot
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Publish(_ context.Context, snap Snapshot) error {
	f.snaps = append(f.snaps, snap)
	return f.err
}

type fakeSheets struct {
	sheetRange string
	rows       [][]string
}

func (f *fakeSheets) ReplaceRange(_ context.Context, sheetRange string, rows [][]string) error {
	f.sheetRange, f.rows = sheetRange, rows
	return nil
}

type fakeArchive struct {
	saved []models.ExportArchive
}

func (f *fakeArchive) SaveExport(_ context.Context, archive models.ExportArchive) error {
	f.saved = append(f.saved, archive)
	return nil
}

var fixedNow = time.Date(2025, 4, 25, 20, 0, 0, 0, time.UTC)

func sampleRecords() staticSource {
	return staticSource{
		{Crop: "Soja", AreaHectares: 1, DateText: "01/05/2025", TotalProfit: 1234.5},
		{Crop: "Milho", AreaHectares: 2, DateText: "23/04/2025", TotalProfit: 300},
	}
}

func newTestService(source RecordSource, sinks ...Sink) *Service {
	svc := NewService(source, nil, sinks...)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSummary(t *testing.T) {
	svc := newTestService(sampleRecords())

	summary := svc.Summary(context.Background())
	require.Equal(t, strings.Join([]string{
		planting.DashboardTitle + " (25/04/2025 20:00)",
		"2 registros.",
		"📊 Área total plantada: 3.00 hectares",
		"💰 Lucro total estimado: R$ 1534.50",
	}, "\n"), summary)
}

func TestSummaryEmpty(t *testing.T) {
	summary := newTestService(staticSource{}).Summary(context.Background())
	require.Contains(t, summary, "Nenhum registro ainda.")
	require.Contains(t, summary, "R$ 0.00")
}

func TestPublishReachesEverySink(t *testing.T) {
	first := &fakeSink{name: "first", err: errors.New("offline")}
	second := &fakeSink{name: "second"}
	svc := newTestService(sampleRecords(), first, nil, second)

	err := svc.Publish(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "publish to first")

	require.Len(t, first.snaps, 1)
	require.Len(t, second.snaps, 1)
	require.Equal(t, []string{"first", "second"}, svc.SinkNames())

	snap := second.snaps[0]
	require.Equal(t, export.FileName, snap.FileName)
	require.Len(t, snap.Rows, 3)
	require.Equal(t, export.ToCSV(sampleRecords()), snap.CSV)
	require.Equal(t, fixedNow, snap.GeneratedAt)
}

func TestPublishWithoutSinks(t *testing.T) {
	require.NoError(t, newTestService(sampleRecords()).Publish(context.Background()))
}

func TestSheetsAndArchiveSinks(t *testing.T) {
	sheetsRepo := &fakeSheets{}
	archiveRepo := &fakeArchive{}
	svc := newTestService(sampleRecords(), NewSheetsSink(sheetsRepo, "Registros!A:D"), NewArchiveSink(archiveRepo))

	require.NoError(t, svc.Publish(context.Background()))

	require.Equal(t, "Registros!A:D", sheetsRepo.sheetRange)
	require.Equal(t, export.HeaderRow, sheetsRepo.rows[0])
	require.Equal(t, []string{"Soja", "1", "01/05/2025", "1234.50"}, sheetsRepo.rows[1])

	require.Len(t, archiveRepo.saved, 1)
	archive := archiveRepo.saved[0]
	require.Equal(t, export.FileName, archive.FileName)
	require.Equal(t, 2, archive.RecordCount)
	require.InDelta(t, 3.0, archive.TotalArea, 1e-9)
	require.InDelta(t, 1534.5, archive.TotalProfit, 1e-9)
	require.Equal(t, fixedNow, archive.CreatedAt)
	require.True(t, strings.HasPrefix(archive.Content, export.Header))
}
