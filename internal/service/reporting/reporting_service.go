package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/export"
	"github.com/mamadbah2/plantio/internal/service/planting"
)

const summaryDateLayout = "02/01/2006 15:04"

// RecordSource supplies the records to publish, in display order.
type RecordSource interface {
	Records() []models.PlantingRecord
}

// Snapshot is the export state handed to every sink in one publish run.
type Snapshot struct {
	FileName    string
	Records     []models.PlantingRecord
	Rows        [][]string
	CSV         string
	Totals      models.Totals
	GeneratedAt time.Time
}

// Sink receives published exports.
type Sink interface {
	Name() string
	Publish(ctx context.Context, snap Snapshot) error
}

// Service builds summaries and pushes exports to the configured sinks.
type Service struct {
	source RecordSource
	sinks  []Sink
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance. Nil sinks are ignored.
func NewService(source RecordSource, logger *zap.Logger, sinks ...Sink) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := make([]Sink, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			active = append(active, sink)
		}
	}

	return &Service{source: source, sinks: active, logger: logger, now: time.Now}
}

// Snapshot captures the current records as an export.
func (s *Service) Snapshot() Snapshot {
	records := s.source.Records()
	return Snapshot{
		FileName:    export.FileName,
		Records:     records,
		Rows:        export.Rows(records),
		CSV:         export.ToCSV(records),
		Totals:      models.Aggregate(records),
		GeneratedAt: s.now(),
	}
}

// Summary renders the totals as a short text message.
func (s *Service) Summary(_ context.Context) string {
	snap := s.Snapshot()
	return summaryText(snap)
}

// Publish sends the current export to every sink. All sinks are attempted;
// the first failure is returned.
func (s *Service) Publish(ctx context.Context) error {
	snap := s.Snapshot()

	if len(s.sinks) == 0 {
		s.logger.Debug("no export sinks configured")
		return nil
	}

	var firstErr error
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, snap); err != nil {
			s.logger.Error("export sink failed", zap.String("sink", sink.Name()), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("publish to %s: %w", sink.Name(), err)
			}
			continue
		}
		s.logger.Info("export published", zap.String("sink", sink.Name()), zap.Int("records", len(snap.Records)))
	}

	return firstErr
}

// SinkNames lists the active sinks.
func (s *Service) SinkNames() []string {
	names := make([]string, 0, len(s.sinks))
	for _, sink := range s.sinks {
		names = append(names, sink.Name())
	}
	return names
}

func summaryText(snap Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", planting.DashboardTitle, snap.GeneratedAt.Format(summaryDateLayout))
	if len(snap.Records) == 0 {
		b.WriteString("Nenhum registro ainda.\n")
	} else {
		fmt.Fprintf(&b, "%d registros.\n", len(snap.Records))
	}
	b.WriteString(planting.AreaLine(snap.Totals))
	b.WriteString("\n")
	b.WriteString(planting.ProfitLine(snap.Totals))
	return b.String()
}
