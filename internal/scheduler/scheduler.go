package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/service/whatsapp"
)

const jobTimeout = 2 * time.Minute

// Reporter is the reporting surface the scheduled job needs.
type Reporter interface {
	Publish(ctx context.Context) error
	Summary(ctx context.Context) string
}

// Scheduler publishes the export on a cron schedule.
type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	reporter     Reporter
	messagingSvc whatsapp.MessagingService
	recipient    string
	logger       *zap.Logger
}

// NewScheduler creates a scheduler running in loc. messagingSvc may be nil, in
// which case no summary is sent.
func NewScheduler(schedule string, loc *time.Location, reporter Reporter, messagingSvc whatsapp.MessagingService, recipient string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		schedule:     schedule,
		reporter:     reporter,
		messagingSvc: messagingSvc,
		recipient:    recipient,
		logger:       logger,
	}
}

// Start registers the publish job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.publishExport); err != nil {
		return fmt.Errorf("schedule export %q: %w", s.schedule, err)
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) publishExport() {
	s.logger.Info("publishing scheduled export")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.reporter.Publish(ctx); err != nil {
		s.logger.Error("scheduled export failed", zap.Error(err))
	}

	if s.messagingSvc == nil {
		return
	}

	req := models.OutboundMessageRequest{
		To:      s.recipient,
		Message: s.reporter.Summary(ctx),
	}

	if err := s.messagingSvc.SendOutbound(ctx, req); err != nil {
		s.logger.Error("failed to send export summary", zap.Error(err))
	} else {
		s.logger.Info("export summary sent")
	}
}
