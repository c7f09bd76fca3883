package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/plantio/internal/domain/models"
)

type fakeReporter struct {
	publishErr error
	published  int
}

func (f *fakeReporter) Publish(context.Context) error {
	f.published++
	return f.publishErr
}

func (f *fakeReporter) Summary(context.Context) string { return "resumo" }

type fakeMessaging struct {
	sent []models.OutboundMessageRequest
}

func (f *fakeMessaging) SendOutbound(_ context.Context, req models.OutboundMessageRequest) error {
	f.sent = append(f.sent, req)
	return nil
}

func TestPublishExportSendsSummary(t *testing.T) {
	reporter := &fakeReporter{publishErr: errors.New("sheet offline")}
	messaging := &fakeMessaging{}
	s := NewScheduler("0 20 * * 5", time.UTC, reporter, messaging, "5511999999999", nil)

	s.publishExport()

	require.Equal(t, 1, reporter.published)
	require.Equal(t, []models.OutboundMessageRequest{{To: "5511999999999", Message: "resumo"}}, messaging.sent)
}

func TestPublishExportWithoutMessaging(t *testing.T) {
	reporter := &fakeReporter{}
	s := NewScheduler("@daily", nil, reporter, nil, "", nil)

	s.publishExport()
	require.Equal(t, 1, reporter.published)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler("not a schedule", time.UTC, &fakeReporter{}, nil, "", nil)
	require.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler("0 20 * * 5", time.UTC, &fakeReporter{}, nil, "", nil)
	require.NoError(t, s.Start())
	s.Stop()
}
