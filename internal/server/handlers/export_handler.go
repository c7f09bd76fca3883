package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/export"
	"github.com/mamadbah2/plantio/internal/service/planting"
)

// Publisher pushes the current export to the configured sinks.
type Publisher interface {
	Publish(ctx context.Context) error
	SinkNames() []string
}

// ExportHandler serves CSV downloads and on-demand publishing.
type ExportHandler struct {
	svc       planting.Controller
	publisher Publisher
	logger    *zap.Logger
}

// NewExportHandler constructs the export handler. publisher may be nil.
func NewExportHandler(svc planting.Controller, publisher Publisher, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, publisher: publisher, logger: logger}
}

// Download streams the CSV export as an attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	file := h.svc.OnExport()
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, export.ContentType, []byte(file.Content))
}

// Publish sends the export to every configured sink.
func (h *ExportHandler) Publish(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export publishing is not configured"})
		return
	}

	if err := h.publisher.Publish(c.Request.Context()); err != nil {
		h.logger.Error("failed publishing export", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to publish export"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"sinks": h.publisher.SinkNames()})
}
