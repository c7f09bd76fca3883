package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/domain/models"
	"github.com/mamadbah2/plantio/internal/service/planting"
)

// PlantingHandler adapts the planting controller to HTTP.
type PlantingHandler struct {
	svc    planting.Controller
	logger *zap.Logger
}

// NewPlantingHandler constructs the HTTP handler adapter.
func NewPlantingHandler(svc planting.Controller, logger *zap.Logger) *PlantingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlantingHandler{svc: svc, logger: logger}
}

// Submit accepts the six form fields as JSON or form data.
func (h *PlantingHandler) Submit(c *gin.Context) {
	var raw models.RawFormInput
	if err := c.ShouldBind(&raw); err != nil {
		h.logger.Warn("invalid planting payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.svc.OnSubmit(raw)
	if errors.Is(result.Err, models.ErrInvalidInput) {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// List returns the dashboard as JSON.
func (h *PlantingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard())
}

// Dashboard returns the dashboard as plain text.
func (h *PlantingHandler) Dashboard(c *gin.Context) {
	c.String(http.StatusOK, h.svc.Dashboard().Text())
}
