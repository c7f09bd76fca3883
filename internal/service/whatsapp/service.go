package whatsapp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/plantio/internal/domain/models"
	client "github.com/mamadbah2/plantio/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// ErrNoRecipient is returned when an outbound message has nowhere to go.
var ErrNoRecipient = errors.New("outbound message has no recipient")

// MessagingService describes the outbound messaging operations.
type MessagingService interface {
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// MetaWhatsAppService is the production implementation backed by WhatsApp Cloud API.
type MetaWhatsAppService struct {
	client client.Client
	logger *zap.Logger
}

// NewMetaWhatsAppService wires a new service instance.
func NewMetaWhatsAppService(client client.Client, logger *zap.Logger) *MetaWhatsAppService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetaWhatsAppService{client: client, logger: logger}
}

// SendOutbound pushes a text message to req.To.
func (s *MetaWhatsAppService) SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error {
	if req.To == "" {
		return ErrNoRecipient
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	resp, err := s.client.SendTextMessage(ctxWithTimeout, client.SendTextMessageRequest{
		To:         req.To,
		Body:       req.Message,
		PreviewURL: req.PreviewURL,
	})
	if err != nil {
		return err
	}

	if len(resp.Messages) > 0 {
		s.logger.Debug("outbound message accepted", zap.String("to", req.To), zap.String("message_id", resp.Messages[0].ID))
	}
	return nil
}
