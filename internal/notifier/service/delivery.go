package service

import (
	"context"
	"errors"

	"frontdesk/internal/notifier/whatsapp"
	"frontdesk/pkg/kafka"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/model"
)

// MessageSender delivers one message to a guest.
type MessageSender interface {
	Send(ctx context.Context, to string, body string) error
}

// DeliveryService consumes outbound-message events and pushes them to the
// messaging provider. Undeliverable payloads are permanent failures so the
// consumer dead-letters them instead of retrying.
type DeliveryService struct {
	sender MessageSender
	log    *logger.Logger
}

func NewDeliveryService(sender MessageSender, log *logger.Logger) *DeliveryService {
	return &DeliveryService{
		sender: sender,
		log:    log,
	}
}

func (s *DeliveryService) Handle(ctx context.Context, msg kafka.Message) error {
	var outbound model.OutboundMessage
	if err := msg.DecodeValue(&outbound); err != nil {
		return kafka.NewPermanentError("failed to decode outbound message", err)
	}
	if outbound.To == "" || outbound.Body == "" {
		return kafka.NewPermanentError("outbound message missing recipient or body", nil)
	}

	if err := s.sender.Send(ctx, outbound.To, outbound.Body); err != nil {
		var statusErr *whatsapp.StatusError
		if errors.As(err, &statusErr) && statusErr.Code >= 400 && statusErr.Code < 500 && statusErr.Code != 429 {
			return kafka.NewPermanentError("messaging api rejected the message", err)
		}
		return kafka.NewTransientError("failed to deliver message", err)
	}

	s.log.Info("Outbound message delivered",
		"to", outbound.To,
		"event_id", msg.GetEventID(),
	)
	return nil
}
