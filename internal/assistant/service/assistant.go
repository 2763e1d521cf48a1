package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/assistant/faq"
	"frontdesk/internal/assistant/repository"
	bookingserrors "frontdesk/internal/bookings/errors"
	bookingsservice "frontdesk/internal/bookings/service"
	"frontdesk/pkg/config"
	apperrors "frontdesk/pkg/errors"
	"frontdesk/pkg/kafka"
	"frontdesk/pkg/model"
	"frontdesk/pkg/sanitizer"
)

const (
	fallbackReply  = "Not sure what you mean. Try ‘price,’ ‘book,’ or ‘beach’!"
	confirmedReply = "Got it—your stay is confirmed! You’ll hear from me the day before with check-in details."

	eventTypeOutboundMessage = "outbound-message.requested"
)

// MessagePublisher is the slice of the kafka producer the assistant needs.
type MessagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// AssistantService turns an inbound WhatsApp message into a reply. The
// reply is always produced: storage and delivery failures are logged and
// swallowed so the guest is never left without an answer.
type AssistantService interface {
	Reply(ctx context.Context, sender string, body string) (string, error)
}

type assistantService struct {
	ledger    bookingsservice.LedgerService
	convRepo  repository.ConversationRepository
	publisher MessagePublisher
	cfg       *config.Config
}

func NewAssistantService(
	ledger bookingsservice.LedgerService,
	convRepo repository.ConversationRepository,
	publisher MessagePublisher,
	cfg *config.Config,
) AssistantService {
	return &assistantService{
		ledger:    ledger,
		convRepo:  convRepo,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *assistantService) Reply(ctx context.Context, sender string, body string) (string, error) {
	if sender == "" {
		return "", apperrors.InvalidInput("Sender cannot be empty")
	}

	normalized := sanitizer.NormalizeMessage(body)
	reply := fallbackReply

	if answer := faq.Lookup(normalized); answer != "" {
		reply = answer
	}

	switch {
	case strings.Contains(normalized, "book"):
		reply = s.handleBooking(ctx, sender, normalized)
	case normalized == "yes":
		if r, ok := s.handleAwaitPayment(ctx, sender); ok {
			reply = r
		}
	case normalized == "paid":
		if r, ok := s.handleConfirmPayment(ctx, sender); ok {
			reply = r
		}
	}

	reply = s.truncate(reply)

	s.storeConversation(ctx, sender, body, reply)
	s.publishReply(ctx, sender, reply)

	return reply, nil
}

func (s *assistantService) handleBooking(ctx context.Context, sender string, normalized string) string {
	phrase := strings.TrimSpace(strings.ReplaceAll(normalized, "book", ""))

	quote, err := s.ledger.RequestBooking(ctx, sender, phrase)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		switch {
		case appErr != nil && appErr.Code == apperrors.CodeDateConflict:
			return fmt.Sprintf("Sorry, %s overlaps with an existing booking. Try different dates!", phrase)
		case appErr != nil && appErr.Code == apperrors.CodeInvalidDateFormat:
			return fmt.Sprintf("Invalid date format. Use ‘book DD-DD Month’ (e.g., ‘book 20-22 June’) or ‘book DD Month-DD Month’ (e.g., ‘book 20 June-22 June’). Error: %s", appErr.Details["reason"])
		default:
			s.cfg.Log.Error("Booking request failed", "sender", sender, "error", err)
			return "Something went wrong on our side. Please try again in a moment!"
		}
	}

	return fmt.Sprintf("Checking… %s is available. %d nights at €%d/night = €%d. Confirm with ‘yes’?",
		quote.Dates, quote.Nights, s.cfg.NightlyRate, quote.Total)
}

func (s *assistantService) handleAwaitPayment(ctx context.Context, sender string) (string, bool) {
	quote, err := s.ledger.AwaitPayment(ctx, sender)
	if err != nil {
		if !errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			s.cfg.Log.Error("Payment prompt failed", "sender", sender, "error", err)
		}
		return "", false
	}
	return fmt.Sprintf("Awesome! Pay €%d here: %s. Reply ‘paid’ when done.", quote.Total, s.cfg.PaymentLink), true
}

func (s *assistantService) handleConfirmPayment(ctx context.Context, sender string) (string, bool) {
	if _, err := s.ledger.ConfirmPayment(ctx, sender); err != nil {
		if !errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			s.cfg.Log.Error("Payment confirmation failed", "sender", sender, "error", err)
		}
		return "", false
	}
	return confirmedReply, true
}

// truncate enforces the delivery channel's message length cap, counted
// in characters rather than bytes so currency signs survive intact.
func (s *assistantService) truncate(reply string) string {
	max := s.cfg.MaxReplyLength
	runes := []rune(reply)
	if max <= 3 || len(runes) <= max {
		return reply
	}
	s.cfg.Log.Warn("Response truncated", "max_length", max)
	return string(runes[:max-3]) + "..."
}

func (s *assistantService) storeConversation(ctx context.Context, sender string, body string, reply string) {
	conversation := &model.Conversation{
		ID:        uuid.New().String(),
		Sender:    sender,
		Message:   body,
		Response:  reply,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.convRepo.Create(ctx, conversation); err != nil {
		s.cfg.Log.Error("Failed to store conversation", "sender", sender, "error", err)
		return
	}
	s.cfg.Log.Info("Conversation stored", "id", conversation.ID, "sender", sender)
}

func (s *assistantService) publishReply(ctx context.Context, sender string, reply string) {
	if s.publisher == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(sender).
		WithValue(model.OutboundMessage{To: sender, Body: reply}).
		WithEventType(eventTypeOutboundMessage).
		WithSource("frontdesk").
		Build()

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish outbound message", "sender", sender, "error", err)
	}
}
