package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assistantrepo "frontdesk/internal/assistant/repository"
	bookingsrepo "frontdesk/internal/bookings/repository"
	bookingsservice "frontdesk/internal/bookings/service"
	"frontdesk/internal/bookings/validator"
	"frontdesk/pkg/config"
	"frontdesk/pkg/kafka"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/model"
)

type capturingPublisher struct {
	messages []kafka.Message
	err      error
}

func (p *capturingPublisher) Publish(_ context.Context, msg kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

type fixture struct {
	svc       AssistantService
	convRepo  *assistantrepo.InMemoryConversationRepository
	publisher *capturingPublisher
	cfg       *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "text", Service: "test"})
	cfg := &config.Config{
		ReferenceYear:  2025,
		NightlyRate:    50,
		MaxReplyLength: 1600,
		PaymentLink:    "[PayPal.me/ALBotExample]",
		Log:            log,
	}

	ledger := bookingsservice.NewLedgerService(
		bookingsrepo.NewInMemoryBookingRepository(),
		validator.NewBookingValidator(log),
		cfg,
	)
	convRepo := assistantrepo.NewInMemoryConversationRepository()
	publisher := &capturingPublisher{}

	return &fixture{
		svc:       NewAssistantService(ledger, convRepo, publisher, cfg),
		convRepo:  convRepo,
		publisher: publisher,
		cfg:       cfg,
	}
}

const sender = "+4915112345678"

func TestReplyFAQ(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "Do you have WiFi?")
	require.NoError(t, err)
	assert.Equal(t, "Yes, free Wi-Fi is available in all rooms and common areas.", reply)
}

func TestReplyFallback(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "hello there")
	require.NoError(t, err)
	assert.Equal(t, "Not sure what you mean. Try ‘price,’ ‘book,’ or ‘beach’!", reply)
}

func TestReplyBookingFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reply, err := f.svc.Reply(ctx, sender, "book 20-22 June")
	require.NoError(t, err)
	assert.Equal(t, "Checking… 20-22 june is available. 2 nights at €50/night = €100. Confirm with ‘yes’?", reply)

	reply, err = f.svc.Reply(ctx, sender, "yes")
	require.NoError(t, err)
	assert.Equal(t, "Awesome! Pay €100 here: [PayPal.me/ALBotExample]. Reply ‘paid’ when done.", reply)

	reply, err = f.svc.Reply(ctx, sender, "paid")
	require.NoError(t, err)
	assert.Equal(t, "Got it—your stay is confirmed! You’ll hear from me the day before with check-in details.", reply)

	// Overlapping request from another guest now gets turned away.
	reply, err = f.svc.Reply(ctx, "+4915187654321", "book 21-23 June")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, 21-23 june overlaps with an existing booking. Try different dates!", reply)
}

func TestReplyBookingInvalidDates(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "book next weekend")
	require.NoError(t, err)
	assert.Contains(t, reply, "Invalid date format.")
	assert.Contains(t, reply, "missing separator")
}

func TestReplyYesWithoutPendingBooking(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "yes")
	require.NoError(t, err)
	assert.Equal(t, "Not sure what you mean. Try ‘price,’ ‘book,’ or ‘beach’!", reply)
}

func TestReplyPaidWithoutPendingBooking(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "paid")
	require.NoError(t, err)
	assert.Equal(t, "Not sure what you mean. Try ‘price,’ ‘book,’ or ‘beach’!", reply)
}

func TestReplyStoresConversation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Reply(context.Background(), sender, "Do you have WiFi?")
	require.NoError(t, err)

	stored := f.convRepo.All()
	require.Len(t, stored, 1)
	assert.Equal(t, sender, stored[0].Sender)
	assert.Equal(t, "Do you have WiFi?", stored[0].Message)
	assert.Equal(t, "Yes, free Wi-Fi is available in all rooms and common areas.", stored[0].Response)
}

func TestReplySurvivesStorageFailure(t *testing.T) {
	f := newFixture(t)
	f.convRepo.FailCreate = errors.New("connection reset")

	reply, err := f.svc.Reply(context.Background(), sender, "Do you have WiFi?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestReplyPublishesOutboundMessage(t *testing.T) {
	f := newFixture(t)

	reply, err := f.svc.Reply(context.Background(), sender, "Do you have WiFi?")
	require.NoError(t, err)

	require.Len(t, f.publisher.messages, 1)
	msg := f.publisher.messages[0]
	assert.Equal(t, sender, msg.Key)

	var outbound model.OutboundMessage
	require.NoError(t, msg.DecodeValue(&outbound))
	assert.Equal(t, sender, outbound.To)
	assert.Equal(t, reply, outbound.Body)
}

func TestReplySurvivesPublishFailure(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("broker unreachable")

	reply, err := f.svc.Reply(context.Background(), sender, "Do you have WiFi?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}

func TestReplyTruncation(t *testing.T) {
	f := newFixture(t)
	f.cfg.MaxReplyLength = 40

	reply, err := f.svc.Reply(context.Background(), sender, "how far is the airport?")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(reply, "..."))
	assert.Len(t, []rune(reply), 40)
}
