package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	bookingserrors "frontdesk/internal/bookings/errors"
	"frontdesk/internal/bookings/repository"
	"frontdesk/internal/bookings/validator"
	"frontdesk/pkg/config"
	"frontdesk/pkg/daterange"
	apperrors "frontdesk/pkg/errors"
	"frontdesk/pkg/model"
)

// LedgerService owns the booking lifecycle: a date request becomes a
// pending booking, and a payment confirmation promotes the most recent
// pending booking to confirmed. Only confirmed bookings block dates.
type LedgerService interface {
	RequestBooking(ctx context.Context, sender string, phrase string) (*model.Quote, error)
	AwaitPayment(ctx context.Context, sender string) (*model.Quote, error)
	ConfirmPayment(ctx context.Context, sender string) (*model.Booking, error)
}

type ledgerService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	cfg       *config.Config

	// mu serializes the availability scan and the pending insert so two
	// concurrent requests cannot both pass the overlap check.
	mu sync.Mutex
}

func NewLedgerService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	cfg *config.Config,
) LedgerService {
	return &ledgerService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *ledgerService) RequestBooking(ctx context.Context, sender string, phrase string) (*model.Quote, error) {
	if sender == "" {
		return nil, apperrors.InvalidInput("Sender cannot be empty")
	}

	requested, err := daterange.Parse(phrase, s.cfg.ReferenceYear)
	if err != nil {
		var parseErr *daterange.ParseError
		if errors.As(err, &parseErr) {
			return nil, apperrors.InvalidDateFormat(parseErr.Reason, err)
		}
		return nil, apperrors.InvalidDateFormat("unrecognized date phrase", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict, err := s.findConflict(ctx, requested); err != nil {
		return nil, err
	} else if conflict != nil {
		return nil, apperrors.DateConflict(conflict.RawDates)
	}

	nights := requested.Nights()
	booking := &model.Booking{
		ID:        uuid.New().String(),
		Sender:    sender,
		RawDates:  phrase,
		Nights:    nights,
		Status:    model.StatusPending,
		Total:     nights * s.cfg.NightlyRate,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validator.Validate(booking); err != nil {
		return nil, apperrors.Validation("Booking failed validation", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create pending booking", "sender", sender, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Pending booking created",
		"id", booking.ID,
		"sender", sender,
		"dates", phrase,
		"nights", nights,
		"total", booking.Total,
	)

	return &model.Quote{
		Dates:  booking.RawDates,
		Nights: booking.Nights,
		Total:  booking.Total,
	}, nil
}

// findConflict scans confirmed bookings for a range overlapping the
// requested one. Stored records whose raw dates no longer parse are
// skipped with a warning rather than failing the request.
func (s *ledgerService) findConflict(ctx context.Context, requested daterange.Range) (*model.Booking, error) {
	confirmed, err := s.repo.FindByStatus(ctx, model.StatusConfirmed)
	if err != nil {
		s.cfg.Log.Error("Failed to load confirmed bookings", "error", err)
		return nil, apperrors.Internal("Failed to check availability", err)
	}

	for i := range confirmed {
		existing, err := daterange.Parse(confirmed[i].RawDates, s.cfg.ReferenceYear)
		if err != nil {
			s.cfg.Log.Warn("Skipping unparseable stored booking",
				"id", confirmed[i].ID,
				"raw_dates", confirmed[i].RawDates,
				"error", err,
			)
			continue
		}
		if requested.Overlaps(existing) {
			return &confirmed[i], nil
		}
	}
	return nil, nil
}

func (s *ledgerService) AwaitPayment(ctx context.Context, sender string) (*model.Quote, error) {
	if sender == "" {
		return nil, apperrors.InvalidInput("Sender cannot be empty")
	}

	booking, err := s.repo.FindPendingBySender(ctx, sender)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			return nil, err
		}
		s.cfg.Log.Error("Failed to look up pending booking", "sender", sender, "error", err)
		return nil, apperrors.Internal("Failed to look up pending booking", err)
	}

	return &model.Quote{
		Dates:  booking.RawDates,
		Nights: booking.Nights,
		Total:  booking.Total,
	}, nil
}

func (s *ledgerService) ConfirmPayment(ctx context.Context, sender string) (*model.Booking, error) {
	if sender == "" {
		return nil, apperrors.InvalidInput("Sender cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.FindPendingBySender(ctx, sender)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			return nil, err
		}
		s.cfg.Log.Error("Failed to look up pending booking", "sender", sender, "error", err)
		return nil, apperrors.Internal("Failed to look up pending booking", err)
	}

	if err := s.repo.UpdateStatus(ctx, booking.ID, model.StatusConfirmed); err != nil {
		s.cfg.Log.Error("Failed to confirm booking", "id", booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to confirm booking", err)
	}
	booking.Status = model.StatusConfirmed

	s.cfg.Log.Info("Booking confirmed",
		"id", booking.ID,
		"sender", sender,
		"dates", booking.RawDates,
	)

	return booking, nil
}
