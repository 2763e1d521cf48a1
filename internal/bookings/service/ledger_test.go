package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingserrors "frontdesk/internal/bookings/errors"
	"frontdesk/internal/bookings/repository"
	"frontdesk/internal/bookings/validator"
	"frontdesk/pkg/config"
	apperrors "frontdesk/pkg/errors"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/model"
)

func newTestService(t *testing.T) (LedgerService, *repository.InMemoryBookingRepository) {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "text", Service: "test"})
	cfg := &config.Config{
		ReferenceYear: 2025,
		NightlyRate:   50,
		Log:           log,
	}
	repo := repository.NewInMemoryBookingRepository()
	return NewLedgerService(repo, validator.NewBookingValidator(log), cfg), repo
}

func TestRequestBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking with quote", func(t *testing.T) {
		svc, repo := newTestService(t)

		quote, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Nights != 2 {
			t.Errorf("expected 2 nights, got %d", quote.Nights)
		}
		if quote.Total != 100 {
			t.Errorf("expected total 100, got %d", quote.Total)
		}
		if quote.Dates != "20-22 June" {
			t.Errorf("expected dates preserved verbatim, got %q", quote.Dates)
		}

		count, _ := repo.CountByStatus(ctx, model.StatusPending)
		if count != 1 {
			t.Errorf("expected 1 pending booking, got %d", count)
		}
	})

	t.Run("rejects unparseable phrase", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RequestBooking(ctx, "+4915112345678", "sometime soon")
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeInvalidDateFormat {
			t.Fatalf("expected INVALID_DATE_FORMAT, got %v", err)
		}
	})

	t.Run("pending bookings do not block overlapping requests", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("first request failed: %v", err)
		}
		if _, err := svc.RequestBooking(ctx, "+4915187654321", "21-23 June"); err != nil {
			t.Fatalf("overlapping request against pending booking should succeed: %v", err)
		}
	})

	t.Run("confirmed bookings block overlapping requests", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if _, err := svc.ConfirmPayment(ctx, "+4915112345678"); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}

		_, err := svc.RequestBooking(ctx, "+4915187654321", "21-23 June")
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeDateConflict {
			t.Fatalf("expected DATE_CONFLICT, got %v", err)
		}
		if appErr.Details["conflicting_dates"] != "20-22 June" {
			t.Errorf("expected conflict to cite stored dates, got %v", appErr.Details["conflicting_dates"])
		}
	})

	t.Run("back to back stays does not conflict", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if _, err := svc.ConfirmPayment(ctx, "+4915112345678"); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}

		// Checkout day equals the next check-in day.
		if _, err := svc.RequestBooking(ctx, "+4915187654321", "22-25 June"); err != nil {
			t.Fatalf("back-to-back request should succeed: %v", err)
		}
	})

	t.Run("skips stored bookings with unparseable dates", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.Create(ctx, &model.Booking{
			ID:       "corrupt",
			Sender:   "+4915100000000",
			RawDates: "garbage",
			Status:   model.StatusConfirmed,
		})

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("corrupt stored record must not fail the request: %v", err)
		}
	})
}

func TestAwaitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("returns quote for pending booking", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		quote, err := svc.AwaitPayment(ctx, "+4915112345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Total != 100 || quote.Nights != 2 {
			t.Errorf("unexpected quote: %+v", quote)
		}
	})

	t.Run("does not mutate booking state", func(t *testing.T) {
		svc, repo := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if _, err := svc.AwaitPayment(ctx, "+4915112345678"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, _ := repo.CountByStatus(ctx, model.StatusPending)
		if count != 1 {
			t.Errorf("expected booking to remain pending, got %d pending", count)
		}
	})

	t.Run("returns ErrNoPendingBooking when nothing is pending", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.AwaitPayment(ctx, "+4915112345678")
		if !errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			t.Fatalf("expected ErrNoPendingBooking, got %v", err)
		}
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes pending to confirmed", func(t *testing.T) {
		svc, repo := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		booking, err := svc.ConfirmPayment(ctx, "+4915112345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.Status != model.StatusConfirmed {
			t.Errorf("expected confirmed status, got %q", booking.Status)
		}

		confirmed, _ := repo.CountByStatus(ctx, model.StatusConfirmed)
		pending, _ := repo.CountByStatus(ctx, model.StatusPending)
		if confirmed != 1 || pending != 0 {
			t.Errorf("expected 1 confirmed / 0 pending, got %d / %d", confirmed, pending)
		}
	})

	t.Run("confirms the most recent pending booking", func(t *testing.T) {
		svc, repo := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "1-3 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if _, err := svc.RequestBooking(ctx, "+4915112345678", "10-12 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}

		booking, err := svc.ConfirmPayment(ctx, "+4915112345678")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.RawDates != "10-12 June" {
			t.Errorf("expected most recent booking confirmed, got %q", booking.RawDates)
		}

		pending, _ := repo.CountByStatus(ctx, model.StatusPending)
		if pending != 1 {
			t.Errorf("earlier pending booking should survive, got %d pending", pending)
		}
	})

	t.Run("second confirm finds no pending booking", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.RequestBooking(ctx, "+4915112345678", "20-22 June"); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if _, err := svc.ConfirmPayment(ctx, "+4915112345678"); err != nil {
			t.Fatalf("first confirm failed: %v", err)
		}

		_, err := svc.ConfirmPayment(ctx, "+4915112345678")
		if !errors.Is(err, bookingserrors.ErrNoPendingBooking) {
			t.Fatalf("expected ErrNoPendingBooking, got %v", err)
		}
	})
}

func TestRequestBookingConcurrent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	if _, err := svc.RequestBooking(ctx, "+4915100000001", "20-22 June"); err != nil {
		t.Fatalf("seed request failed: %v", err)
	}
	if _, err := svc.ConfirmPayment(ctx, "+4915100000001"); err != nil {
		t.Fatalf("seed confirm failed: %v", err)
	}

	var wg sync.WaitGroup
	senders := []string{"+4915100000002", "+4915100000003", "+4915100000004", "+4915100000005"}
	for _, sender := range senders {
		wg.Add(1)
		go func(sender string) {
			defer wg.Done()
			svc.RequestBooking(ctx, sender, "21-23 June")
		}(sender)
	}
	wg.Wait()

	// Every concurrent request overlaps the confirmed seed, so none may
	// slip through the availability check.
	pending, _ := repo.CountByStatus(ctx, model.StatusPending)
	if pending != 0 {
		t.Errorf("expected no pending bookings past a confirmed conflict, got %d", pending)
	}
}
