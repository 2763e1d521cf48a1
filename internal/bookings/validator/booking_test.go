package validator

import (
	"strings"
	"testing"
	"time"

	"frontdesk/pkg/logger"
	"frontdesk/pkg/model"
)

func newValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.TEXT,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func validBooking() *model.Booking {
	return &model.Booking{
		ID:        "b3c6a780-3c9f-4a9f-9b53-20b1f4a1d2aa",
		Sender:    "+4915112345678",
		RawDates:  "20-22 June",
		Nights:    2,
		Status:    model.StatusPending,
		Total:     100,
		CreatedAt: time.Now(),
	}
}

func TestValidate(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		mutate   func(b *model.Booking)
		wantErr  bool
		errField string
	}{
		{
			name:   "valid booking",
			mutate: func(b *model.Booking) {},
		},
		{
			name:     "missing sender",
			mutate:   func(b *model.Booking) { b.Sender = "" },
			wantErr:  true,
			errField: "Sender",
		},
		{
			name:     "sender not E.164",
			mutate:   func(b *model.Booking) { b.Sender = "015112345678" },
			wantErr:  true,
			errField: "Sender",
		},
		{
			name:     "raw dates too short",
			mutate:   func(b *model.Booking) { b.RawDates = "ab" },
			wantErr:  true,
			errField: "RawDates",
		},
		{
			name:     "zero nights",
			mutate:   func(b *model.Booking) { b.Nights = 0 },
			wantErr:  true,
			errField: "Nights",
		},
		{
			name:     "unknown status",
			mutate:   func(b *model.Booking) { b.Status = "cancelled" },
			wantErr:  true,
			errField: "Status",
		},
		{
			name:     "malformed id",
			mutate:   func(b *model.Booking) { b.ID = "not-a-uuid" },
			wantErr:  true,
			errField: "ID",
		},
		{
			name:     "zero created_at",
			mutate:   func(b *model.Booking) { b.CreatedAt = time.Time{} },
			wantErr:  true,
			errField: "CreatedAt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)

			err := v.Validate(booking)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errField) {
					t.Errorf("expected error mentioning %s, got: %v", tt.errField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
