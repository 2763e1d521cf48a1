package repository

import (
	"context"
	"sync"

	bookings_errors "frontdesk/internal/bookings/errors"
	"frontdesk/pkg/model"
)

// InMemoryBookingRepository keeps bookings in insertion order. Used by
// tests and by local runs without a database.
type InMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{}
}

func (r *InMemoryBookingRepository) Create(_ context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *InMemoryBookingRepository) FindByID(_ context.Context, id string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, bookings_errors.ErrNotFound
}

func (r *InMemoryBookingRepository) FindByStatus(_ context.Context, status string) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []model.Booking
	for _, booking := range r.bookings {
		if booking.Status == status {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (r *InMemoryBookingRepository) FindPendingBySender(_ context.Context, sender string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Most recent pending booking wins.
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].Sender == sender && r.bookings[i].Status == model.StatusPending {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, bookings_errors.ErrNoPendingBooking
}

func (r *InMemoryBookingRepository) UpdateStatus(_ context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return bookings_errors.ErrNotFound
}

func (r *InMemoryBookingRepository) CountByStatus(_ context.Context, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, booking := range r.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count, nil
}
