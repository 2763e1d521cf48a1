package errors

import "errors"

var (
	// ErrNotFound is returned when a booking does not exist.
	ErrNotFound = errors.New("booking not found")

	// ErrNoPendingBooking is returned when an operation expects the sender
	// to have a pending booking and none exists.
	ErrNoPendingBooking = errors.New("no pending booking for sender")
)
