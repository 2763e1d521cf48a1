package model

import (
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Booking is a reservation accepted by the availability check. RawDates
// keeps the guest's original phrase; overlap checks re-parse it with the
// deployment's reference year, so stored records and new requests are
// always compared on the same footing. Records are never deleted.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	Sender    string    `json:"sender" bson:"sender" validate:"required,e164"`
	RawDates  string    `json:"raw_dates" bson:"raw_dates" validate:"required,min=3,max=100"`
	Nights    int       `json:"nights" bson:"nights" validate:"required,min=1"`
	Status    string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed"`
	Total     int       `json:"total" bson:"total" validate:"min=0"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// Quote is what the assistant presents back to the guest before payment.
type Quote struct {
	Dates  string `json:"dates"`
	Nights int    `json:"nights"`
	Total  int    `json:"total"`
}
