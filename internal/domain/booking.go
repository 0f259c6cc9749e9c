package domain

import (
	"context"
	"time"
)

// Booking represents one reservation against an event. It holds a non-owning
// reference to the event by ID; the reference must resolve to an existing
// event at write time.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines booking use cases exposed to the delivery layer.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	ListBookingsForEvent(ctx context.Context, eventID string) ([]*Booking, error)
}
