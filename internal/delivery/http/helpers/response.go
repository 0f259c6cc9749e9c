package helpers

import (
	"encoding/json"
	"net/http"

	"devevents/internal/domain"
)

// MessageResponse is the body for responses that carry only a message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for failed requests. Error carries the short
// error string for server-side failures; validation failures use Message
// alone.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// EventResponse is the body for responses carrying a single event.
// swagger:model EventResponse
type EventResponse struct {
	Message string        `json:"message"`
	Event   *domain.Event `json:"event"`
}

// EventsResponse is the body for the event listing.
// swagger:model EventsResponse
type EventsResponse struct {
	Message string          `json:"message"`
	Events  []*domain.Event `json:"events"`
}

// BookingResponse is the body for responses carrying a single booking.
// swagger:model BookingResponse
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// BookingsResponse is the body for the per-event booking listing.
// swagger:model BookingsResponse
type BookingsResponse struct {
	Message  string            `json:"message"`
	Bookings []*domain.Booking `json:"bookings"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONMessage writes a MessageResponse with the given status and message.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteJSONError writes an ErrorResponse. The err string is included only for
// server-side failures; pass an empty string for client errors.
func WriteJSONError(w http.ResponseWriter, statusCode int, message, errDetail string) {
	WriteJSON(w, statusCode, ErrorResponse{Message: message, Error: errDetail})
}
