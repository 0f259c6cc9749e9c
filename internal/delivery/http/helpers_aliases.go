package http

import (
	"net/http"

	"devevents/internal/delivery/http/helpers"
)

// Aliases re-exporting the response envelope and validation helpers, which
// live in the helpers subpackage so controllers can use them without an
// import cycle through this package.
type (
	MessageResponse  = helpers.MessageResponse
	ErrorResponse    = helpers.ErrorResponse
	EventResponse    = helpers.EventResponse
	EventsResponse   = helpers.EventsResponse
	BookingResponse  = helpers.BookingResponse
	BookingsResponse = helpers.BookingsResponse
	Validator        = helpers.Validator
)

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	helpers.WriteJSON(w, statusCode, body)
}

// WriteJSONMessage writes a MessageResponse with the given status and message.
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	helpers.WriteJSONMessage(w, statusCode, message)
}

// WriteJSONError writes an ErrorResponse. The err string is included only for
// server-side failures; pass an empty string for client errors.
func WriteJSONError(w http.ResponseWriter, statusCode int, message, errDetail string) {
	helpers.WriteJSONError(w, statusCode, message, errDetail)
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 JSON error and returns false; otherwise returns true.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	return helpers.DecodeAndValidate(w, r, dest)
}
