package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	httpdelivery "devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// Validate implements Validator. Email format is checked by the service so
// the exact validation reason reaches the client.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if c.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot at an event
// @Description Creates a booking for an existing event. The event reference is verified before the booking is stored; a confirmation email is sent on success.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} http.BookingResponse
// @Failure 400 {object} http.MessageResponse
// @Failure 500 {object} http.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !httpdelivery.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), req.EventID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrEventReference):
			httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, "Referenced event does not exist")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Booking Creation Failed", err.Error())
		}
		return
	}
	httpdelivery.WriteJSON(w, http.StatusCreated, httpdelivery.BookingResponse{
		Message: "Booking Created Successfully",
		Booking: booking,
	})
}

// ListEventBookings godoc
// @Summary List bookings for an event
// @Description Returns all bookings for the given event, newest first.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} http.BookingsResponse
// @Failure 404 {object} http.MessageResponse
// @Failure 500 {object} http.ErrorResponse
// @Router /events/{eventID}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, "missing eventID")
		return
	}
	bookings, err := c.Service.ListBookingsForEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpdelivery.WriteJSONMessage(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	httpdelivery.WriteJSON(w, http.StatusOK, httpdelivery.BookingsResponse{
		Message:  "Bookings fetched successfully",
		Bookings: bookings,
	})
}
