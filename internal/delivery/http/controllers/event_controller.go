package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	httpdelivery "devevents/internal/delivery/http/helpers"
	"devevents/internal/domain"
)

// maxUploadBytes caps the multipart form memory for event creation (10MB).
const maxUploadBytes = 10 << 20

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns all published events, newest first.
// @Tags events
// @Produce json
// @Success 200 {object} http.EventsResponse
// @Failure 500 {object} http.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events", err.Error())
		return
	}
	httpdelivery.WriteJSON(w, http.StatusOK, httpdelivery.EventsResponse{
		Message: "Events fetched successfully",
		Events:  events,
	})
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Description Fetches a single event by its unique slug. The slug is validated before lookup.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug (lowercase letters, numbers, hyphens)"
// @Success 200 {object} http.EventResponse
// @Failure 400 {object} http.MessageResponse
// @Failure 404 {object} http.MessageResponse
// @Failure 500 {object} http.ErrorResponse
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			httpdelivery.WriteJSONMessage(w, http.StatusNotFound, fmt.Sprintf("Event with slug '%s' not found", slug))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event", err.Error())
		return
	}
	httpdelivery.WriteJSON(w, http.StatusOK, httpdelivery.EventResponse{
		Message: "Event fetched successfully",
		Event:   event,
	})
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event from a multipart form. The image part is uploaded to the media store first; the event is persisted with the returned URL. Slug is taken from the form or derived from the title.
// @Tags events
// @Accept mpfd
// @Produce json
// @Param title formData string true "Event title"
// @Param slug formData string false "Slug; derived from title when omitted"
// @Param description formData string false "Short description"
// @Param image formData file true "Event image"
// @Success 201 {object} http.EventResponse
// @Failure 400 {object} http.MessageResponse
// @Failure 409 {object} http.MessageResponse
// @Failure 500 {object} http.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, "Invalid Form Data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, "Invalid Form Data")
		return
	}

	event := eventFromForm(r)
	image := &domain.ImageUpload{Filename: header.Filename, Data: data}

	if err := c.Service.CreateEvent(r.Context(), event, image); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			httpdelivery.WriteJSONMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateSlug):
			httpdelivery.WriteJSONMessage(w, http.StatusConflict, "An event with this slug already exists")
		case errors.Is(err, domain.ErrUploadFailed):
			c.Logger.ErrorContext(r.Context(), "image upload failed", "path", r.URL.Path, "err", err)
			httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Image upload failed", err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			httpdelivery.WriteJSONError(w, http.StatusInternalServerError, "Event Creation Failed", err.Error())
		}
		return
	}

	httpdelivery.WriteJSON(w, http.StatusCreated, httpdelivery.EventResponse{
		Message: "Event Created Successfully",
		Event:   event,
	})
}

// eventFromForm builds an Event from the scalar form fields. Agenda and tags
// accept either a JSON array or a comma-separated list.
func eventFromForm(r *http.Request) *domain.Event {
	return &domain.Event{
		Slug:        r.FormValue("slug"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Organizer:   r.FormValue("organizer"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Location:    r.FormValue("location"),
		Venue:       r.FormValue("venue"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Agenda:      parseList(r.FormValue("agenda")),
		Tags:        parseList(r.FormValue("tags")),
	}
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items
		}
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
