package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devevents/internal/delivery/http/controllers"
	httpdelivery "devevents/internal/delivery/http"
	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr     error
	listErr       error
	listResult    []*domain.Event
	getBySlugErr  error
	getBySlug     *domain.Event
	lastCreated   *domain.Event
	lastImage     *domain.ImageUpload
	lastSlugParam string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event, image *domain.ImageUpload) error {
	f.lastCreated = event
	f.lastImage = image
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "ev-1"
	event.Image = "https://media.example.com/events/banner.png"
	return nil
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.lastSlugParam = slug
	if f.getBySlugErr != nil {
		return nil, f.getBySlugErr
	}
	return f.getBySlug, nil
}

func newEventRouter(svc domain.EventService) http.Handler {
	return httpdelivery.NewRouter(
		controllers.NewEventController(testLogger, svc),
		controllers.NewBookingController(testLogger, &fakeBookingService{}),
	)
}

func decodeBody(t *testing.T, res *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{listResult: []*domain.Event{
			{ID: "ev-2", Slug: "hack-night"},
			{ID: "ev-1", Slug: "gophercon-2026"},
		}}
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Events fetched successfully", body["message"])
		assert.Len(t, body["events"], 2)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &fakeEventService{listErr: fmt.Errorf("connection lost")}
		req := httptest.NewRequest(http.MethodGet, "/events", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusInternalServerError, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Failed to fetch events", body["message"])
		assert.Equal(t, "connection lost", body["error"])
	})
}

func TestEventController_GetEventBySlug(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{getBySlug: &domain.Event{ID: "ev-1", Slug: "my-cool-talk"}}
		req := httptest.NewRequest(http.MethodGet, "/events/my-cool-talk", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Event fetched successfully", body["message"])
		assert.Equal(t, "my-cool-talk", svc.lastSlugParam)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{getBySlugErr: domain.ErrNotFound}
		req := httptest.NewRequest(http.MethodGet, "/events/my-cool-talk", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusNotFound, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Event with slug 'my-cool-talk' not found", body["message"])
	})

	t.Run("invalid slug", func(t *testing.T) {
		svc := &fakeEventService{getBySlugErr: &domain.ValidationError{
			Reason: "Invalid slug format. Use only lowercase letters, numbers, and hyphens",
		}}
		req := httptest.NewRequest(http.MethodGet, "/events/My_Talk!", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusBadRequest, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Invalid slug format. Use only lowercase letters, numbers, and hyphens", body["message"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &fakeEventService{getBySlugErr: fmt.Errorf("connection lost")}
		req := httptest.NewRequest(http.MethodGet, "/events/my-cool-talk", nil)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusInternalServerError, res.Code)
		body := decodeBody(t, res)
		assert.Equal(t, "Failed to fetch event", body["message"])
	})
}

// multipartEvent builds a multipart body with the given fields and, when
// withImage is set, an image file part.
func multipartEvent(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "banner.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestEventController_CreateEvent(t *testing.T) {
	fields := map[string]string{
		"title":       "GopherCon 2026",
		"slug":        "gophercon-2026",
		"description": "the Go conference",
		"agenda":      `["Keynote","Workshops"]`,
		"tags":        "go, conference",
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeEventService{}
		body, contentType := multipartEvent(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/events", body)
		req.Header.Set("Content-Type", contentType)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusCreated, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "Event Created Successfully", got["message"])
		require.NotNil(t, svc.lastCreated)
		assert.Equal(t, "gophercon-2026", svc.lastCreated.Slug)
		assert.Equal(t, []string{"Keynote", "Workshops"}, svc.lastCreated.Agenda)
		assert.Equal(t, []string{"go", "conference"}, svc.lastCreated.Tags)
		require.NotNil(t, svc.lastImage)
		assert.Equal(t, "banner.png", svc.lastImage.Filename)
		assert.Equal(t, []byte("png-bytes"), svc.lastImage.Data)
	})

	t.Run("missing image", func(t *testing.T) {
		svc := &fakeEventService{}
		body, contentType := multipartEvent(t, fields, false)
		req := httptest.NewRequest(http.MethodPost, "/events", body)
		req.Header.Set("Content-Type", contentType)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusBadRequest, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "Image file is required", got["message"])
		assert.Nil(t, svc.lastCreated)
	})

	t.Run("bad form", func(t *testing.T) {
		svc := &fakeEventService{}
		req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader("not a form"))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=missing")
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusBadRequest, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "Invalid Form Data", got["message"])
	})

	t.Run("duplicate slug", func(t *testing.T) {
		svc := &fakeEventService{createErr: domain.ErrDuplicateSlug}
		body, contentType := multipartEvent(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/events", body)
		req.Header.Set("Content-Type", contentType)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusConflict, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "An event with this slug already exists", got["message"])
	})

	t.Run("upload failure", func(t *testing.T) {
		svc := &fakeEventService{createErr: fmt.Errorf("%w: provider unavailable", domain.ErrUploadFailed)}
		body, contentType := multipartEvent(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/events", body)
		req.Header.Set("Content-Type", contentType)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusInternalServerError, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "Image upload failed", got["message"])
	})

	t.Run("persistence failure", func(t *testing.T) {
		svc := &fakeEventService{createErr: fmt.Errorf("create event: connection lost")}
		body, contentType := multipartEvent(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/events", body)
		req.Header.Set("Content-Type", contentType)
		res := httptest.NewRecorder()
		newEventRouter(svc).ServeHTTP(res, req)

		require.Equal(t, http.StatusInternalServerError, res.Code)
		got := decodeBody(t, res)
		assert.Equal(t, "Event Creation Failed", got["message"])
	})
}
