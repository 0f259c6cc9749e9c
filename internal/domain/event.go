package domain

import (
	"context"
	"time"
)

// Event represents one publishable developer event (hackathon, meetup,
// conference). Slug is the human-readable unique key used in URLs and is
// always stored normalized (lowercase, trimmed).
type Event struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Organizer   string    `json:"organizer"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Venue       string    `json:"venue"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Image       string    `json:"image"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImageUpload is the raw image payload submitted with an event creation.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// EventService defines event use cases exposed to the delivery layer.
type EventService interface {
	// CreateEvent uploads the image to the media store and persists the
	// event with the returned URL. The upload completes before the write
	// is attempted; a failed upload leaves no event behind.
	CreateEvent(ctx context.Context, event *Event, image *ImageUpload) error
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
}

// MediaStore durably stores an uploaded image and returns a retrievable URL.
type MediaStore interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
