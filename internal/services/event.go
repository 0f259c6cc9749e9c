package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"devevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	media          domain.MediaStore
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, media domain.MediaStore, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		media:          media,
		contextTimeout: timeout,
	}
}

// CreateEvent validates the event, uploads the image, and persists the record.
// The upload must complete before the write is attempted; the stored image URL
// is a precondition for a valid event, never written speculatively.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, image *domain.ImageUpload) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if image == nil || len(image.Data) == 0 {
		return &domain.ValidationError{Reason: "Image file is required"}
	}

	event.Slug = strings.ToLower(strings.TrimSpace(event.Slug))
	if event.Slug == "" {
		event.Slug = domain.Slugify(event.Title)
	}
	slug, err := domain.ValidateSlug(event.Slug)
	if err != nil {
		return err
	}
	event.Slug = slug

	url, err := s.media.Upload(ctx, image.Filename, image.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	if url == "" {
		return domain.ErrUploadFailed
	}
	event.Image = url

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// GetEventBySlug validates the slug before any I/O, then performs an
// exact-match lookup on the normalized value. A missing record is
// domain.ErrNotFound, distinct from validation and store failures.
func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	validated, err := domain.ValidateSlug(slug)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetBySlug(ctx, validated)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}
