package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, eventID string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) (*model.Event, error)
	ExistsByID(ctx context.Context, eventID string) (bool, error)
}

// EventService handles event business logic
type EventService struct {
	repo EventRepository
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	Repo EventRepository
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	return &EventService{repo: cfg.Repo}
}

// Create validates and normalizes the request, then persists the event.
// Returns *model.ValidationError when the request fails validation and
// ErrSlugExists when the derived slug collides with an existing event.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// Get retrieves an event by ID
func (s *EventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Update applies a partial update to an existing event. Replacement
// fields pass through the same normalization as Create, and the slug is
// re-derived from the title only when the title actually changed.
func (s *EventService) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
	current, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	updated, err := req.Apply(current)
	if err != nil {
		return nil, err
	}

	persisted, err := s.repo.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrSlugExists
		}
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return persisted, nil
}

// ExistsByID reports whether an event exists
func (s *EventService) ExistsByID(ctx context.Context, eventID string) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}
	return exists, nil
}
