package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create persists a new event. The event's ID is minted client-side when
// absent, and ID, CreatedOn, and UpdatedOn are populated from the stored
// record. A slug collision is reported as database.ErrDuplicate.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if event.ID == "" {
		event.ID = newRecordID("events")
	}

	query := `
		CREATE type::record($id) CONTENT {
			title: $title,
			slug: $slug,
			description: $description,
			overview: $overview,
			image: $image,
			venue: $venue,
			location: $location,
			date: $date,
			time: $time,
			mode: $mode,
			audience: $audience,
			organizer: $organizer,
			agenda: $agenda,
			tags: $tags,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"id":          event.ID,
		"title":       event.Title,
		"slug":        event.Slug,
		"description": event.Description,
		"overview":    event.Overview,
		"image":       event.Image,
		"venue":       event.Venue,
		"location":    event.Location,
		"date":        event.Date,
		"time":        event.Time,
		"mode":        event.Mode,
		"audience":    event.Audience,
		"organizer":   event.Organizer,
		"agenda":      event.Agenda,
		"tags":        event.Tags,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: slug already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	event.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves an event by ID. Returns nil when no such event exists.
func (r *EventRepository) Get(ctx context.Context, eventID string) (*model.Event, error) {
	// Direct record access - more efficient than WHERE id =
	query := `SELECT * FROM type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseEventResult(result)
}

// Update rewrites the stored fields of an event and returns the record as
// persisted. Reports database.ErrNotFound when the event no longer exists
// and database.ErrDuplicate on a slug collision.
func (r *EventRepository) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		UPDATE events SET
			title = $title,
			slug = $slug,
			description = $description,
			overview = $overview,
			image = $image,
			venue = $venue,
			location = $location,
			date = $date,
			time = $time,
			mode = $mode,
			audience = $audience,
			organizer = $organizer,
			agenda = $agenda,
			tags = $tags,
			updated_on = time::now()
		WHERE id = type::record($event_id) RETURN AFTER
	`

	vars := map[string]interface{}{
		"event_id":    event.ID,
		"title":       event.Title,
		"slug":        event.Slug,
		"description": event.Description,
		"overview":    event.Overview,
		"image":       event.Image,
		"venue":       event.Venue,
		"location":    event.Location,
		"date":        event.Date,
		"time":        event.Time,
		"mode":        event.Mode,
		"audience":    event.Audience,
		"organizer":   event.Organizer,
		"agenda":      event.Agenda,
		"tags":        event.Tags,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("%w: slug already exists", database.ErrDuplicate)
		}
		return nil, err
	}

	return parseEventResult(result)
}

// ExistsByID reports whether an event record exists
func (r *EventRepository) ExistsByID(ctx context.Context, eventID string) (bool, error) {
	query := `SELECT id FROM type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	_, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func parseEventResult(result interface{}) (*model.Event, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, err := database.UnmarshalResult[map[string]interface{}](result)
	if err != nil {
		return nil, err
	}

	// The Go client returns ID as an object, need to convert to string
	if id, ok := data["id"]; ok {
		data["id"] = convertSurrealID(id)
	}

	// Convert to JSON and back to struct for proper parsing
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var event model.Event
	if err := json.Unmarshal(jsonBytes, &event); err != nil {
		return nil, err
	}

	return &event, nil
}
