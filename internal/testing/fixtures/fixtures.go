package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/model"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// Event Fixtures
// ============================================================================

// EventOpts customizes event creation
type EventOpts struct {
	Title string
	Slug  string
	Date  string
	Time  string
	Mode  string
}

// WithEventTitle sets the event title
func WithEventTitle(title string) func(*EventOpts) {
	return func(o *EventOpts) {
		o.Title = title
	}
}

// WithEventSlug sets the event slug
func WithEventSlug(slug string) func(*EventOpts) {
	return func(o *EventOpts) {
		o.Slug = slug
	}
}

// CreateEvent creates an event with optional customizations
func (f *Factory) CreateEvent(t *testing.T, opts ...func(*EventOpts)) *model.Event {
	t.Helper()

	id := randomID()
	o := &EventOpts{
		Title: fmt.Sprintf("Fixture Event %s", id),
		Slug:  fmt.Sprintf("fixture-event-%s", id),
		Date:  "2025-06-01",
		Time:  "19:00",
		Mode:  model.EventModeInPerson,
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE events CONTENT {
			title: $title,
			slug: $slug,
			description: "A fixture event for integration tests.",
			overview: "Created by the fixtures factory.",
			image: "https://cdn.test.local/fixture.jpg",
			venue: "Fixture Hall",
			location: "Testville, TS",
			date: $date,
			time: $time,
			mode: $mode,
			audience: "Everyone welcome",
			organizer: "Fixtures Factory",
			agenda: ["Doors open", "Main activity"],
			tags: ["fixture"],
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"title": o.Title,
		"slug":  o.Slug,
		"date":  o.Date,
		"time":  o.Time,
		"mode":  o.Mode,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}

	return parseEventResult(t, results)
}

// ============================================================================
// Booking Fixtures
// ============================================================================

// BookingOpts customizes booking creation
type BookingOpts struct {
	Email string
}

// WithBookingEmail sets the booking email
func WithBookingEmail(email string) func(*BookingOpts) {
	return func(o *BookingOpts) {
		o.Email = email
	}
}

// CreateBooking creates a booking referencing the given event
func (f *Factory) CreateBooking(t *testing.T, event *model.Event, opts ...func(*BookingOpts)) *model.Booking {
	t.Helper()

	o := &BookingOpts{
		Email: fmt.Sprintf("guest_%s@test.local", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	query := `
		CREATE bookings CONTENT {
			event_id: $event_id,
			email: $email,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id": event.ID,
		"email":    o.Email,
	}

	results, err := f.db.Query(ctx(), query, vars)
	if err != nil {
		t.Fatalf("fixtures: failed to create booking: %v", err)
	}

	return parseBookingResult(t, results)
}

// ============================================================================
// Result Parsing
// ============================================================================

func parseEventResult(t *testing.T, results []interface{}) *model.Event {
	t.Helper()
	data := extractFirstResult(t, results)
	return &model.Event{
		ID:          getString(data, "id"),
		Title:       getString(data, "title"),
		Slug:        getString(data, "slug"),
		Description: getString(data, "description"),
		Overview:    getString(data, "overview"),
		Image:       getString(data, "image"),
		Venue:       getString(data, "venue"),
		Location:    getString(data, "location"),
		Date:        getString(data, "date"),
		Time:        getString(data, "time"),
		Mode:        getString(data, "mode"),
		Audience:    getString(data, "audience"),
		Organizer:   getString(data, "organizer"),
		Agenda:      getStringSlice(data, "agenda"),
		Tags:        getStringSlice(data, "tags"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}
}

func parseBookingResult(t *testing.T, results []interface{}) *model.Booking {
	t.Helper()
	data := extractFirstResult(t, results)
	return &model.Booking{
		ID:        getString(data, "id"),
		EventID:   getString(data, "event_id"),
		Email:     getString(data, "email"),
		CreatedOn: getTime(data, "created_on"),
		UpdatedOn: getTime(data, "updated_on"),
	}
}

// ============================================================================
// Data Extraction Helpers
// ============================================================================

func extractFirstResult(t *testing.T, results []interface{}) map[string]interface{} {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("fixtures: no results returned")
	}

	// Handle SurrealDB response wrapper
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", results[0])
	}

	result, ok := resp["result"]
	if !ok {
		t.Fatal("fixtures: no result in response")
	}

	// Handle array result
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			t.Fatal("fixtures: empty result array")
		}
		data, ok := arr[0].(map[string]interface{})
		if !ok {
			t.Fatalf("fixtures: unexpected array item type: %T", arr[0])
		}
		return data
	}

	// Handle single result
	data, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("fixtures: unexpected result type: %T", result)
	}
	return data
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	// Handle SurrealDB 3 record ID type - could be a struct or map
	if v := data[key]; v != nil {
		// Try to get the ID as a map with "tb" (table) and "id" fields
		if m, ok := v.(map[string]interface{}); ok {
			if tb, ok := m["tb"].(string); ok {
				if id := m["id"]; id != nil {
					return fmt.Sprintf("%s:%v", tb, id)
				}
			}
		}
		// Fallback: use string conversion but fix the format if needed
		s := fmt.Sprintf("%v", v)
		// Convert "{table id}" to "table:id"
		if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
			inner := s[1 : len(s)-1]
			for i, c := range inner {
				if c == ' ' {
					return inner[:i] + ":" + inner[i+1:]
				}
			}
		}
		return s
	}
	return ""
}

func getStringSlice(data map[string]interface{}, key string) []string {
	arr, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getTime(data map[string]interface{}, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v
	case string:
		t, _ := time.Parse(time.RFC3339Nano, v)
		return t
	}
	return time.Time{}
}
