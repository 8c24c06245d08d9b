// End-to-end acceptance tests for the events feature. These run against a
// real SurrealDB instance and are skipped unless TEST_DB_URL is set.
package service_test

import (
	"context"
	"testing"

	"github.com/forgo/gala/api/internal/model"
	"github.com/forgo/gala/api/internal/repository"
	"github.com/forgo/gala/api/internal/service"
	"github.com/forgo/gala/api/internal/testing/fixtures"
	"github.com/forgo/gala/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Events
DOMAIN: Event Management

ACCEPTANCE CRITERIA:
===================

AC-EVENT-001: Create Event
  GIVEN a complete event request
  WHEN the event is created
  THEN all string fields are trimmed
  AND the slug is derived from the title
  AND the date is stored as YYYY-MM-DD
  AND the time is stored as HH:mm

AC-EVENT-002: Create Event - Duplicate Slug
  GIVEN an event whose slug is already stored
  WHEN a second event with the same title is created
  THEN the request fails with slug exists error
  AND no second record is written

AC-EVENT-003: Create Event - Validation
  GIVEN a request with missing or malformed fields
  WHEN the event is created
  THEN the request fails with a field-attributed validation error
  AND nothing is written

AC-EVENT-004: Update Event
  GIVEN a stored event
  WHEN its title is updated
  THEN the slug is recomputed
  WHEN other fields are updated
  THEN the stored slug is preserved

AC-EVENT-005: Event Existence
  GIVEN a stored event
  WHEN existence is checked by id
  THEN true is returned for the stored id and false for an unknown id
*/

// createEventService wires an EventService against the test database
func createEventService(t *testing.T, tdb *testdb.TestDB) *service.EventService {
	t.Helper()

	eventRepo := repository.NewEventRepository(tdb.DB)

	return service.NewEventService(service.EventServiceConfig{
		Repo: eventRepo,
	})
}

func completeEventRequest(title string) *model.CreateEventRequest {
	return &model.CreateEventRequest{
		Title:       title,
		Description: "An evening of music and fundraising.",
		Overview:    "Doors at seven, dinner at eight.",
		Image:       "https://cdn.test.local/gala.jpg",
		Venue:       "The Grand Hall",
		Location:    "San Francisco, CA",
		Date:        "March 5, 2025",
		Time:        "930",
		Mode:        model.EventModeInPerson,
		Audience:    "Members and guests",
		Organizer:   "Community Events Team",
		Agenda:      []string{"Welcome", "Dinner", "Auction"},
		Tags:        []string{"fundraiser", "music"},
	}
}

func TestEvents_Create(t *testing.T) {
	// AC-EVENT-001: Create Event
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService := createEventService(t, tdb)
	ctx := context.Background()

	req := completeEventRequest("  Spring Gala 2025  ")
	req.Venue = "  The Grand Hall  "

	event, err := eventService.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Spring Gala 2025", event.Title)
	assert.Equal(t, "spring-gala-2025", event.Slug)
	assert.Equal(t, "The Grand Hall", event.Venue)
	assert.Equal(t, "2025-03-05", event.Date)
	assert.Equal(t, "09:30", event.Time)
	assert.False(t, event.CreatedOn.IsZero(), "CreatedOn should be set from the stored record")

	// Verify the record round-trips through storage intact
	stored, err := eventService.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Slug, stored.Slug)
	assert.Equal(t, event.Date, stored.Date)
	assert.Equal(t, event.Time, stored.Time)
	assert.Equal(t, []string{"Welcome", "Dinner", "Auction"}, stored.Agenda)
	assert.Equal(t, []string{"fundraiser", "music"}, stored.Tags)
}

func TestEvents_CreateDuplicateSlug(t *testing.T) {
	// AC-EVENT-002: Create Event - Duplicate Slug
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService := createEventService(t, tdb)
	ctx := context.Background()

	f.CreateEvent(t, fixtures.WithEventSlug("spring-gala-2025"))

	_, err := eventService.Create(ctx, completeEventRequest("Spring Gala 2025"))
	require.ErrorIs(t, err, service.ErrSlugExists)
}

func TestEvents_CreateValidation(t *testing.T) {
	// AC-EVENT-003: Create Event - Validation
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService := createEventService(t, tdb)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*model.CreateEventRequest)
		wantField string
	}{
		{
			name:      "blank title",
			mutate:    func(r *model.CreateEventRequest) { r.Title = "   " },
			wantField: "title",
		},
		{
			name:      "empty agenda",
			mutate:    func(r *model.CreateEventRequest) { r.Agenda = nil },
			wantField: "agenda",
		},
		{
			name:      "empty tags",
			mutate:    func(r *model.CreateEventRequest) { r.Tags = []string{} },
			wantField: "tags",
		},
		{
			name:      "unparseable date",
			mutate:    func(r *model.CreateEventRequest) { r.Date = "not-a-date" },
			wantField: "date",
		},
		{
			name:      "out of range time",
			mutate:    func(r *model.CreateEventRequest) { r.Time = "25:00" },
			wantField: "time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := completeEventRequest("Validation Case " + tt.name)
			tt.mutate(req)

			_, err := eventService.Create(ctx, req)

			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.True(t, validationErr.HasField(tt.wantField),
				"expected error on %s, got %+v", tt.wantField, validationErr.Errors)
		})
	}
}

func TestEvents_Update(t *testing.T) {
	// AC-EVENT-004: Update Event
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService := createEventService(t, tdb)
	ctx := context.Background()

	event, err := eventService.Create(ctx, completeEventRequest("Spring Gala 2025"))
	require.NoError(t, err)

	// Title change recomputes the slug
	newTitle := "Autumn Gala 2025"
	updated, err := eventService.Update(ctx, event.ID, &model.UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Autumn Gala 2025", updated.Title)
	assert.Equal(t, "autumn-gala-2025", updated.Slug)

	// Venue change leaves the slug alone
	newVenue := "Riverside Pavilion"
	updated, err = eventService.Update(ctx, event.ID, &model.UpdateEventRequest{Venue: &newVenue})
	require.NoError(t, err)
	assert.Equal(t, "Riverside Pavilion", updated.Venue)
	assert.Equal(t, "autumn-gala-2025", updated.Slug)

	// Replacement date and time pass through normalization
	newDate := "June 1, 2025"
	newTime := "1900"
	updated, err = eventService.Update(ctx, event.ID, &model.UpdateEventRequest{Date: &newDate, Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", updated.Date)
	assert.Equal(t, "19:00", updated.Time)
}

func TestEvents_UpdateMissing(t *testing.T) {
	// AC-EVENT-004 (variation): Update a nonexistent event
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService := createEventService(t, tdb)
	ctx := context.Background()

	newTitle := "Nobody Home"
	_, err := eventService.Update(ctx, "events:doesnotexist", &model.UpdateEventRequest{Title: &newTitle})
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEvents_ExistsByID(t *testing.T) {
	// AC-EVENT-005: Event Existence
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService := createEventService(t, tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)

	exists, err := eventService.ExistsByID(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = eventService.ExistsByID(ctx, "events:doesnotexist")
	require.NoError(t, err)
	assert.False(t, exists)
}
