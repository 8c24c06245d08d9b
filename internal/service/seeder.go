package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/model"
)

// SeederService generates mock data for testing and development.
// Seeded records flow through the regular event and booking services, so
// everything written passes the same validation and normalization as
// production traffic.
type SeederService struct {
	db       database.Database
	events   *EventService
	bookings *BookingService
}

// NewSeederService creates a new seeder service
func NewSeederService(db database.Database, events *EventService, bookings *BookingService) *SeederService {
	return &SeederService{
		db:       db,
		events:   events,
		bookings: bookings,
	}
}

// SeedEventsRequest configures event seeding
type SeedEventsRequest struct {
	Count int    `json:"count"`
	Mode  string `json:"mode,omitempty"` // "in_person", "online", "hybrid"; random when empty
	// Prefix for seeded event titles to identify them for cleanup
	Prefix string `json:"prefix,omitempty"`
}

// SeedBookingsRequest configures booking seeding
type SeedBookingsRequest struct {
	Count   int    `json:"count"`
	EventID string `json:"event_id,omitempty"` // If empty, spreads bookings across seeded events
	Prefix  string `json:"prefix,omitempty"`
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Created  int      `json:"created"`
	IDs      []string `json:"ids"`
	Duration int64    `json:"duration_ms"`
}

// CleanupResult contains the results of a cleanup operation
type CleanupResult struct {
	Deleted  int   `json:"deleted"`
	Duration int64 `json:"duration_ms"`
}

// Sample data for realistic generation
var (
	eventTitles = []string{
		"Weekly Meetup", "Game Night", "Hiking Trip", "Coffee Chat",
		"Movie Night", "Dinner Party", "Beach Day", "Museum Visit",
		"Picnic in the Park", "Karaoke Night", "Trivia Tuesday", "Book Discussion",
		"Wine Tasting", "Cooking Class", "Art Workshop", "Photography Walk",
		"Yoga Session", "Running Club", "Cycling Adventure", "Board Game Marathon",
	}
	eventVenues = []string{
		"The Grand Hall", "Riverside Pavilion", "Community Center", "The Loft",
		"Harbor View Terrace", "Old Town Theater", "Maker Space", "Garden Atrium",
	}
	eventLocations = []string{
		"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
		"Portland, OR", "Chicago, IL", "Denver, CO", "Boston, MA",
	}
	eventOrganizers = []string{
		"Community Events Team", "Downtown Collective", "The Social Club",
		"Neighborhood Alliance", "Makers Guild", "City Arts Council",
	}
	eventAudiences = []string{
		"Everyone welcome", "Adults 18+", "Families with kids", "Beginners",
		"Members and guests", "Professionals",
	}
	eventOverviews = []string{
		"An easygoing get-together for regulars and newcomers alike.",
		"Hands-on, social, and open to all experience levels.",
		"A chance to unwind, meet people, and try something new.",
		"Local favorites, good company, and plenty of conversation.",
	}
	agendaItems = []string{
		"Doors open and welcome", "Introductions", "Main activity",
		"Group discussion", "Refreshments", "Wrap-up and next steps",
		"Networking", "Q&A session", "Closing remarks",
	}
	tagSets = [][]string{
		{"social", "community"},
		{"outdoors", "active"},
		{"food", "drinks"},
		{"arts", "culture"},
		{"games", "casual"},
		{"learning", "workshop"},
	}
	// Deliberately mixed formats so seeding exercises time normalization
	seedTimes = []string{"9:30", "10:00", "1130", "14:00", "1730", "18:30", "19:00", "2000"}

	eventModes = []string{model.EventModeInPerson, model.EventModeOnline, model.EventModeHybrid}
)

// SeedEvents creates mock events through the event service
func (s *SeederService) SeedEvents(ctx context.Context, req SeedEventsRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Count <= 0 || req.Count > 100 {
		return nil, fmt.Errorf("count must be between 1 and 100")
	}

	if req.Prefix == "" {
		req.Prefix = "seed_"
	}

	ids := make([]string, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		mode := req.Mode
		if mode == "" {
			mode = eventModes[mrand.IntN(len(eventModes))]
		}

		// Random suffix keeps derived slugs collision-free across runs
		title := fmt.Sprintf("%s%s %s", req.Prefix, eventTitles[mrand.IntN(len(eventTitles))], randomID())
		venue := eventVenues[mrand.IntN(len(eventVenues))]

		createReq := &model.CreateEventRequest{
			Title:       title,
			Description: fmt.Sprintf("A community gathering at %s.", venue),
			Overview:    eventOverviews[mrand.IntN(len(eventOverviews))],
			Image:       fmt.Sprintf("https://cdn.test.local/events/%s.jpg", randomID()),
			Venue:       venue,
			Location:    eventLocations[mrand.IntN(len(eventLocations))],
			Date:        time.Now().AddDate(0, 0, mrand.IntN(60)+1).Format("January 2, 2006"),
			Time:        seedTimes[mrand.IntN(len(seedTimes))],
			Mode:        mode,
			Audience:    eventAudiences[mrand.IntN(len(eventAudiences))],
			Organizer:   eventOrganizers[mrand.IntN(len(eventOrganizers))],
			Agenda:      sampleAgenda(),
			Tags:        tagSets[mrand.IntN(len(tagSets))],
		}

		event, err := s.events.Create(ctx, createReq)
		if err != nil {
			return nil, fmt.Errorf("failed to seed event: %w", err)
		}
		ids = append(ids, event.ID)
	}

	return &SeedResult{
		Created:  len(ids),
		IDs:      ids,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// SeedBookings creates mock bookings through the booking service
func (s *SeederService) SeedBookings(ctx context.Context, req SeedBookingsRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Count <= 0 || req.Count > 1000 {
		return nil, fmt.Errorf("count must be between 1 and 1000")
	}

	if req.Prefix == "" {
		req.Prefix = "seed_"
	}

	// Get events to book against
	var eventIDs []string
	if req.EventID != "" {
		eventIDs = []string{req.EventID}
	} else {
		eventQuery := fmt.Sprintf(`SELECT id FROM events WHERE title CONTAINS '%s' LIMIT 10`, req.Prefix)
		eventResults, err := s.db.Query(ctx, eventQuery, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to query events: %w", err)
		}
		eventIDs = extractIDs(eventResults)
	}

	if len(eventIDs) == 0 {
		// Create an event first
		eventResult, err := s.SeedEvents(ctx, SeedEventsRequest{
			Count:  1,
			Prefix: req.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed event for bookings: %w", err)
		}
		eventIDs = eventResult.IDs
	}

	ids := make([]string, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		eventID := eventIDs[i%len(eventIDs)]
		email := fmt.Sprintf("%s%s@test.local", req.Prefix, randomID())

		booking, err := s.bookings.Create(ctx, &model.CreateBookingRequest{
			EventID: eventID,
			Email:   email,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed booking: %w", err)
		}
		ids = append(ids, booking.ID)
	}

	return &SeedResult{
		Created:  len(ids),
		IDs:      ids,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Cleanup removes seeded data matching the given prefix. Bookings and
// events are deleted in a single transaction so a partial cleanup cannot
// leave bookings pointing at deleted events.
func (s *SeederService) Cleanup(ctx context.Context, prefix string) (*CleanupResult, error) {
	start := time.Now()

	if prefix == "" {
		prefix = "seed_"
	}

	deleted := s.countByPrefix(ctx, "bookings", "email", prefix) +
		s.countByPrefix(ctx, "events", "title", prefix)

	batch := database.NewAtomicBatch()
	batch.Add(fmt.Sprintf(`DELETE bookings WHERE email CONTAINS '%s'`, prefix), nil)
	batch.Add(fmt.Sprintf(`DELETE events WHERE title CONTAINS '%s'`, prefix), nil)

	if err := batch.Execute(ctx, s.db); err != nil {
		return nil, fmt.Errorf("failed to delete seeded records: %w", err)
	}

	return &CleanupResult{
		Deleted:  deleted,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Helper functions

func (s *SeederService) countByPrefix(ctx context.Context, table, field, prefix string) int {
	query := fmt.Sprintf(`SELECT count() AS total FROM %s WHERE %s CONTAINS '%s' GROUP ALL`, table, field, prefix)
	result, err := s.db.QueryOne(ctx, query, nil)
	if err != nil {
		return 0
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return 0
	}

	switch n := data["total"].(type) {
	case float64:
		return int(n)
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func sampleAgenda() []string {
	count := mrand.IntN(3) + 2
	agenda := make([]string, 0, count)
	for _, idx := range mrand.Perm(len(agendaItems))[:count] {
		agenda = append(agenda, agendaItems[idx])
	}
	return agenda
}

func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractIDs(results []interface{}) []string {
	var ids []string
	if len(results) == 0 {
		return ids
	}

	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return ids
	}

	result, ok := resp["result"]
	if !ok {
		return ids
	}

	arr, ok := result.([]interface{})
	if !ok {
		return ids
	}

	for _, item := range arr {
		data, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if id := formatID(data["id"]); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func formatID(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	// Handle SurrealDB 3 record ID type
	if m, ok := v.(map[string]interface{}); ok {
		if tb, ok := m["tb"].(string); ok {
			if id := m["id"]; id != nil {
				return fmt.Sprintf("%s:%v", tb, id)
			}
		}
	}

	// Fallback: convert "{table id}" to "table:id"
	s := fmt.Sprintf("%v", v)
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
