package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Event represents a published event listing
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"` // derived from Title, unique across events
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"` // canonical UTC calendar date, YYYY-MM-DD
	Time        string    `json:"time"` // canonical 24-hour clock, HH:mm
	Mode        string    `json:"mode"` // in_person, online, hybrid
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// EventMode constants
const (
	EventModeInPerson = "in_person"
	EventModeOnline   = "online"
	EventModeHybrid   = "hybrid"
)

// Canonical layouts for the normalized date and time fields
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Organizer   string   `json:"organizer"`
	Agenda      []string `json:"agenda"`
	Tags        []string `json:"tags"`
}

// UpdateEventRequest represents a request to update an event. Nil fields
// keep their persisted values.
type UpdateEventRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Overview    *string  `json:"overview,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Venue       *string  `json:"venue,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Mode        *string  `json:"mode,omitempty"`
	Audience    *string  `json:"audience,omitempty"`
	Organizer   *string  `json:"organizer,omitempty"`
	Agenda      []string `json:"agenda,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Validate checks the request's field requirements in pipeline order:
// required strings first, then agenda, then tags. Checking stops at the
// first rule that fails, so the returned errors always belong to a single
// rule; within the required-string rule every failing field is reported.
func (r *CreateEventRequest) Validate() []FieldError {
	required := []struct {
		field string
		value string
	}{
		{"title", r.Title},
		{"description", r.Description},
		{"overview", r.Overview},
		{"image", r.Image},
		{"venue", r.Venue},
		{"location", r.Location},
		{"date", r.Date},
		{"time", r.Time},
		{"mode", r.Mode},
		{"audience", r.Audience},
		{"organizer", r.Organizer},
	}
	var errors []FieldError
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errors = append(errors, FieldError{Field: f.field, Message: f.field + " is required"})
		}
	}
	if len(errors) > 0 {
		return errors
	}
	if len(r.Agenda) == 0 {
		return []FieldError{{Field: "agenda", Message: "agenda must have at least one item"}}
	}
	if len(r.Tags) == 0 {
		return []FieldError{{Field: "tags", Message: "tags must have at least one item"}}
	}
	return nil
}

// Normalize validates the request and derives the stored form of the event:
// trimmed strings, a slug from the title, the canonical UTC date, and the
// canonical 24-hour time. It returns either a fully normalized Event or a
// *ValidationError; on failure no part of the normalization is applied.
// The request itself is never mutated, so Normalize is safe to retry.
func (r *CreateEventRequest) Normalize() (*Event, error) {
	if errors := r.Validate(); len(errors) > 0 {
		return nil, NewValidationError(errors)
	}

	title := strings.TrimSpace(r.Title)
	slug := Slugify(title)

	date, ok := NormalizeDate(r.Date)
	if !ok {
		return nil, NewValidationError([]FieldError{{Field: "date", Message: "invalid date"}})
	}
	clock, ok := NormalizeTime(r.Time)
	if !ok {
		return nil, NewValidationError([]FieldError{{Field: "time", Message: "invalid time"}})
	}

	return &Event{
		Title:       title,
		Slug:        slug,
		Description: strings.TrimSpace(r.Description),
		Overview:    strings.TrimSpace(r.Overview),
		Image:       strings.TrimSpace(r.Image),
		Venue:       strings.TrimSpace(r.Venue),
		Location:    strings.TrimSpace(r.Location),
		Date:        date,
		Time:        clock,
		Mode:        strings.TrimSpace(r.Mode),
		Audience:    strings.TrimSpace(r.Audience),
		Organizer:   strings.TrimSpace(r.Organizer),
		Agenda:      append([]string(nil), r.Agenda...),
		Tags:        append([]string(nil), r.Tags...),
	}, nil
}

// Apply merges the request over the persisted event and runs the same
// pipeline as a create. The slug is recomputed only when the title changed
// or the persisted slug is missing; otherwise the stored slug survives.
func (r *UpdateEventRequest) Apply(current *Event) (*Event, error) {
	merged := CreateEventRequest{
		Title:       current.Title,
		Description: current.Description,
		Overview:    current.Overview,
		Image:       current.Image,
		Venue:       current.Venue,
		Location:    current.Location,
		Date:        current.Date,
		Time:        current.Time,
		Mode:        current.Mode,
		Audience:    current.Audience,
		Organizer:   current.Organizer,
		Agenda:      current.Agenda,
		Tags:        current.Tags,
	}
	if r.Title != nil {
		merged.Title = *r.Title
	}
	if r.Description != nil {
		merged.Description = *r.Description
	}
	if r.Overview != nil {
		merged.Overview = *r.Overview
	}
	if r.Image != nil {
		merged.Image = *r.Image
	}
	if r.Venue != nil {
		merged.Venue = *r.Venue
	}
	if r.Location != nil {
		merged.Location = *r.Location
	}
	if r.Date != nil {
		merged.Date = *r.Date
	}
	if r.Time != nil {
		merged.Time = *r.Time
	}
	if r.Mode != nil {
		merged.Mode = *r.Mode
	}
	if r.Audience != nil {
		merged.Audience = *r.Audience
	}
	if r.Organizer != nil {
		merged.Organizer = *r.Organizer
	}
	if r.Agenda != nil {
		merged.Agenda = r.Agenda
	}
	if r.Tags != nil {
		merged.Tags = r.Tags
	}

	normalized, err := merged.Normalize()
	if err != nil {
		return nil, err
	}
	normalized.ID = current.ID
	normalized.CreatedOn = current.CreatedOn
	normalized.UpdatedOn = current.UpdatedOn
	if normalized.Title == current.Title && current.Slug != "" {
		normalized.Slug = current.Slug
	}
	return normalized, nil
}

// slugPattern matches every maximal run of characters that cannot appear
// in a slug.
var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL identifier for a title: lower-cased, every run
// of characters outside [a-z0-9] collapsed to a single hyphen, leading and
// trailing hyphens dropped.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// NormalizeDate rewrites value as the UTC calendar date of the instant it
// names, in YYYY-MM-DD form. ok is false when value does not parse as a
// date.
func NormalizeDate(value string) (string, bool) {
	parsed, err := dateparse.ParseAny(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return parsed.UTC().Format(DateLayout), true
}

// NormalizeTime rewrites a clock reading to the canonical two-digit-hour
// HH:mm form. Colon-separated H:mm and HH:mm are tried first, then the
// compact Hmm and HHmm; hours run 0-23 and minutes 00-59. A two-digit hour
// above 23 is rejected, never wrapped. ok is false when value fits neither
// shape.
func NormalizeTime(value string) (string, bool) {
	v := strings.TrimSpace(value)
	var hourPart, minutePart string
	if i := strings.IndexByte(v, ':'); i >= 0 {
		hourPart, minutePart = v[:i], v[i+1:]
		if len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
			return "", false
		}
	} else {
		switch len(v) {
		case 3:
			hourPart, minutePart = v[:1], v[1:]
		case 4:
			hourPart, minutePart = v[:2], v[2:]
		default:
			return "", false
		}
	}
	if !isDigits(hourPart) || !isDigits(minutePart) {
		return "", false
	}
	hour, _ := strconv.Atoi(hourPart)
	minute, _ := strconv.Atoi(minutePart)
	if hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
