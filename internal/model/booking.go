package model

import (
	"strings"
	"time"
)

// Booking represents a reservation of a spot at an event. A booking holds a
// reference to its event by identity; the event's lifetime is independent
// of any booking.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"` // stored lower-cased
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// CreateBookingRequest represents a request to book a spot at an event
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// Validate checks the request's field requirements in pipeline order:
// email first, then event_id. Checking stops at the first rule that fails.
func (r *CreateBookingRequest) Validate() []FieldError {
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if email == "" {
		return []FieldError{{Field: "email", Message: "email is required"}}
	}
	if !isValidEmail(email) {
		return []FieldError{{Field: "email", Message: "email must be a valid email address"}}
	}
	if strings.TrimSpace(r.EventID) == "" {
		return []FieldError{{Field: "event_id", Message: "event_id is required"}}
	}
	return nil
}

// Normalize validates the request and returns the stored form of the
// booking, with the email trimmed and lower-cased. Whether the referenced
// event exists is the service layer's concern, not this pipeline's.
func (r *CreateBookingRequest) Normalize() (*Booking, error) {
	if errors := r.Validate(); len(errors) > 0 {
		return nil, NewValidationError(errors)
	}
	return &Booking{
		EventID: strings.TrimSpace(r.EventID),
		Email:   strings.TrimSpace(strings.ToLower(r.Email)),
	}, nil
}

func isValidEmail(email string) bool {
	// Basic shape check: a local part, one @, a domain, no whitespace
	if email == "" {
		return false
	}
	if strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	if atIndex >= len(email)-1 {
		return false
	}
	return true
}
