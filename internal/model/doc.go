// Package model defines domain entities and data structures for the Gala API.
//
// The model package contains the struct definitions for domain objects,
// request types, and error types. Models are used across all layers of the
// application.
//
// # Domain Entities
//
//   - Event: a published event listing with a derived slug and canonical
//     date and time fields
//   - Booking: a reservation of a spot at an event, referencing the event
//     by identity
//
// # Normalization Pipeline
//
// Requests are turned into storable entities by an explicit pipeline rather
// than by hooks hidden in the storage layer. CreateEventRequest.Normalize
// runs the event rules in a fixed order: required string fields, agenda,
// tags, slug derivation, date normalization, time normalization. Later
// rules never run once an earlier rule has failed, and a failed pipeline
// applies nothing.
//
// The derived pieces are exported as plain functions so they can be used
// and tested in isolation:
//
//	model.Slugify("My Event! 2024")   // "my-event-2024"
//	model.NormalizeDate("March 5, 2024") // "2024-03-05", true
//	model.NormalizeTime("930")        // "09:30", true
//
// # JSON Serialization
//
// All models use json struct tags matching their stored field names:
//
//	type Booking struct {
//	    ID      string `json:"id"`
//	    EventID string `json:"event_id"`
//	    Email   string `json:"email"`
//	}
//
// # Error Types
//
// Validation failures are field-attributed. A failed pipeline returns a
// *ValidationError aggregating one FieldError per failing field; callers
// recover it with errors.As.
package model
