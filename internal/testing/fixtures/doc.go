// Package fixtures provides test data factories for the Gala API.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert rows directly with
// raw queries so integration tests never depend on the repositories they
// exercise.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	event := f.CreateEvent(t)            // Default event
//	booking := f.CreateBooking(t, event) // Booking referencing event
//
// # Customization
//
// Use option functions for customization:
//
//	event := f.CreateEvent(t, WithEventSlug("taken-slug"))
//	booking := f.CreateBooking(t, event, WithBookingEmail("guest@example.com"))
//
// # Random Data
//
// Unique identifiers are generated automatically:
//
//	event1 := f.CreateEvent(t) // fixture-event-abc123
//	event2 := f.CreateEvent(t) // fixture-event-def456
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
