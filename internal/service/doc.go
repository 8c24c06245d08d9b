// Package service implements the business logic layer for the Gala API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between callers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrEventNotFound = errors.New("event not found")
//	    ErrSlugExists    = errors.New("an event with this slug already exists")
//	)
//
// Validation failures surface as *model.ValidationError carrying one entry
// per offending field. A booking that names a nonexistent event fails with
// ErrEventNotFound before anything is written; a storage outage during that
// check propagates as a wrapped error instead, so the two are never
// conflated.
//
// # Example Usage
//
//	service := NewBookingService(BookingServiceConfig{
//	    Repo:   bookingRepository,
//	    Events: eventService,
//	})
//	booking, err := service.Create(ctx, &model.CreateBookingRequest{
//	    EventID: "events:abc123",
//	    Email:   "guest@example.com",
//	})
package service
