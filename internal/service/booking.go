package service

import (
	"context"
	"fmt"

	"github.com/forgo/gala/api/internal/model"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
}

// EventServiceForBooking is the event service interface used to verify
// that a booking references a real event
type EventServiceForBooking interface {
	ExistsByID(ctx context.Context, eventID string) (bool, error)
}

// BookingService handles booking business logic
type BookingService struct {
	repo   BookingRepository
	events EventServiceForBooking
}

// BookingServiceConfig holds configuration for the booking service
type BookingServiceConfig struct {
	Repo   BookingRepository
	Events EventServiceForBooking
}

// NewBookingService creates a new booking service
func NewBookingService(cfg BookingServiceConfig) *BookingService {
	return &BookingService{
		repo:   cfg.Repo,
		events: cfg.Events,
	}
}

// Create validates the request and persists a booking for an existing
// event. The referenced event is checked first: a missing event fails
// with ErrEventNotFound and nothing is written, while a failed existence
// check propagates as a storage error rather than being reported as a
// missing event.
func (s *BookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	booking, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	exists, err := s.events.ExistsByID(ctx, booking.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify event reference: %w", err)
	}
	if !exists {
		return nil, ErrEventNotFound
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}
