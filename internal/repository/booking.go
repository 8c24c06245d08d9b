package repository

import (
	"context"

	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/model"
)

// BookingRepository handles booking data access
type BookingRepository struct {
	db database.Database
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists a new booking. The booking's ID is minted client-side
// when absent, and ID, CreatedOn, and UpdatedOn are populated from the
// stored record. Event existence is the caller's concern; the stored
// event_id is a plain string reference, not a record link.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if booking.ID == "" {
		booking.ID = newRecordID("bookings")
	}

	query := `
		CREATE type::record($id) CONTENT {
			event_id: $event_id,
			email: $email,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"id":       booking.ID,
		"event_id": booking.EventID,
		"email":    booking.Email,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	booking.ID = created.ID
	booking.CreatedOn = created.CreatedOn
	booking.UpdatedOn = created.UpdatedOn
	return nil
}
