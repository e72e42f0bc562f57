package queries

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	CancelNote   *string   `json:"cancel_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  int       `json:"duration_min"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type FacilityView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type ScheduleView struct {
	FacilityID uuid.UUID          `json:"facility_id"`
	Date       string             `json:"date"`
	Slots      []booking.TimeSlot `json:"slots"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationListItem, error)
	ConfirmedIntervals(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]booking.BookedInterval, error)
}

type FacilityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FacilityView, error)
	List(ctx context.Context) ([]*FacilityView, error)
}
