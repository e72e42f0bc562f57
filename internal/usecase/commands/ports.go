package commands

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.
type FacilitySnapshot struct {
	ID   uuid.UUID
	Name string
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	FacilityID  uuid.UUID
	OwnerID     uuid.UUID
	Start       time.Time
	DurationMin int
	Status      booking.Status
}

func (s ReservationSnapshot) End() time.Time {
	return booking.End(s.Start, s.DurationMin)
}

type ReservationRepository interface {
	Insert(ctx context.Context, res *booking.Reservation) (uuid.UUID, error)
	UpdateDuration(ctx context.Context, id uuid.UUID, durationMin int) error
	SetCanceled(ctx context.Context, id uuid.UUID, note *string) error
}

type CommandReads interface {
	FacilityByID(ctx context.Context, id uuid.UUID) (*FacilitySnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ConfirmedIntervals(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]booking.BookedInterval, error)
}

const (
	EventReservationCreated  = "reservation.created"
	EventReservationCanceled = "reservation.canceled"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	FacilityID    uuid.UUID `json:"facility_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher delivery is best-effort; admission never fails on it.
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}
