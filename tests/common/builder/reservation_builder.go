//go:build unit || e2e

package builder

import (
	"time"

	"facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// baseNow is a fixed reference instant: a Monday at noon UTC, two hours
// before opening. Builders anchor all relative times to it so tests stay
// deterministic.
var baseNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func BaseNow() time.Time {
	return baseNow
}

type ReservationBuilder struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	FacilityName string
	OwnerID      uuid.UUID
	Now          time.Time
	Start        time.Time
	DurationMin  int
	Status       booking.Status
	CancelNote   *string
	Policy       booking.Policy
}

// NewReservationBuilder defaults to a valid candidate: tomorrow 15:00
// UTC for 60 minutes, requested at the fixed reference instant.
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           uuid.New(),
		FacilityID:   uuid.New(),
		FacilityName: "Conference Room A",
		OwnerID:      uuid.New(),
		Now:          baseNow,
		Start:        baseNow.AddDate(0, 0, 1).Add(3 * time.Hour),
		DurationMin:  60,
		Status:       booking.StatusConfirmed,
		Policy:       booking.DefaultPolicy(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*booking.Reservation, error) {
	return booking.NewReservation(r.Policy, r.Now, r.FacilityID, r.OwnerID, r.Start, r.DurationMin)
}

func (r *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:          r.ID,
		FacilityID:  r.FacilityID,
		OwnerID:     r.OwnerID,
		Start:       r.Start,
		DurationMin: r.DurationMin,
		Status:      r.Status,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID,
		FacilityID:   r.FacilityID,
		FacilityName: r.FacilityName,
		OwnerID:      r.OwnerID,
		Start:        r.Start,
		End:          booking.End(r.Start, r.DurationMin),
		DurationMin:  r.DurationMin,
		Status:       r.Status.String(),
		CancelNote:   r.CancelNote,
		CreatedAt:    r.Now,
		UpdatedAt:    r.Now,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           r.ID,
		FacilityID:   r.FacilityID,
		FacilityName: r.FacilityName,
		Start:        r.Start,
		End:          booking.End(r.Start, r.DurationMin),
		DurationMin:  r.DurationMin,
		Status:       r.Status.String(),
		CreatedAt:    r.Now,
	}
}

func (r *ReservationBuilder) BuildBookedInterval() booking.BookedInterval {
	return booking.BookedInterval{
		ReservationID: r.ID,
		Start:         r.Start,
		End:           booking.End(r.Start, r.DurationMin),
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		FacilityID:  r.FacilityID,
		Start:       r.Start,
		DurationMin: r.DurationMin,
	}
}

func (r *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{
		DurationMin: r.DurationMin,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithFacilityID(facilityID uuid.UUID) *ReservationBuilder {
	r.FacilityID = facilityID
	return r
}

func (r *ReservationBuilder) WithOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	r.OwnerID = ownerID
	return r
}

func (r *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	r.Now = now
	return r
}

func (r *ReservationBuilder) WithStart(start time.Time) *ReservationBuilder {
	r.Start = start
	return r
}

func (r *ReservationBuilder) WithDurationMin(durationMin int) *ReservationBuilder {
	r.DurationMin = durationMin
	return r
}

func (r *ReservationBuilder) WithStatus(status booking.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithPolicy(p booking.Policy) *ReservationBuilder {
	r.Policy = p
	return r
}

func (r *ReservationBuilder) AsCanceled() *ReservationBuilder {
	r.Status = booking.StatusCanceled
	return r
}

// StartingAt places the start on the given day offset (relative to the
// reference instant) at hour:minute UTC.
func (r *ReservationBuilder) StartingAt(dayOffset, hour, minute int) *ReservationBuilder {
	day := baseNow.AddDate(0, 0, dayOffset)
	r.Start = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return r
}
