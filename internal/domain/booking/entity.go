package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCancelNoteLength = 500

var (
	ErrAlreadyCanceled   = errors.New("reservation is already canceled")
	ErrCancelNoteTooLong = errors.New("cancellation message too long")
)

// Reservation is the write-side aggregate. Cancellation is always a status
// transition, never a row delete, so cancellation history stays queryable.
type Reservation struct {
	id          uuid.UUID
	facilityID  uuid.UUID
	ownerID     uuid.UUID
	startTime   time.Time
	durationMin int
	status      Status
	cancelNote  *string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation builds a confirmed reservation candidate, applying the
// full booking-window validation against now.
func NewReservation(p Policy, now time.Time, facilityID, ownerID uuid.UUID, start time.Time, durationMin int) (*Reservation, error) {
	if err := p.ValidateCandidate(now, start, durationMin); err != nil {
		return nil, err
	}

	return &Reservation{
		id:          uuid.New(),
		facilityID:  facilityID,
		ownerID:     ownerID,
		startTime:   start.UTC(),
		durationMin: durationMin,
		status:      StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, facilityID, ownerID uuid.UUID,
	start time.Time,
	durationMin int,
	status Status,
	cancelNote *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		facilityID:  facilityID,
		ownerID:     ownerID,
		startTime:   start,
		durationMin: durationMin,
		status:      status,
		cancelNote:  cancelNote,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) FacilityID() uuid.UUID { return r.facilityID }
func (r *Reservation) OwnerID() uuid.UUID    { return r.ownerID }
func (r *Reservation) Start() time.Time      { return r.startTime }
func (r *Reservation) DurationMin() int      { return r.durationMin }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CancelNote() *string   { return r.cancelNote }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) End() time.Time {
	return End(r.startTime, r.durationMin)
}

func (r *Reservation) IsConfirmed() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCanceled() bool {
	return r.status == StatusCanceled
}

func (r *Reservation) IsOwnedBy(actorID uuid.UUID) bool {
	return r.ownerID == actorID
}

// CancelNote value object; only meaningful on canceled reservations.
type CancelNote struct {
	value string
}

func NewCancelNote(value string) (CancelNote, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > MaxCancelNoteLength {
		return CancelNote{}, ErrCancelNoteTooLong
	}
	return CancelNote{value: trimmed}, nil
}

func (n CancelNote) String() string {
	return n.value
}

func (n CancelNote) IsEmpty() bool {
	return n.value == ""
}
