package repository

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the write side. The reservations table carries
//
//	during tstzrange NOT NULL,
//	EXCLUDE USING gist (facility_id WITH =, during WITH &&)
//	    WHERE (status = 'confirmed')
//
// so the database, not this layer, is the final arbiter of non-overlap:
// two racing inserts for the same slot cannot both commit, and the loser
// comes back as an exclusion violation (KindConflict).
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const insertReservationSQL = `
INSERT INTO reservations (id, facility_id, owner_id, start_time, duration_min, during, status)
VALUES ($1, $2, $3, $4, $5, tstzrange($4, $4 + make_interval(mins => $5), '[)'), 'confirmed')
RETURNING id`

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertReservationSQL,
		res.ID(), res.FacilityID(), res.OwnerID(), res.Start().UTC(), res.DurationMin(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapPgErr("failed to insert reservation", err)
	}
	return id, nil
}

const updateDurationSQL = `
UPDATE reservations
SET duration_min = $2,
    during       = tstzrange(start_time, start_time + make_interval(mins => $2), '[)'),
    updated_at   = now()
WHERE id = $1 AND status = 'confirmed'`

// UpdateDuration recomputes the range so the exclusion constraint is
// re-checked on write; a racing overlap loses here with KindConflict.
func (r *ReservationRepository) UpdateDuration(ctx context.Context, id uuid.UUID, durationMin int) error {
	tag, err := r.pool.Exec(ctx, updateDurationSQL, id, durationMin)
	if err != nil {
		return infra.WrapPgErr("failed to update reservation duration", err)
	}
	if tag.RowsAffected() == 0 {
		// Raced with a cancel between read and write.
		return infra.WrapRepoErr("reservation no longer confirmed", nil, infra.KindConflict)
	}
	return nil
}

const setCanceledSQL = `
UPDATE reservations
SET status      = 'canceled',
    cancel_note = $2,
    updated_at  = now()
WHERE id = $1 AND status = 'confirmed'`

func (r *ReservationRepository) SetCanceled(ctx context.Context, id uuid.UUID, note *string) error {
	tag, err := r.pool.Exec(ctx, setCanceledSQL, id, pgconv.StringPtrToPgtype(note))
	if err != nil {
		return infra.WrapPgErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation no longer confirmed", nil, infra.KindConflict)
	}
	return nil
}
