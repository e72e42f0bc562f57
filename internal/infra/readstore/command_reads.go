package readstore

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommandReads serves the write side's pre-commit lookups as snapshots,
// keeping commands decoupled from the read-model views.
type CommandReads struct {
	pool         *pgxpool.Pool
	facilities   *FacilityReadStore
	reservations *ReservationReadStore
}

func NewCommandReads(pool *pgxpool.Pool) *CommandReads {
	return &CommandReads{
		pool:         pool,
		facilities:   NewFacilityReadStore(pool),
		reservations: NewReservationReadStore(pool),
	}
}

func (r *CommandReads) FacilityByID(ctx context.Context, id uuid.UUID) (*commands.FacilitySnapshot, error) {
	view, err := r.facilities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.FacilitySnapshot{ID: view.ID, Name: view.Name}, nil
}

const reservationSnapshotSQL = `
SELECT id, facility_id, owner_id, start_time, duration_min, status
FROM reservations
WHERE id = $1`

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var snap commands.ReservationSnapshot
	err := r.pool.QueryRow(ctx, reservationSnapshotSQL, id).Scan(
		&snap.ID, &snap.FacilityID, &snap.OwnerID, &snap.Start, &snap.DurationMin, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}
	snap.Start = snap.Start.UTC()
	return &snap, nil
}

func (r *CommandReads) ConfirmedIntervals(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]booking.BookedInterval, error) {
	return r.reservations.ConfirmedIntervals(ctx, facilityID, from, to)
}
