package readstore

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const findReservationByIDSQL = `
SELECT r.id, r.facility_id, f.name, r.owner_id, r.start_time, r.duration_min,
       r.status, r.cancel_note, r.created_at, r.updated_at
FROM reservations r
JOIN facilities f ON f.id = r.facility_id
WHERE r.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		cancelNote pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&view.ID, &view.FacilityID, &view.FacilityName, &view.OwnerID,
		&view.Start, &view.DurationMin, &view.Status, &cancelNote, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.Start = view.Start.UTC()
	view.End = booking.End(view.Start, view.DurationMin)
	view.CancelNote = pgconv.StringPtrFromPgtype(cancelNote)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const findReservationsByOwnerSQL = `
SELECT r.id, r.facility_id, f.name, r.start_time, r.duration_min, r.status, r.created_at
FROM reservations r
JOIN facilities f ON f.id = r.facility_id
WHERE r.owner_id = $1
ORDER BY r.start_time DESC`

func (s *ReservationReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationListItem, error) {
	rows, err := s.pool.Query(ctx, findReservationsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by owner", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.FacilityID, &item.FacilityName, &item.Start, &item.DurationMin, &item.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.Start = item.Start.UTC()
		item.End = booking.End(item.Start, item.DurationMin)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}

const confirmedIntervalsSQL = `
SELECT id, start_time, start_time + make_interval(mins => duration_min)
FROM reservations
WHERE facility_id = $1
  AND status = 'confirmed'
  AND during && tstzrange($2, $3, '[)')
ORDER BY start_time`

// ConfirmedIntervals returns the confirmed reservations touching
// [from, to) on one facility, as bare intervals for the conflict
// detector and the schedule projector.
func (s *ReservationReadStore) ConfirmedIntervals(ctx context.Context, facilityID uuid.UUID, from, to time.Time) ([]booking.BookedInterval, error) {
	rows, err := s.pool.Query(ctx, confirmedIntervalsSQL, facilityID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find confirmed intervals", err)
	}
	defer rows.Close()

	var booked []booking.BookedInterval
	for rows.Next() {
		var b booking.BookedInterval
		if err := rows.Scan(&b.ReservationID, &b.Start, &b.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		b.Start = b.Start.UTC()
		b.End = b.End.UTC()
		booked = append(booked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate interval rows", err)
	}
	return booked, nil
}
