package queries

import (
	"context"
	"fmt"

	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/pkg/ics"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationListItem, error)
	ExportICS(ctx context.Context, actor user.Actor, id uuid.UUID) (string, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

// GetByID hides other users' reservations behind NotFound rather than
// Forbidden, so ids cannot be probed.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.OwnerID != actor.ID && !actor.Role.CanCancelAny() {
		return nil, errs.ErrReservationNotFound
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationListItem, error) {
	items, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) ExportICS(ctx context.Context, actor user.Actor, id uuid.UUID) (string, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return "", err
	}
	if view.Status != "confirmed" {
		return "", errs.ErrNotExportable
	}

	return ics.Render(ics.Event{
		UID:     view.ID.String(),
		Summary: fmt.Sprintf("Reservation: %s", view.FacilityName),
		Start:   view.Start,
		End:     view.End,
		Stamp:   q.clock.Now(),
	}), nil
}
