package commands

import (
	"context"
	"log/slog"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationCommands is the admission state machine: each operation
// validates, authorizes, conflict-checks and commits, ending in exactly
// one of {committed, rejected-with-reason}. No partial state survives a
// rejection.
type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, facilityID uuid.UUID, start time.Time, durationMin int) (*queries.ReservationView, error)
	UpdateDuration(ctx context.Context, actor user.Actor, id uuid.UUID, durationMin int) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, message *string) error
}

type reservationCommandsImpl struct {
	policy    booking.Policy
	repo      ReservationRepository
	reads     CommandReads
	views     queries.ReservationReadStore
	publisher EventPublisher
	clock     clock.Clock
}

func NewReservationCommands(
	policy booking.Policy,
	repo ReservationRepository,
	reads CommandReads,
	views queries.ReservationReadStore,
	publisher EventPublisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		policy:    policy,
		repo:      repo,
		reads:     reads,
		views:     views,
		publisher: publisher,
		clock:     clock,
	}
}

// Create admits a new reservation. The insert relies on the repository's
// exclusion constraint for the final non-overlap decision: two requests
// can race between any application-level check and the write, so a
// constraint violation is an expected outcome, surfaced as a conflict.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor user.Actor, facilityID uuid.UUID, start time.Time, durationMin int) (*queries.ReservationView, error) {
	res, err := booking.NewReservation(c.policy, c.clock.Now(), facilityID, actor.ID, start, durationMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCandidate)
	}

	if _, err := c.reads.FacilityByID(ctx, facilityID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id, err := c.repo.Insert(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrReservationConflict
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publish(ctx, EventReservationCreated, id, facilityID, actor.ID)

	return c.readBack(ctx, id)
}

// UpdateDuration changes the length of an existing reservation in place.
// Owner-only; admins do not use this path.
func (c *reservationCommandsImpl) UpdateDuration(ctx context.Context, actor user.Actor, id uuid.UUID, durationMin int) (*queries.ReservationView, error) {
	snap, err := c.loadReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if snap.OwnerID != actor.ID {
		return nil, errs.ErrNotOwner
	}
	if snap.Status != booking.StatusConfirmed {
		return nil, errs.ErrAlreadyCanceled
	}
	if c.policy.WithinCutoff(c.clock.Now(), snap.Start) {
		return nil, errs.ErrCutoffPassed
	}
	if err := c.policy.ValidateDuration(snap.Start, durationMin); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCandidate)
	}

	newEnd := booking.End(snap.Start, durationMin)
	booked, err := c.reads.ConfirmedIntervals(ctx, snap.FacilityID, c.policy.OpeningAt(snap.Start), c.policy.ClosingAt(snap.Start))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(booking.FindConflicts(snap.Start, newEnd, booked, snap.ID)) > 0 {
		return nil, errs.ErrReservationConflict
	}

	if err := c.repo.UpdateDuration(ctx, id, durationMin); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrReservationConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.readBack(ctx, id)
}

// Cancel transitions a reservation to canceled. Owners may cancel up to
// the cutoff; holders of the cancel-any capability may cancel at any time
// and attach a message. Always a soft status transition, never a delete.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, message *string) error {
	snap, err := c.loadReservation(ctx, id)
	if err != nil {
		return err
	}

	if snap.Status != booking.StatusConfirmed {
		return errs.ErrAlreadyCanceled
	}

	var note *string
	if actor.Role.CanCancelAny() {
		if message != nil {
			cn, noteErr := booking.NewCancelNote(*message)
			if noteErr != nil {
				return errs.Mark(noteErr, errs.ErrInvalidCandidate)
			}
			if !cn.IsEmpty() {
				v := cn.String()
				note = &v
			}
		}
	} else {
		if snap.OwnerID != actor.ID {
			return errs.ErrNotOwner
		}
		if c.policy.WithinCutoff(c.clock.Now(), snap.Start) {
			return errs.ErrCutoffPassed
		}
	}

	if err := c.repo.SetCanceled(ctx, id, note); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrAlreadyCanceled
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publish(ctx, EventReservationCanceled, id, snap.FacilityID, snap.OwnerID)

	return nil
}

func (c *reservationCommandsImpl) loadReservation(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error) {
	snap, err := c.reads.ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *reservationCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) publish(ctx context.Context, eventType string, id, facilityID, ownerID uuid.UUID) {
	event := ReservationEvent{
		Type:          eventType,
		ReservationID: id,
		FacilityID:    facilityID,
		OwnerID:       ownerID,
		OccurredAt:    c.clock.Now(),
	}
	if err := c.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event", "type", eventType, "reservation_id", id, "error", err.Error())
	}
}
