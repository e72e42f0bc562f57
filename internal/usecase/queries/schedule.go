package queries

import (
	"context"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	DaySchedule(ctx context.Context, facilityID uuid.UUID, date time.Time) (*ScheduleView, error)
	DurationOptions(ctx context.Context, facilityID uuid.UUID, start time.Time) ([]int, error)
	ListFacilities(ctx context.Context) ([]*FacilityView, error)
}

type scheduleQueriesImpl struct {
	policy       booking.Policy
	reservations ReservationReadStore
	facilities   FacilityReadStore
}

func NewScheduleQueries(policy booking.Policy, reservations ReservationReadStore, facilities FacilityReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		policy:       policy,
		reservations: reservations,
		facilities:   facilities,
	}
}

// DaySchedule projects the fixed slot grid for one facility and UTC day.
// The projection is recomputed on every call; it is pure and cheap, so
// recomputation beats cache invalidation.
func (q *scheduleQueriesImpl) DaySchedule(ctx context.Context, facilityID uuid.UUID, date time.Time) (*ScheduleView, error) {
	if err := q.ensureFacility(ctx, facilityID); err != nil {
		return nil, err
	}

	booked, err := q.dayIntervals(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	return &ScheduleView{
		FacilityID: facilityID,
		Date:       date.UTC().Format("2006-01-02"),
		Slots:      booking.ProjectDay(q.policy, date, booked),
	}, nil
}

// DurationOptions enumerates legal durations for a candidate start time.
// Advisory only: admission re-validates at commit time.
func (q *scheduleQueriesImpl) DurationOptions(ctx context.Context, facilityID uuid.UUID, start time.Time) ([]int, error) {
	if err := q.ensureFacility(ctx, facilityID); err != nil {
		return nil, err
	}

	booked, err := q.dayIntervals(ctx, facilityID, start)
	if err != nil {
		return nil, err
	}

	return booking.LegalDurations(q.policy, start, booked), nil
}

func (q *scheduleQueriesImpl) ListFacilities(ctx context.Context) ([]*FacilityView, error) {
	views, err := q.facilities.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *scheduleQueriesImpl) ensureFacility(ctx context.Context, facilityID uuid.UUID) error {
	if _, err := q.facilities.FindByID(ctx, facilityID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrFacilityNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (q *scheduleQueriesImpl) dayIntervals(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]booking.BookedInterval, error) {
	booked, err := q.reservations.ConfirmedIntervals(ctx, facilityID, q.policy.OpeningAt(date), q.policy.ClosingAt(date))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booked, nil
}
