//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"
	"facility-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func facilityStoreWith(id uuid.UUID) *stubFacilityStore {
	return &stubFacilityStore{
		FindByIDFn: func(_ context.Context, _ uuid.UUID) (*queries.FacilityView, error) {
			return &queries.FacilityView{ID: id, Name: "Conference Room A"}, nil
		},
	}
}

func missingFacilityStore() *stubFacilityStore {
	return &stubFacilityStore{
		FindByIDFn: func(_ context.Context, _ uuid.UUID) (*queries.FacilityView, error) {
			return nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		},
	}
}

func TestDaySchedule(t *testing.T) {
	ctx := context.Background()
	policy := booking.DefaultPolicy()
	facilityID := uuid.New()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("projects the full slot grid", func(t *testing.T) {
		b := builder.NewReservationBuilder().WithFacilityID(facilityID).StartingAt(1, 15, 0)
		reservations := &stubReservationStore{
			ConfirmedIntervalsFn: func(_ context.Context, id uuid.UUID, from, to time.Time) ([]booking.BookedInterval, error) {
				assert.Equal(t, facilityID, id)
				assert.Equal(t, policy.OpeningAt(date), from)
				assert.Equal(t, policy.ClosingAt(date), to)
				return []booking.BookedInterval{b.BuildBookedInterval()}, nil
			},
		}
		sut := queries.NewScheduleQueries(policy, reservations, facilityStoreWith(facilityID))

		view, err := sut.DaySchedule(ctx, facilityID, date)
		require.NoError(t, err)

		assert.Equal(t, facilityID, view.FacilityID)
		assert.Equal(t, "2026-03-03", view.Date)
		require.Len(t, view.Slots, policy.SlotsPerDay())

		var bookedCount int
		for _, s := range view.Slots {
			if s.Status == booking.SlotBooked {
				bookedCount++
			}
		}
		assert.Equal(t, 4, bookedCount)
	})

	t.Run("unknown facility", func(t *testing.T) {
		sut := queries.NewScheduleQueries(policy, &stubReservationStore{}, missingFacilityStore())

		_, err := sut.DaySchedule(ctx, uuid.New(), date)
		require.ErrorIs(t, err, errs.ErrFacilityNotFound)
	})
}

func TestDurationOptions(t *testing.T) {
	ctx := context.Background()
	policy := booking.DefaultPolicy()
	facilityID := uuid.New()

	t.Run("options stop at the next reservation", func(t *testing.T) {
		neighbor := builder.NewReservationBuilder().WithFacilityID(facilityID).StartingAt(1, 16, 0)
		reservations := &stubReservationStore{
			ConfirmedIntervalsFn: func(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]booking.BookedInterval, error) {
				return []booking.BookedInterval{neighbor.BuildBookedInterval()}, nil
			},
		}
		sut := queries.NewScheduleQueries(policy, reservations, facilityStoreWith(facilityID))

		start := neighbor.Start.Add(-time.Hour) // 15:00
		got, err := sut.DurationOptions(ctx, facilityID, start)
		require.NoError(t, err)

		assert.Equal(t, []int{30, 45, 60}, got)
	})

	t.Run("unknown facility", func(t *testing.T) {
		sut := queries.NewScheduleQueries(policy, &stubReservationStore{}, missingFacilityStore())

		_, err := sut.DurationOptions(ctx, uuid.New(), time.Now())
		require.ErrorIs(t, err, errs.ErrFacilityNotFound)
	})
}

func TestListFacilities(t *testing.T) {
	ctx := context.Background()
	policy := booking.DefaultPolicy()

	t.Run("returns all facilities", func(t *testing.T) {
		facilities := &stubFacilityStore{
			ListFn: func(_ context.Context) ([]*queries.FacilityView, error) {
				return []*queries.FacilityView{
					{ID: uuid.New(), Name: "Conference Room A"},
					{ID: uuid.New(), Name: "Studio B"},
				}, nil
			},
		}
		sut := queries.NewScheduleQueries(policy, &stubReservationStore{}, facilities)

		got, err := sut.ListFacilities(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("store failure is marked as a database error", func(t *testing.T) {
		facilities := &stubFacilityStore{
			ListFn: func(_ context.Context) ([]*queries.FacilityView, error) {
				return nil, infra.WrapRepoErr("boom", nil)
			},
		}
		sut := queries.NewScheduleQueries(policy, &stubReservationStore{}, facilities)

		_, err := sut.ListFacilities(ctx)
		require.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
