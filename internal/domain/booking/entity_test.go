//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entityCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.FacilityID, actual.FacilityID())
		assert.Equal(t, b.OwnerID, actual.OwnerID())
		assert.Equal(t, b.Start, actual.Start())
		assert.Equal(t, b.DurationMin, actual.DurationMin())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsConfirmed())
		assert.False(t, actual.IsCanceled())
		assert.Equal(t, b.Start.Add(time.Duration(b.DurationMin)*time.Minute), actual.End())
		assert.Nil(t, actual.CancelNote())
	})

	t.Run("candidate validation", func(t *testing.T) {
		runEntityCases(t, []entityCase{
			{
				name:   "start in the past",
				mutate: func(b *builder.ReservationBuilder) { b.StartingAt(-1, 15, 0) },
				errIs:  booking.ErrStartNotFuture,
			},
			{
				name:   "start beyond the horizon",
				mutate: func(b *builder.ReservationBuilder) { b.StartingAt(8, 15, 0) },
				errIs:  booking.ErrStartBeyondHorizon,
			},
			{
				name:   "start before opening",
				mutate: func(b *builder.ReservationBuilder) { b.StartingAt(1, 9, 0) },
				errIs:  booking.ErrStartOutsideHours,
			},
			{
				name:   "unaligned start",
				mutate: func(b *builder.ReservationBuilder) { b.StartingAt(1, 15, 10) },
				errIs:  booking.ErrStartNotAligned,
			},
			{
				name:   "duration too short",
				mutate: func(b *builder.ReservationBuilder) { b.WithDurationMin(15) },
				errIs:  booking.ErrDurationOutOfRange,
			},
			{
				name:   "duration runs past closing",
				mutate: func(b *builder.ReservationBuilder) { b.StartingAt(1, 21, 0).WithDurationMin(90) },
				errIs:  booking.ErrEndAfterClose,
			},
		})
	})

	t.Run("ownership", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsOwnedBy(b.OwnerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewReservationBuilder()

		first, err1 := b.BuildDomain()
		second, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestReconstructReservation(t *testing.T) {
	id := uuid.New()
	note := "closed for maintenance"
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	start := time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)

	actual := booking.ReconstructReservation(
		id, uuid.New(), uuid.New(),
		start, 60,
		booking.StatusCanceled, &note,
		createdAt, updatedAt,
	)

	assert.Equal(t, id, actual.ID())
	assert.True(t, actual.IsCanceled())
	require.NotNil(t, actual.CancelNote())
	assert.Equal(t, note, *actual.CancelNote())
	assert.Equal(t, createdAt, actual.CreatedAt())
	assert.Equal(t, updatedAt, actual.UpdatedAt())
}

func TestCancelNote(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		note, err := booking.NewCancelNote("  closed for maintenance  ")
		require.NoError(t, err)

		assert.Equal(t, "closed for maintenance", note.String())
		assert.False(t, note.IsEmpty())
	})

	t.Run("empty note is valid", func(t *testing.T) {
		note, err := booking.NewCancelNote("   ")
		require.NoError(t, err)

		assert.True(t, note.IsEmpty())
	})

	t.Run("maximum length note is valid", func(t *testing.T) {
		note, err := booking.NewCancelNote(strings.Repeat("a", booking.MaxCancelNoteLength))
		require.NoError(t, err)

		assert.Len(t, note.String(), booking.MaxCancelNoteLength)
	})

	t.Run("note exceeding maximum length is rejected", func(t *testing.T) {
		_, err := booking.NewCancelNote(strings.Repeat("a", booking.MaxCancelNoteLength+1))

		require.ErrorIs(t, err, booking.ErrCancelNoteTooLong)
	})
}

func runEntityCases(t *testing.T, cases []entityCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
