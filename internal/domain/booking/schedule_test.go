//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDay(t *testing.T) {
	p := booking.DefaultPolicy()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("empty day yields all slots available", func(t *testing.T) {
		slots := booking.ProjectDay(p, date, nil)

		require.Len(t, slots, p.SlotsPerDay())
		assert.Equal(t, p.OpeningAt(date), slots[0].Start)
		assert.Equal(t, p.ClosingAt(date), slots[len(slots)-1].End)
		for _, s := range slots {
			assert.Equal(t, booking.SlotAvailable, s.Status)
			assert.Nil(t, s.ReservationID)
		}
	})

	t.Run("booked interval covers exactly its slots", func(t *testing.T) {
		resID := uuid.New()
		booked := []booking.BookedInterval{
			{
				ReservationID: resID,
				Start:         time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
				End:           time.Date(2026, 3, 3, 16, 0, 0, 0, time.UTC),
			},
		}

		slots := booking.ProjectDay(p, date, booked)
		require.Len(t, slots, p.SlotsPerDay())

		var bookedCount int
		for _, s := range slots {
			if s.Status == booking.SlotBooked {
				bookedCount++
				require.NotNil(t, s.ReservationID)
				assert.Equal(t, resID, *s.ReservationID)
				assert.False(t, s.Start.Before(booked[0].Start))
				assert.True(t, s.Start.Before(booked[0].End))
			} else {
				assert.Nil(t, s.ReservationID)
			}
		}
		// 60 minutes at 15-minute slots
		assert.Equal(t, 4, bookedCount)
	})

	t.Run("slot count is fixed regardless of bookings", func(t *testing.T) {
		var booked []booking.BookedInterval
		start := p.OpeningAt(date)
		for start.Before(p.ClosingAt(date)) {
			booked = append(booked, booking.BookedInterval{
				ReservationID: uuid.New(),
				Start:         start,
				End:           start.Add(30 * time.Minute),
			})
			start = start.Add(30 * time.Minute)
		}

		slots := booking.ProjectDay(p, date, booked)
		require.Len(t, slots, p.SlotsPerDay())
		for _, s := range slots {
			assert.Equal(t, booking.SlotBooked, s.Status)
		}
	})

	t.Run("projection is deterministic for the same inputs", func(t *testing.T) {
		booked := []booking.BookedInterval{
			{
				ReservationID: uuid.New(),
				Start:         time.Date(2026, 3, 3, 18, 30, 0, 0, time.UTC),
				End:           time.Date(2026, 3, 3, 20, 0, 0, 0, time.UTC),
			},
		}

		first := booking.ProjectDay(p, date, booked)
		second := booking.ProjectDay(p, date, booked)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("projection differs between runs (-first +second):\n%s", diff)
		}
	})

	t.Run("time-of-day on the date argument is ignored", func(t *testing.T) {
		late := time.Date(2026, 3, 3, 23, 59, 0, 0, time.UTC)

		first := booking.ProjectDay(p, date, nil)
		second := booking.ProjectDay(p, late, nil)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("projection depends on time of day (-midnight +late):\n%s", diff)
		}
	})
}
