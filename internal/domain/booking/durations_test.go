//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLegalDurations(t *testing.T) {
	p := booking.DefaultPolicy()

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 3, hour, minute, 0, 0, time.UTC)
	}

	t.Run("open day offers the full range", func(t *testing.T) {
		got := booking.LegalDurations(p, at(14, 0), nil)

		assert.Equal(t, []int{30, 45, 60, 75, 90, 105, 120, 135, 150, 165, 180}, got)
	})

	t.Run("closing time truncates the range", func(t *testing.T) {
		// 21:00 start: 30/45/60 fit, 75 would end 22:15.
		got := booking.LegalDurations(p, at(21, 0), nil)

		assert.Equal(t, []int{30, 45, 60}, got)
	})

	t.Run("last slot offers only the minimum", func(t *testing.T) {
		got := booking.LegalDurations(p, at(21, 30), nil)

		assert.Equal(t, []int{30}, got)
	})

	t.Run("start at closing offers nothing", func(t *testing.T) {
		got := booking.LegalDurations(p, at(22, 0), nil)

		assert.Empty(t, got)
	})

	t.Run("a booked interval truncates the range", func(t *testing.T) {
		booked := []booking.BookedInterval{
			{
				ReservationID: uuid.New(),
				Start:         at(16, 0),
				End:           at(17, 0),
			},
		}

		// 15:00 start: 30 and 45 fit, 60 would touch 16:00 exactly
		// (still legal), 75 overlaps.
		got := booking.LegalDurations(p, at(15, 0), booked)

		assert.Equal(t, []int{30, 45, 60}, got)
	})

	t.Run("enumeration stops at the first illegal duration", func(t *testing.T) {
		// Booking at 16:00-16:30 with a free stretch after it: durations
		// past the blocked one must not reappear.
		booked := []booking.BookedInterval{
			{
				ReservationID: uuid.New(),
				Start:         at(16, 0),
				End:           at(16, 30),
			},
		}

		got := booking.LegalDurations(p, at(15, 0), booked)

		assert.Equal(t, []int{30, 45, 60}, got)
	})

	t.Run("start inside a booked interval offers nothing", func(t *testing.T) {
		booked := []booking.BookedInterval{
			{
				ReservationID: uuid.New(),
				Start:         at(15, 0),
				End:           at(17, 0),
			},
		}

		got := booking.LegalDurations(p, at(15, 30), booked)

		assert.Empty(t, got)
	})
}
