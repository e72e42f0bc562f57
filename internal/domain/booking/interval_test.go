//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestEnd(t *testing.T) {
	start := time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, start.Add(90*time.Minute), booking.End(start, 90))
	assert.Equal(t, start, booking.End(start, 0))
}

func TestOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 3, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name           string
		aStart, aEnd   time.Time
		bStart, bEnd   time.Time
		expectsOverlap bool
	}{
		{
			name:   "identical intervals",
			aStart: at(15, 0), aEnd: at(16, 0),
			bStart: at(15, 0), bEnd: at(16, 0),
			expectsOverlap: true,
		},
		{
			name:   "partial overlap",
			aStart: at(15, 0), aEnd: at(16, 0),
			bStart: at(15, 30), bEnd: at(16, 30),
			expectsOverlap: true,
		},
		{
			name:   "containment",
			aStart: at(15, 0), aEnd: at(17, 0),
			bStart: at(15, 30), bEnd: at(16, 0),
			expectsOverlap: true,
		},
		{
			name:   "a ends exactly when b starts",
			aStart: at(15, 0), aEnd: at(16, 0),
			bStart: at(16, 0), bEnd: at(17, 0),
			expectsOverlap: false,
		},
		{
			name:   "b ends exactly when a starts",
			aStart: at(16, 0), aEnd: at(17, 0),
			bStart: at(15, 0), bEnd: at(16, 0),
			expectsOverlap: false,
		},
		{
			name:   "disjoint",
			aStart: at(14, 0), aEnd: at(15, 0),
			bStart: at(18, 0), bEnd: at(19, 0),
			expectsOverlap: false,
		},
		{
			name:   "one minute shy of touching",
			aStart: at(15, 0), aEnd: at(16, 0),
			bStart: at(15, 59), bEnd: at(17, 0),
			expectsOverlap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expectsOverlap, got)

			// Overlap is symmetric
			assert.Equal(t, got, booking.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
