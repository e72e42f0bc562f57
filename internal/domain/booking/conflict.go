package booking

import (
	"time"

	"github.com/google/uuid"
)

// BookedInterval is the minimal view of a confirmed reservation the
// conflict detector and read-side projections work with.
type BookedInterval struct {
	ReservationID uuid.UUID
	Start         time.Time
	End           time.Time
}

// FindConflicts returns the confirmed intervals overlapping the candidate
// [candStart, candEnd), excluding the reservation being updated (pass
// uuid.Nil for creates). The database exclusion constraint remains the
// final arbiter; this pre-check exists to reject early and to drive the
// duration options.
func FindConflicts(candStart, candEnd time.Time, booked []BookedInterval, excludeID uuid.UUID) []BookedInterval {
	var conflicts []BookedInterval
	for _, b := range booked {
		if b.ReservationID == excludeID {
			continue
		}
		if Overlaps(candStart, candEnd, b.Start, b.End) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
