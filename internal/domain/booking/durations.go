package booking

import (
	"time"

	"github.com/google/uuid"
)

// LegalDurations enumerates the durations (in minutes) a reservation
// starting at start may take: MinDurationMin, stepping by SlotMinutes, up
// to MaxDurationMin. Enumeration stops entirely at the first duration
// whose end would pass closing time or overlap a confirmed interval;
// durations extend monotonically, so every longer one stays illegal.
//
// The result only drives selection UI. Admission re-validates and
// re-checks conflicts at commit time.
func LegalDurations(p Policy, start time.Time, booked []BookedInterval) []int {
	start = start.UTC()
	closing := p.ClosingAt(start)

	var durations []int
	for d := p.MinDurationMin; d <= p.MaxDurationMin; d += p.SlotMinutes {
		end := End(start, d)
		if end.After(closing) {
			break
		}
		if len(FindConflicts(start, end, booked, uuid.Nil)) > 0 {
			break
		}
		durations = append(durations, d)
	}
	return durations
}
