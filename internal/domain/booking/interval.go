package booking

import "time"

// End returns the exclusive end of a reservation interval.
func End(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
