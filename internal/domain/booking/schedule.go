package booking

import (
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// TimeSlot is one fixed-width cell of a day schedule. Derived on every
// read, never persisted.
type TimeSlot struct {
	Start         time.Time
	End           time.Time
	Status        SlotStatus
	ReservationID *uuid.UUID
}

// ProjectDay derives the slot sequence for the UTC calendar day of date:
// one slot per SlotMinutes between opening and closing, each tagged booked
// iff some confirmed interval contains the slot start. The slot count is
// fixed regardless of input. Overlapping input intervals would violate the
// non-overlap invariant; if present anyway, the first match binds.
func ProjectDay(p Policy, date time.Time, booked []BookedInterval) []TimeSlot {
	step := time.Duration(p.SlotMinutes) * time.Minute
	slots := make([]TimeSlot, 0, p.SlotsPerDay())

	for start := p.OpeningAt(date); start.Before(p.ClosingAt(date)); start = start.Add(step) {
		slot := TimeSlot{
			Start:  start,
			End:    start.Add(step),
			Status: SlotAvailable,
		}
		for _, b := range booked {
			if !start.Before(b.Start) && start.Before(b.End) {
				id := b.ReservationID
				slot.Status = SlotBooked
				slot.ReservationID = &id
				break
			}
		}
		slots = append(slots, slot)
	}

	return slots
}
