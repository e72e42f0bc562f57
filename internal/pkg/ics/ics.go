// Package ics renders confirmed reservations as RFC 5545 calendar text.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
)

const prodID = "-//facility-booking//EN"

// Event is the flattened input for a single VEVENT export.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
	Stamp   time.Time
}

// Render serializes a one-event VCALENDAR with UID, DTSTAMP, DTSTART,
// DTEND, SUMMARY and STATUS:CONFIRMED. Deterministic for fixed input.
func Render(e Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	ev := cal.AddEvent(e.UID)
	ev.SetDtStampTime(e.Stamp.UTC())
	ev.SetStartAt(e.Start.UTC())
	ev.SetEndAt(e.End.UTC())
	ev.SetSummary(e.Summary)
	ev.SetStatus(ical.ObjectStatusConfirmed)

	return cal.Serialize()
}
