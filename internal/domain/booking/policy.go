package booking

import (
	"errors"
	"time"
)

var (
	ErrStartNotFuture     = errors.New("start time must be in the future")
	ErrStartBeyondHorizon = errors.New("start time is beyond the booking horizon")
	ErrStartOutsideHours  = errors.New("start time is outside operating hours")
	ErrStartNotAligned    = errors.New("start time must be aligned to the slot grid")
	ErrDurationOutOfRange = errors.New("duration is outside the allowed range")
	ErrDurationNotAligned = errors.New("duration must be a multiple of the slot size")
	ErrEndAfterClose      = errors.New("reservation must end by closing time")
)

// Policy holds the booking window constants. It is passed in explicitly
// (never read from process globals) so tests can vary it.
type Policy struct {
	OpenHour       int
	CloseHour      int
	SlotMinutes    int
	MinDurationMin int
	MaxDurationMin int
	HorizonDays    int
	CutoffHours    int
}

func DefaultPolicy() Policy {
	return Policy{
		OpenHour:       14,
		CloseHour:      22,
		SlotMinutes:    15,
		MinDurationMin: 30,
		MaxDurationMin: 180,
		HorizonDays:    7,
		CutoffHours:    12,
	}
}

// OpeningAt returns the opening instant on the UTC calendar day of t.
func (p Policy) OpeningAt(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), p.OpenHour, 0, 0, 0, time.UTC)
}

// ClosingAt returns the closing instant on the UTC calendar day of t.
func (p Policy) ClosingAt(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), p.CloseHour, 0, 0, 0, time.UTC)
}

func (p Policy) SlotsPerDay() int {
	return (p.CloseHour - p.OpenHour) * 60 / p.SlotMinutes
}

// ValidateCandidate checks a create candidate against the booking window,
// short-circuiting on the first failing rule.
func (p Policy) ValidateCandidate(now, start time.Time, durationMin int) error {
	start = start.UTC()

	if !start.After(now) {
		return ErrStartNotFuture
	}
	if start.After(now.AddDate(0, 0, p.HorizonDays)) {
		return ErrStartBeyondHorizon
	}

	minuteOfDay := start.Hour()*60 + start.Minute()
	if minuteOfDay < p.OpenHour*60 || minuteOfDay > p.CloseHour*60 {
		return ErrStartOutsideHours
	}
	if start.Minute()%p.SlotMinutes != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return ErrStartNotAligned
	}

	return p.ValidateDuration(start, durationMin)
}

// ValidateDuration checks only the duration rules against an existing
// start time. Used for duration-only updates, where the start time rules
// do not re-apply.
func (p Policy) ValidateDuration(start time.Time, durationMin int) error {
	if durationMin < p.MinDurationMin || durationMin > p.MaxDurationMin {
		return ErrDurationOutOfRange
	}
	if durationMin%p.SlotMinutes != 0 {
		return ErrDurationNotAligned
	}
	if End(start.UTC(), durationMin).After(p.ClosingAt(start)) {
		return ErrEndAfterClose
	}
	return nil
}

// WithinCutoff reports whether now is already inside the modification
// window, i.e. the reservation starts in CutoffHours or less. Owners may
// modify or cancel only while this returns false.
func (p Policy) WithinCutoff(now, start time.Time) bool {
	return !start.After(now.Add(time.Duration(p.CutoffHours) * time.Hour))
}
