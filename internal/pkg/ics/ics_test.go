//go:build unit

package ics_test

import (
	"strings"
	"testing"
	"time"

	"facility-booking/internal/pkg/ics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	event := ics.Event{
		UID:     "6a1f7a9e-0000-0000-0000-000000000001",
		Summary: "Reservation: Conference Room A",
		Start:   time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC),
		End:     time.Date(2026, 3, 3, 16, 0, 0, 0, time.UTC),
		Stamp:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	got := ics.Render(event)

	require.True(t, strings.HasPrefix(got, "BEGIN:VCALENDAR"))
	assert.Contains(t, got, "METHOD:PUBLISH")
	assert.Contains(t, got, "UID:"+event.UID)
	assert.Contains(t, got, "DTSTART:20260303T150000Z")
	assert.Contains(t, got, "DTEND:20260303T160000Z")
	assert.Contains(t, got, "DTSTAMP:20260302T120000Z")
	assert.Contains(t, got, "STATUS:CONFIRMED")
	assert.Contains(t, got, "END:VCALENDAR")

	// Deterministic for fixed input
	assert.Equal(t, got, ics.Render(event))
}
