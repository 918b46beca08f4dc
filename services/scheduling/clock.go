// File: services/scheduling/clock.go
package scheduling

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for 24-hour slot times.
	ClockLayout = "15:04"
)

// ParseClock converts a 24-hour "HH:mm" string to minutes from midnight.
// Only the canonical zero-padded form is accepted: slot identity is string
// equality everywhere (blocked-slot sets, occupancy maps, the storage
// uniqueness constraint), so "9:00" and "09:00" must not both name one slot.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil || t.Format(ClockLayout) != s {
		return 0, fmt.Errorf("invalid time %q: expected 24-hour HH:mm", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes from midnight back to "HH:mm".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates a "YYYY-MM-DD" string, rejecting non-canonical forms
// for the same reason ParseClock does.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
