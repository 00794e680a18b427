package utils

import (
	"errors"
	"time"
)

const ShiftDateLayout = "2006-01-02"

var ErrBadTimestamp = errors.New("unparseable timestamp")

// ParseShiftDate parses the business-day date attached to an entry
func ParseShiftDate(s string) (time.Time, error) {
	return time.Parse(ShiftDateLayout, s)
}

// ParseEntryTs parses an optional entry timestamp, defaulting to now.
// Forms submit RFC 3339; the legacy layout is kept for older clients.
func ParseEntryTs(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadTimestamp
}
