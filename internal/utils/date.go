package utils

import (
	"strings"
	"time"

	"Smart-Fridge-Backend/domain"
)

// ParseDate accepts a calendar date (YYYY-MM-DD, read as UTC midnight) or
// an RFC 3339 instant. dateOnly reports which form was given.
func ParseDate(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, domain.ErrInvalidDate
	}
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, domain.ErrInvalidDate
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
