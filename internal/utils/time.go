package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// ToISO converts a YYYY-MM-DD travel date to the ISO-8601 instant the core
// backend stores.
func ToISO(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// IsFutureDate reports whether the date is today or later, comparing calendar
// days rather than instants.
func IsFutureDate(s string, now time.Time) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !t.Before(today)
}
