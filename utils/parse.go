package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseFloat coerces form input to a number. Empty or non-numeric input
// becomes zero rather than an error; the tracker never rejects a meal
// over a malformed nutrient field.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// DateOnly truncates t to midnight UTC so calendar-day equality works
// the same across database drivers.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
