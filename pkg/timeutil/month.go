// Package timeutil parses the human-friendly month and day arguments
// accepted by the CLI.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOMonth = "2006-01"
	layoutMonth    = "January 2006"
	layoutDay      = "January 2, 2006"
)

// ParseMonth resolves input to the first day of a month. Accepted forms:
// "" or "this" or "current" (the month containing now), "next",
// "last"/"prev"/"previous", "2006-01", and "January 2006". The canonical
// long name is returned alongside.
func ParseMonth(input string, now time.Time) (time.Time, string, error) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	switch lower {
	case "", "this", "current":
		return first, first.Format(layoutMonth), nil
	case "next":
		next := NextMonth(first)
		return next, next.Format(layoutMonth), nil
	case "last", "prev", "previous":
		prev := PrevMonth(first)
		return prev, prev.Format(layoutMonth), nil
	}

	for _, layout := range []string{layoutISOMonth, layoutMonth} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
			return t, t.Format(layoutMonth), nil
		}
	}
	return time.Time{}, "", fmt.Errorf("invalid month %q (want 2006-01 or \"January 2006\")", input)
}

// ParseDay resolves input to a calendar day. Accepted forms: "" or "today",
// "yesterday", "tomorrow", "2006-01-02", and "January 2, 2006".
func ParseDay(input string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch strings.ToLower(trimmed) {
	case "", "today":
		return day, nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	case "tomorrow":
		return day.AddDate(0, 0, 1), nil
	}

	for _, layout := range []string{layoutISO, layoutDay} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid day %q (want 2006-01-02 or \"January 2, 2006\")", input)
}

// NextMonth steps to the first day of the following month.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// PrevMonth steps to the first day of the preceding month.
func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()-1, 1, 0, 0, 0, 0, time.UTC)
}
