// Package timeline derives per-day view records for a month of journal
// entries. Derivation is pure: "today" is always an explicit input so UI
// layers can reason about structure without re-reading the clock all over
// the codebase.
package timeline

import (
	"time"

	"tableflip.dev/pram/pkg/journal"
)

// DayRecord is one calendar day's derived view state. Records are rebuilt
// in full whenever the month or the entries map changes; they carry no
// identity across rebuilds.
type DayRecord struct {
	Date    journal.Date
	Day     int
	DayName string

	HasEntry     bool
	IsToday      bool
	IsActiveDate bool
	IsUnlocked   bool
	IsMilestone  bool

	Entry *journal.Entry
}

// Option customises Derive behaviour.
type Option func(*deriveOptions)

// WithActiveDate overrides the initially-selected day, which otherwise
// defaults to today.
func WithActiveDate(t time.Time) Option {
	return func(opts *deriveOptions) {
		opts.activeDate = t
		opts.activeSet = true
	}
}

type deriveOptions struct {
	activeDate time.Time
	activeSet  bool
}

// Derive enumerates every day of the month containing month (only its
// year/month are used) and computes the view state for each against the
// entries map and the supplied today. Exactly one record is flagged as the
// active date: the day matching the active-date option if it falls in this
// month, else the day matching today, else day 1.
func Derive(month time.Time, entries map[string]*journal.Entry, today time.Time, opts ...Option) []DayRecord {
	config := &deriveOptions{}
	for _, opt := range opts {
		opt(config)
	}
	active := today
	if config.activeSet {
		active = config.activeDate
	}

	days := journal.DaysIn(month)
	todayDay := journal.DateOf(today)

	records := make([]DayRecord, 0, days)
	activeIndex := -1
	for day := 1; day <= days; day++ {
		d := journal.DateOf(time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC))
		e := entries[d.String()]

		isToday := d.SameDay(today)
		if d.SameDay(active) {
			activeIndex = day - 1
		} else if isToday && activeIndex == -1 {
			activeIndex = day - 1
		}

		records = append(records, DayRecord{
			Date:        d,
			Day:         day,
			DayName:     d.DayName(),
			HasEntry:    e != nil,
			IsToday:     isToday,
			IsUnlocked:  unlocked(day, d, entries, todayDay),
			IsMilestone: milestone(day, e),
			Entry:       e,
		})
	}

	if len(records) > 0 {
		if activeIndex < 0 {
			activeIndex = 0
		}
		records[activeIndex].IsActiveDate = true
	}
	return records
}

// ActiveIndex returns the index of the record flagged active, or 0.
func ActiveIndex(records []DayRecord) int {
	for i, r := range records {
		if r.IsActiveDate {
			return i
		}
	}
	return 0
}

// unlocked reports whether the day accepts entry creation/editing. The rule
// is local: day 1 is always open, and otherwise the day opens when the
// immediately preceding day has an entry or the day is on or before today.
// A missed day never permanently locks the days behind it once today has
// passed them.
func unlocked(day int, d journal.Date, entries map[string]*journal.Entry, today journal.Date) bool {
	if day == 1 {
		return true
	}
	if entries[d.Prev().String()] != nil {
		return true
	}
	return !d.After(today.Time)
}

// milestone flags day 1, every seventh day, and any day whose entry records
// a milestone.
func milestone(day int, e *journal.Entry) bool {
	if day == 1 || day%7 == 0 {
		return true
	}
	return e != nil && e.HasType(journal.TypeMilestone)
}
