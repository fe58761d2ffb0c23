package timeline

import (
	"time"

	"tableflip.dev/pram/pkg/journal"
)

// PathNode is one step on the month's "baby days" path view. Unlike the
// flat timeline, the path unlocks strictly: a day opens only when the
// previous day was recorded, so the path always grows one node at a time.
type PathNode struct {
	Date    journal.Date
	Day     int
	DayName string

	HasEntry    bool
	Unlocked    bool
	IsToday     bool
	IsMilestone bool

	Entry *journal.Entry
}

// pathMilestones are the anchor nodes of the path: the first day and the
// week boundaries.
var pathMilestones = map[int]bool{1: true, 7: true, 14: true, 21: true, 28: true}

// BuildPath derives the strict path view for the month containing month.
func BuildPath(month time.Time, entries map[string]*journal.Entry, today time.Time) []PathNode {
	days := journal.DaysIn(month)
	nodes := make([]PathNode, 0, days)
	for day := 1; day <= days; day++ {
		d := journal.DateOf(time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC))
		e := entries[d.String()]
		nodes = append(nodes, PathNode{
			Date:        d,
			Day:         day,
			DayName:     d.DayName(),
			HasEntry:    e != nil,
			Unlocked:    day == 1 || entries[d.Prev().String()] != nil,
			IsToday:     d.SameDay(today),
			IsMilestone: pathMilestones[day],
			Entry:       e,
		})
	}
	return nodes
}

// Summary reports how much of a month has been recorded.
type Summary struct {
	Days     int
	Recorded int
	Percent  int
}

// Progress summarises entry coverage for a derived month.
func Progress(records []DayRecord) Summary {
	s := Summary{Days: len(records)}
	for _, r := range records {
		if r.HasEntry {
			s.Recorded++
		}
	}
	if s.Days > 0 {
		s.Percent = s.Recorded * 100 / s.Days
	}
	return s
}
