package timeline

import (
	"testing"

	"tableflip.dev/pram/pkg/journal"
)

func day(t *testing.T, iso string) journal.Date {
	t.Helper()
	d, err := journal.ParseDate(iso)
	if err != nil {
		t.Fatalf("parse %s: %v", iso, err)
	}
	return d
}

func entriesFor(t *testing.T, isoDays ...string) map[string]*journal.Entry {
	t.Helper()
	entries := make(map[string]*journal.Entry, len(isoDays))
	for _, iso := range isoDays {
		d := day(t, iso)
		entries[d.String()] = journal.New(d, journal.TypeNote)
	}
	return entries
}

func TestDeriveMonthLengths(t *testing.T) {
	cases := map[string]int{
		"2024-02-15": 29,
		"2023-02-15": 28,
		"2024-06-15": 30,
		"2024-12-15": 31,
	}
	for iso, want := range cases {
		month := day(t, iso)
		records := Derive(month.Time, nil, month.Time)
		if len(records) != want {
			t.Fatalf("%s: expected %d records, got %d", iso, want, len(records))
		}
		for i, r := range records {
			if r.Day != i+1 {
				t.Fatalf("%s: record %d has ordinal %d", iso, i, r.Day)
			}
		}
	}
}

func TestDeriveHasEntryMatchesMap(t *testing.T) {
	entries := entriesFor(t, "2024-06-03", "2024-06-17")
	month := day(t, "2024-06-01")
	records := Derive(month.Time, entries, day(t, "2024-06-20").Time)

	for _, r := range records {
		want := entries[r.Date.String()] != nil
		if r.HasEntry != want {
			t.Fatalf("day %d: HasEntry = %v, want %v", r.Day, r.HasEntry, want)
		}
		if want && r.Entry == nil {
			t.Fatalf("day %d: entry not attached", r.Day)
		}
	}
}

func TestDeriveDayOneAlwaysUnlocked(t *testing.T) {
	// Today far in the past relative to the displayed month.
	month := day(t, "2030-05-01")
	records := Derive(month.Time, nil, day(t, "2024-01-01").Time)
	if !records[0].IsUnlocked {
		t.Fatalf("day 1 must always be unlocked")
	}
	if records[1].IsUnlocked {
		t.Fatalf("day 2 of a future month with no entries should be locked")
	}
}

func TestDeriveUnlockBeyondToday(t *testing.T) {
	// Spec scenario: one entry on June 1, today June 5.
	entries := entriesFor(t, "2024-06-01")
	month := day(t, "2024-06-01")
	today := day(t, "2024-06-05")
	records := Derive(month.Time, entries, today.Time)

	for dayNum := 1; dayNum <= 5; dayNum++ {
		if !records[dayNum-1].IsUnlocked {
			t.Fatalf("day %d on/before today should be unlocked", dayNum)
		}
	}
	if records[5].IsUnlocked {
		t.Fatalf("day 6 is after today and day 5 has no entry; must stay locked")
	}

	// Day strictly after today opens only via its predecessor's entry.
	entries = entriesFor(t, "2024-06-09")
	records = Derive(month.Time, entries, today.Time)
	if !records[9].IsUnlocked {
		t.Fatalf("day 10 should unlock because day 9 has an entry")
	}
	if records[10].IsUnlocked {
		t.Fatalf("day 11 should not unlock merely by sharing the month")
	}
}

func TestDeriveSingleActiveRecord(t *testing.T) {
	month := day(t, "2024-06-01")
	today := day(t, "2024-06-05")

	records := Derive(month.Time, nil, today.Time, WithActiveDate(day(t, "2024-06-12").Time))
	assertSingleActive(t, records, 11)

	// Active date outside the month falls back to today.
	records = Derive(month.Time, nil, today.Time, WithActiveDate(day(t, "2024-07-12").Time))
	assertSingleActive(t, records, 4)

	// Neither active date nor today in the month falls back to day 1.
	records = Derive(month.Time, nil, day(t, "2024-09-01").Time)
	assertSingleActive(t, records, 0)
}

func assertSingleActive(t *testing.T, records []DayRecord, wantIndex int) {
	t.Helper()
	count := 0
	for i, r := range records {
		if !r.IsActiveDate {
			continue
		}
		count++
		if i != wantIndex {
			t.Fatalf("active index = %d, want %d", i, wantIndex)
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one active record, got %d", count)
	}
	if ActiveIndex(records) != wantIndex {
		t.Fatalf("ActiveIndex = %d, want %d", ActiveIndex(records), wantIndex)
	}
}

func TestDeriveMilestones(t *testing.T) {
	d := day(t, "2024-06-11")
	entries := map[string]*journal.Entry{
		d.String(): journal.New(d, journal.TypeMilestone),
	}
	month := day(t, "2024-06-01")
	records := Derive(month.Time, entries, day(t, "2024-06-15").Time)

	for _, r := range records {
		want := r.Day == 1 || r.Day%7 == 0 || r.Day == 11
		if r.IsMilestone != want {
			t.Fatalf("day %d: IsMilestone = %v, want %v", r.Day, r.IsMilestone, want)
		}
	}
}

func TestDeriveIsPure(t *testing.T) {
	entries := entriesFor(t, "2024-06-01", "2024-06-08")
	month := day(t, "2024-06-01")
	today := day(t, "2024-06-10")

	a := Derive(month.Time, entries, today.Time)
	b := Derive(month.Time, entries, today.Time)
	if len(a) != len(b) {
		t.Fatalf("length mismatch across identical calls")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("day %d differs across identical calls", i+1)
		}
	}
}

func TestBuildPathStrictUnlock(t *testing.T) {
	entries := entriesFor(t, "2024-06-01")
	month := day(t, "2024-06-01")
	nodes := BuildPath(month.Time, entries, day(t, "2024-06-20").Time)

	if !nodes[0].Unlocked || !nodes[1].Unlocked {
		t.Fatalf("day 1 and the day after a recorded day must be unlocked")
	}
	// Strict rule: no past-or-today escape hatch.
	if nodes[2].Unlocked {
		t.Fatalf("day 3 should stay locked until day 2 is recorded")
	}
	for _, n := range nodes {
		want := n.Day == 1 || n.Day == 7 || n.Day == 14 || n.Day == 21 || n.Day == 28
		if n.IsMilestone != want {
			t.Fatalf("day %d: path milestone = %v, want %v", n.Day, n.IsMilestone, want)
		}
	}
}

func TestProgress(t *testing.T) {
	entries := entriesFor(t, "2024-06-01", "2024-06-02", "2024-06-03")
	month := day(t, "2024-06-01")
	s := Progress(Derive(month.Time, entries, day(t, "2024-06-05").Time))
	if s.Days != 30 || s.Recorded != 3 || s.Percent != 10 {
		t.Fatalf("unexpected summary %+v", s)
	}
}
