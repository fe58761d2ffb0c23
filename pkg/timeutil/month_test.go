package timeutil

import (
	"testing"
	"time"
)

var now = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "June 2024"},
		{"this", "June 2024"},
		{"current", "June 2024"}, // the --month flag default
		{"next", "July 2024"},
		{"last", "May 2024"},
		{"prev", "May 2024"},
		{"previous", "May 2024"},
		{"2024-01", "January 2024"},
		{"December 2023", "December 2023"},
	}
	for _, tc := range cases {
		got, name, err := ParseMonth(tc.in, now)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if name != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, name)
		}
		if got.Day() != 1 {
			t.Fatalf("%q: expected first of month, got day %d", tc.in, got.Day())
		}
	}
	if _, _, err := ParseMonth("junk", now); err == nil {
		t.Fatalf("expected error for unparseable month")
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "2024-06-15"},
		{"today", "2024-06-15"},
		{"yesterday", "2024-06-14"},
		{"tomorrow", "2024-06-16"},
		{"2024-02-29", "2024-02-29"},
		{"January 2, 2025", "2025-01-02"},
	}
	for _, tc := range cases {
		got, err := ParseDay(tc.in, now)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got.Format("2006-01-02") != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.in, tc.want, got.Format("2006-01-02"))
		}
	}
	if _, err := ParseDay("someday", now); err == nil {
		t.Fatalf("expected error for unparseable day")
	}
}

func TestMonthStepping(t *testing.T) {
	dec := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	if next := NextMonth(dec); next.Year() != 2025 || next.Month() != time.January {
		t.Fatalf("expected January 2025, got %v", next)
	}
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if prev := PrevMonth(jan); prev.Year() != 2023 || prev.Month() != time.December {
		t.Fatalf("expected December 2023, got %v", prev)
	}
}
