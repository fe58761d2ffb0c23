package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses an ISO day string (YYYY-MM-DD).
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Date is a calendar day with no time-of-day component. It is the key type
// for the entries map, so marshaling must stay timezone-stable.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) SameDay(then time.Time) bool {
	if d.Day() == then.Day() &&
		d.Month() == then.Month() &&
		d.Year() == then.Year() {
		return true
	}
	return false
}

func (d Date) SameMonth(then time.Time) bool {
	if d.Month() == then.Month() &&
		d.Year() == then.Year() {
		return true
	}
	return false
}

// Prev returns the previous calendar day.
func (d Date) Prev() Date {
	return DateOf(d.AddDate(0, 0, -1))
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.AddDate(0, 0, 1))
}

// DayName is the short weekday name, e.g. "Mon".
func (d Date) DayName() string {
	return d.Format("Mon")
}

func (d *Date) MarshalJSON() ([]byte, error) {
	if d == nil || d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d)), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var day string
	if err := json.Unmarshal(b, &day); err != nil {
		return err
	}
	if day == "" {
		d.Time = time.Time{}
		return nil
	}
	var err error
	*d, err = ParseDate(day)
	return err
}

func (d Date) String() string {
	return d.Format(layoutISO)
}

// DaysIn reports the number of days in the month containing then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
