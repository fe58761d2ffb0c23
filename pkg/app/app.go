package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/pram/pkg/form"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeline"
)

// Service provides high-level operations over the entries store so the CLI
// and the TUIs can share logic. The derivation core stays storage-free; the
// service is the host that feeds it maps and writes form results back.
type Service struct {
	Persistence store.Persistence
}

// ErrDayLocked is returned when a form is requested for a locked day. The
// source app only disabled locked day cells in the UI; enforcing the rule
// here gives every host the same behavior.
var ErrDayLocked = errors.New("app: day is locked")

// Timeline derives the month view for the month containing month.
func (s *Service) Timeline(ctx context.Context, month, today time.Time, opts ...timeline.Option) ([]timeline.DayRecord, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	entries := s.Persistence.Month(ctx, month)
	return timeline.Derive(month, entries, today, opts...), nil
}

// Path derives the strict path view for the month containing month.
func (s *Service) Path(ctx context.Context, month, today time.Time) ([]timeline.PathNode, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	entries := s.Persistence.Month(ctx, month)
	return timeline.BuildPath(month, entries, today), nil
}

// Progress summarises entry coverage for the month containing month.
func (s *Service) Progress(ctx context.Context, month, today time.Time) (timeline.Summary, error) {
	records, err := s.Timeline(ctx, month, today)
	if err != nil {
		return timeline.Summary{}, err
	}
	return timeline.Progress(records), nil
}

// OpenForm opens an entry form for the given day, seeded from the stored
// entry when one exists. Locked days are rejected with ErrDayLocked.
func (s *Service) OpenForm(ctx context.Context, date journal.Date, today time.Time) (*form.Form, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}

	records, err := s.Timeline(ctx, date.Time, today)
	if err != nil {
		return nil, err
	}
	record := records[date.Day()-1]
	if !record.IsUnlocked {
		return nil, fmt.Errorf("%w: %s", ErrDayLocked, date)
	}

	if record.Entry != nil {
		return form.Edit(date, record.Entry), nil
	}
	return form.New(date), nil
}

// SaveForm commits the form and writes the resulting entry to the store.
// Validation failures leave the form open and the store untouched.
func (s *Service) SaveForm(_ context.Context, f *form.Form) (*journal.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	e, err := f.Save()
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Entry fetches the stored entry for a day.
func (s *Service) Entry(ctx context.Context, date journal.Date) (*journal.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Get(ctx, date)
}

// Remove deletes the entry for a day permanently.
func (s *Service) Remove(_ context.Context, date journal.Date) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.Delete(date)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
