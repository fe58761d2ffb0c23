package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/pram/pkg/app"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/store"
	tl "tableflip.dev/pram/pkg/timeline"
)

type fakePersistence struct {
	data map[string]*journal.Entry
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{data: map[string]*journal.Entry{}}
}

func (f *fakePersistence) Map(ctx context.Context) map[string]*journal.Entry {
	out := make(map[string]*journal.Entry, len(f.data))
	for k, e := range f.data {
		out[k] = e.Clone()
	}
	return out
}

func (f *fakePersistence) Month(ctx context.Context, month time.Time) map[string]*journal.Entry {
	out := map[string]*journal.Entry{}
	for k, e := range f.data {
		if e.Date.SameMonth(month) {
			out[k] = e.Clone()
		}
	}
	return out
}

func (f *fakePersistence) Get(ctx context.Context, date journal.Date) (*journal.Entry, error) {
	if e, ok := f.data[date.String()]; ok {
		return e.Clone(), nil
	}
	return nil, store.ErrNotFound
}

func (f *fakePersistence) Put(e *journal.Entry) error {
	f.data[e.Date.String()] = e.Clone()
	return nil
}

func (f *fakePersistence) Delete(date journal.Date) error {
	delete(f.data, date.String())
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func loadedModel(t *testing.T, p store.Persistence, today time.Time) Model {
	t.Helper()
	m := New(&app.Service{Persistence: p}, today)

	msg := m.loadMonth()()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("loading month: %v", err.err)
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func seedEntry(t *testing.T, p store.Persistence, day string, types ...journal.Type) journal.Date {
	t.Helper()
	d, err := journal.ParseDate(day)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	e := journal.New(d, types...)
	e.Notes = "seeded"
	if err := p.Put(e); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return d
}

func TestInitialLoadPlacesCursorOnToday(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)

	if len(m.records) != 30 {
		t.Fatalf("expected 30 day records for June, got %d", len(m.records))
	}
	if m.cursor != 9 {
		t.Fatalf("expected cursor on today (index 9), got %d", m.cursor)
	}
	if got := tl.ActiveIndex(m.records); got != m.cursor {
		t.Fatalf("cursor %d does not match active index %d", m.cursor, got)
	}
}

func TestBrowseCursorStaysInBounds(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	if m.cursor != 0 {
		t.Fatalf("expected cursor at index 0, got %d", m.cursor)
	}

	next, _ := m.Update(keyPress("left"))
	m = next.(Model)
	if m.cursor != 0 {
		t.Fatalf("cursor moved below zero: %d", m.cursor)
	}

	for i := 0; i < 40; i++ {
		next, _ = m.Update(keyPress("right"))
		m = next.(Model)
	}
	if m.cursor != len(m.records)-1 {
		t.Fatalf("expected cursor pinned to last day, got %d", m.cursor)
	}
}

func TestMonthNavigationReloads(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)

	next, cmd := m.Update(keyPress("]"))
	m = next.(Model)
	if m.month.Month() != time.July {
		t.Fatalf("expected July after ], got %s", m.month.Month())
	}
	if cmd == nil {
		t.Fatalf("expected a reload command after month change")
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok && len(batch) > 0 {
		msg = batch[0]()
	}
	loaded, ok := msg.(monthLoadedMsg)
	if !ok {
		t.Fatalf("expected monthLoadedMsg, got %T", msg)
	}
	if len(loaded.records) != 31 {
		t.Fatalf("expected 31 records for July, got %d", len(loaded.records))
	}
}

func TestEnterOnLockedDaySetsStatus(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 19 // June 20, locked

	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	if m.mode != modeBrowse {
		t.Fatalf("expected to stay in browse mode")
	}
	if !strings.Contains(m.status, "locked") {
		t.Fatalf("expected locked status, got %q", m.status)
	}
}

func TestEnterOpensFormForUnlockedDay(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 2 // June 3, before today

	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	if m.mode != modeForm {
		t.Fatalf("expected form mode after enter")
	}
	if m.form == nil {
		t.Fatalf("expected a form to be opened")
	}
	if m.form.Editing() {
		t.Fatalf("expected a fresh form for a day with no entry")
	}
	if got := m.form.Date().String(); got != "2024-06-03" {
		t.Fatalf("form opened for wrong date: %s", got)
	}
}

func TestFormToggleTypesChangesSteps(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	if got := len(m.form.Steps()); got != 1 {
		t.Fatalf("expected a single step for a note-only form, got %d", got)
	}

	next, _ = m.Update(keyPress("2"))
	m = next.(Model)
	if got := len(m.form.Steps()); got != 2 {
		t.Fatalf("expected growth step after toggling type, got %d steps", got)
	}

	next, _ = m.Update(keyPress("4"))
	m = next.(Model)
	if got := len(m.form.Steps()); got != 3 {
		t.Fatalf("expected media step after toggling type, got %d steps", got)
	}
}

func TestSaveWritesThroughAndReturnsToBrowse(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	m.enterInput(targetNotes, "")
	m.input.SetValue("first bath")
	next, _ = m.Update(keyPress("enter"))
	m = next.(Model)
	if m.mode != modeForm {
		t.Fatalf("expected to return to form mode after committing input")
	}

	next, cmd := m.Update(keyPress("s"))
	m = next.(Model)
	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after save")
	}
	if cmd == nil {
		t.Fatalf("expected reload command after save")
	}

	got, err := p.Get(context.Background(), mustDate(t, "2024-06-01"))
	if err != nil {
		t.Fatalf("entry was not persisted: %v", err)
	}
	if got.Notes != "first bath" {
		t.Fatalf("expected notes to round trip, got %q", got.Notes)
	}
}

func TestSaveWithoutTypesKeepsFormOpen(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	// Deselect the default note type so nothing remains selected.
	next, _ = m.Update(keyPress("1"))
	m = next.(Model)

	next, _ = m.Update(keyPress("s"))
	m = next.(Model)

	if m.mode != modeForm {
		t.Fatalf("expected to stay in form mode after failed save")
	}
	if m.status == "" {
		t.Fatalf("expected a validation status message")
	}
	if len(p.data) != 0 {
		t.Fatalf("nothing should be stored after a failed save")
	}
}

func TestEscCancelsForm(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	next, _ = m.Update(keyPress("esc"))
	m = next.(Model)

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after cancel")
	}
	if m.form != nil {
		t.Fatalf("expected form to be dropped on cancel")
	}
	if len(p.data) != 0 {
		t.Fatalf("cancel must not persist anything")
	}
}

func TestMilestoneInputRejectsBlank(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)

	m := loadedModel(t, p, today)
	m.cursor = 0
	next, _ := m.Update(keyPress("enter"))
	m = next.(Model)

	next, _ = m.Update(keyPress("3"))
	m = next.(Model)

	m.enterInput(targetMilestone, "")
	m.input.SetValue("   ")
	next, _ = m.Update(keyPress("enter"))
	m = next.(Model)

	if got := len(m.form.Milestones()); got != 0 {
		t.Fatalf("blank milestone must not be recorded, got %d", got)
	}
	if !strings.Contains(m.status, "milestone") {
		t.Fatalf("expected milestone status message, got %q", m.status)
	}

	m.enterInput(targetMilestone, "")
	m.input.SetValue("  rolled over  ")
	next, _ = m.Update(keyPress("enter"))
	m = next.(Model)

	stones := m.form.Milestones()
	if len(stones) != 1 || stones[0] != "rolled over" {
		t.Fatalf("expected trimmed milestone, got %v", stones)
	}
}

func TestRemoveEntryFromBrowse(t *testing.T) {
	p := newFakePersistence()
	today := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	seedEntry(t, p, "2024-06-03", journal.TypeNote)

	m := loadedModel(t, p, today)
	m.cursor = 2

	next, cmd := m.Update(keyPress("x"))
	m = next.(Model)

	if len(p.data) != 0 {
		t.Fatalf("expected entry to be removed")
	}
	if cmd == nil {
		t.Fatalf("expected reload command after remove")
	}
	if !strings.Contains(m.status, "removed") {
		t.Fatalf("expected removal status, got %q", m.status)
	}
}

func mustDate(t *testing.T, s string) journal.Date {
	t.Helper()
	d, err := journal.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
