// Package form implements the multi-step authoring flow for a single day's
// journal entry. A Form lives only while the host's modal (or wizard) is
// open; it is seeded from an existing entry when editing and discarded on
// save or cancel, never partially persisted.
package form

import (
	"errors"
	"strings"

	"tableflip.dev/pram/pkg/journal"
)

// Step identifies one page of the entry form.
type Step string

const (
	// StepDetails selects entry types, notes, and mood. Always present.
	StepDetails Step = "details"
	// StepGrowth collects measurements and milestones. Present when the
	// growth or milestone type is selected.
	StepGrowth Step = "growth"
	// StepMedia manages attachments. Present when the media type is selected.
	StepMedia Step = "media"
)

// ComputeSteps derives the ordered step sequence for a type selection.
// The result is recomputed on every toggle rather than stored, so the step
// indicator and navigation gates can never drift out of sync.
func ComputeSteps(types []journal.Type) []Step {
	steps := []Step{StepDetails}
	for _, t := range types {
		if t == journal.TypeGrowth || t == journal.TypeMilestone {
			steps = append(steps, StepGrowth)
			break
		}
	}
	for _, t := range types {
		if t == journal.TypeMedia {
			steps = append(steps, StepMedia)
			break
		}
	}
	return steps
}

var (
	ErrLastStep  = errors.New("form: already on the last step")
	ErrFirstStep = errors.New("form: already on the first step")
	ErrClosed    = errors.New("form: form is closed")
)

// ValidationError reports a recoverable save failure; the form stays open
// and the user corrects the input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "form: " + e.Reason
}

// GrowthField names one measurement input on the growth step.
type GrowthField string

const (
	FieldWeight            GrowthField = "weight"
	FieldHeight            GrowthField = "height"
	FieldHeadCircumference GrowthField = "headCircumference"
)

// Form is the in-progress state for one day's entry.
type Form struct {
	date     journal.Date
	editing  bool
	closed   bool
	step     int // index into ComputeSteps(types)
	types    []journal.Type
	growth   journal.GrowthData
	stones   []string
	media    []journal.MediaItem
	notes    string
	mood     journal.Mood
	draft    string // staged milestone text
}

// New opens a blank form for the given day. New entries start as a note,
// matching the app's default selection.
func New(date journal.Date) *Form {
	return &Form{
		date:  date,
		types: []journal.Type{journal.TypeNote},
	}
}

// Edit opens a form seeded from an existing entry. The entry is deep-copied;
// the stored value is untouched until the host applies the saved result.
func Edit(date journal.Date, existing *journal.Entry) *Form {
	if existing == nil {
		return New(date)
	}
	cp := existing.Clone()
	f := &Form{
		date:    date,
		editing: true,
		types:   cp.Types,
		stones:  cp.Milestones,
		media:   cp.Media,
		notes:   cp.Notes,
		mood:    cp.Mood,
	}
	if cp.Growth != nil {
		f.growth = *cp.Growth
	}
	if len(f.types) == 0 {
		f.types = []journal.Type{journal.TypeNote}
	}
	return f
}

// Date returns the day being edited.
func (f *Form) Date() journal.Date { return f.date }

// Editing reports whether the form was seeded from an existing entry.
func (f *Form) Editing() bool { return f.editing }

// Closed reports whether the form has been saved or cancelled.
func (f *Form) Closed() bool { return f.closed }

// Steps returns the current valid step sequence.
func (f *Form) Steps() []Step { return ComputeSteps(f.types) }

// Current returns the step the form is on.
func (f *Form) Current() Step { return f.Steps()[f.step] }

// StepIndex returns the 1-based position of the current step, for the
// host's step indicator.
func (f *Form) StepIndex() int { return f.step + 1 }

// Types returns the selected entry types in toggle order.
func (f *Form) Types() []journal.Type { return append([]journal.Type(nil), f.types...) }

// HasType reports whether t is currently selected.
func (f *Form) HasType(t journal.Type) bool {
	for _, have := range f.types {
		if have == t {
			return true
		}
	}
	return false
}

// ToggleType flips membership of t in the selected types. The step sequence
// is derived, so toggling growth/milestone/media immediately changes which
// steps exist; if the current step falls off the end of the sequence the
// form clamps to the last valid step. Data entered for a deselected type is
// kept (see DESIGN.md).
func (f *Form) ToggleType(t journal.Type) {
	if f.closed {
		return
	}
	for i, have := range f.types {
		if have == t {
			f.types = append(f.types[:i], f.types[i+1:]...)
			f.clampStep()
			return
		}
	}
	f.types = append(f.types, t)
	f.clampStep()
}

func (f *Form) clampStep() {
	if last := len(f.Steps()) - 1; f.step > last {
		f.step = last
	}
}

// Next advances to the next applicable step.
func (f *Form) Next() error {
	if f.closed {
		return ErrClosed
	}
	if f.step >= len(f.Steps())-1 {
		return ErrLastStep
	}
	f.step++
	return nil
}

// Previous moves to the prior applicable step. Skipped steps are never
// visited: from the media step this returns straight to details when
// neither growth nor milestone is selected.
func (f *Form) Previous() error {
	if f.closed {
		return ErrClosed
	}
	if f.step == 0 {
		return ErrFirstStep
	}
	f.step--
	return nil
}

// UpdateGrowthField sets one measurement input.
func (f *Form) UpdateGrowthField(field GrowthField, value string) error {
	if f.closed {
		return ErrClosed
	}
	switch field {
	case FieldWeight:
		f.growth.Weight = value
	case FieldHeight:
		f.growth.Height = value
	case FieldHeadCircumference:
		f.growth.HeadCircumference = value
	default:
		return errors.New("form: unknown growth field " + string(field))
	}
	return nil
}

// Growth returns the measurement inputs as entered so far.
func (f *Form) Growth() journal.GrowthData { return f.growth }

// AddMilestone appends trimmed text to the milestone list. Empty or
// whitespace-only text is rejected and the list is unchanged.
func (f *Form) AddMilestone(text string) bool {
	if f.closed {
		return false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	f.stones = append(f.stones, text)
	return true
}

// RemoveMilestone deletes the milestone at index; out-of-range is a no-op.
func (f *Form) RemoveMilestone(index int) {
	if f.closed || index < 0 || index >= len(f.stones) {
		return
	}
	f.stones = append(f.stones[:index], f.stones[index+1:]...)
}

// Milestones returns the milestone texts recorded so far.
func (f *Form) Milestones() []string { return append([]string(nil), f.stones...) }

// SetDraft stages milestone text before it is committed.
func (f *Form) SetDraft(text string) {
	if f.closed {
		return
	}
	f.draft = text
}

// Draft returns the staged milestone text.
func (f *Form) Draft() string { return f.draft }

// CommitDraft appends the staged text as a milestone and clears the stage.
// The stage is kept when the text does not qualify.
func (f *Form) CommitDraft() bool {
	if !f.AddMilestone(f.draft) {
		return false
	}
	f.draft = ""
	return true
}

// AddMedia appends an already-resolved attachment.
func (f *Form) AddMedia(item journal.MediaItem) {
	if f.closed {
		return
	}
	f.media = append(f.media, item)
}

// RemoveMedia deletes the attachment at index; out-of-range is a no-op.
func (f *Form) RemoveMedia(index int) {
	if f.closed || index < 0 || index >= len(f.media) {
		return
	}
	f.media = append(f.media[:index], f.media[index+1:]...)
}

// Media returns the attachments recorded so far.
func (f *Form) Media() []journal.MediaItem { return append([]journal.MediaItem(nil), f.media...) }

// SetNotes replaces the free-text notes.
func (f *Form) SetNotes(text string) {
	if f.closed {
		return
	}
	f.notes = text
}

// Notes returns the free-text notes.
func (f *Form) Notes() string { return f.notes }

// SetMood records the day's mood.
func (f *Form) SetMood(m journal.Mood) {
	if f.closed {
		return
	}
	f.mood = m
}

// Mood returns the recorded mood.
func (f *Form) Mood() journal.Mood { return f.mood }

// Save validates and commits the form, returning the entry to write into
// the host's entries map. At least one entry type must be selected; on
// failure the form stays open with all data intact. Sub-data is emitted as
// entered, without filtering by the active types.
func (f *Form) Save() (*journal.Entry, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if len(f.types) == 0 {
		return nil, &ValidationError{Reason: "select at least one entry type"}
	}
	e := &journal.Entry{
		Date:       f.date,
		Types:      append([]journal.Type(nil), f.types...),
		Milestones: append([]string(nil), f.stones...),
		Media:      append([]journal.MediaItem(nil), f.media...),
		Notes:      f.notes,
		Mood:       f.mood,
	}
	if !f.growth.Empty() {
		g := f.growth
		e.Growth = &g
	}
	f.closed = true
	return e, nil
}

// Cancel discards all in-progress state unconditionally.
func (f *Form) Cancel() {
	f.closed = true
}
