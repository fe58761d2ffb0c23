package journal

import (
	"strings"
)

// New creates an entry for the given day with the provided types.
func New(date Date, types ...Type) *Entry {
	return &Entry{
		Date:  date,
		Types: types,
	}
}

// Entry is one calendar day's recorded observations. Exactly one entry
// exists per date; the entries map is keyed by Date.String().
type Entry struct {
	Date       Date        `json:"date"`
	Types      []Type      `json:"entryTypes"`
	Growth     *GrowthData `json:"growthData,omitempty"`
	Milestones []string    `json:"milestones,omitempty"`
	Media      []MediaItem `json:"mediaItems,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Mood       Mood        `json:"mood,omitempty"`
}

// GrowthData holds optional measurements. Values stay strings; the source
// app performs no numeric coercion at entry time.
type GrowthData struct {
	Weight            string `json:"weight,omitempty"`
	Height            string `json:"height,omitempty"`
	HeadCircumference string `json:"headCircumference,omitempty"`
}

// Empty reports whether no measurement has been recorded.
func (g *GrowthData) Empty() bool {
	return g == nil || (g.Weight == "" && g.Height == "" && g.HeadCircumference == "")
}

// MediaItem is an already-resolved attachment handed over by the host;
// pickers and permissions live outside this model.
type MediaItem struct {
	Kind     MediaKind `json:"type"`
	URI      string    `json:"uri"`
	Filename string    `json:"filename"`
	Duration string    `json:"duration,omitempty"` // audio only
}

// HasType reports whether t is among the entry's types.
func (e *Entry) HasType(t Type) bool {
	for _, have := range e.Types {
		if have == t {
			return true
		}
	}
	return false
}

// Title returns the display heading for the entry.
func (e *Entry) Title() string {
	return e.Date.Format("January 2, 2006")
}

// Summary renders a one-line digest of the entry's types.
func (e *Entry) Summary() string {
	parts := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy so form edits never alias stored state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Types = append([]Type(nil), e.Types...)
	cp.Milestones = append([]string(nil), e.Milestones...)
	cp.Media = append([]MediaItem(nil), e.Media...)
	if e.Growth != nil {
		g := *e.Growth
		cp.Growth = &g
	}
	return &cp
}
