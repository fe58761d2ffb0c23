package glyph

import (
	"fmt"

	"tableflip.dev/pram/pkg/journal"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// ForType returns the badge used for an entry type in timeline rows.
func ForType(t journal.Type) Glyph {
	switch t {
	case journal.TypeNote:
		return Glyph{Key: "-", Symbol: "⁃", Meaning: "note"}
	case journal.TypeGrowth:
		return Glyph{Key: "^", Symbol: "↑", Meaning: "growth measurements"}
	case journal.TypeMilestone:
		return Glyph{Key: "*", Symbol: "✷", Meaning: "milestone"}
	case journal.TypeMedia:
		return Glyph{Key: "@", Symbol: "▣", Meaning: "media attached"}
	}
	return Glyph{Symbol: " ", Meaning: "none"}
}

// ForMood returns the badge for a recorded mood.
func ForMood(m journal.Mood) Glyph {
	switch m {
	case journal.MoodHappy:
		return Glyph{Key: "h", Symbol: "☺", Meaning: "happy"}
	case journal.MoodCalm:
		return Glyph{Key: "c", Symbol: "○", Meaning: "calm"}
	case journal.MoodTired:
		return Glyph{Key: "t", Symbol: "–", Meaning: "tired"}
	case journal.MoodFussy:
		return Glyph{Key: "f", Symbol: "!", Meaning: "fussy"}
	case journal.MoodSick:
		return Glyph{Key: "s", Symbol: "✚", Meaning: "sick"}
	}
	return Glyph{Symbol: " ", Meaning: "none"}
}

// Day-state markers for timeline and path rows.
var (
	Today     = Glyph{Key: ".", Symbol: "●", Meaning: "today"}
	Entry     = Glyph{Key: "x", Symbol: "✔", Meaning: "entry recorded"}
	Unlocked  = Glyph{Key: "o", Symbol: "○", Meaning: "open for an entry"}
	Locked    = Glyph{Key: "#", Symbol: "·", Meaning: "locked"}
	Milestone = Glyph{Key: "*", Symbol: "✷", Meaning: "milestone day"}
)

func (g Glyph) String() string {
	return g.Symbol
}
