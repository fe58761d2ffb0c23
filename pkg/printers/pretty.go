package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pram/pkg/glyph"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/timeline"
)

type PrettyPrint struct {
	ShowLocked bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithProgress renders the month heading with its recorded-day count.
func (pp *PrettyPrint) TitleWithProgress(title string, s timeline.Summary) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d of %d days", s.Recorded, s.Days)

	switch s.Percent {
	case 100:
		_, _ = c.Println(" (complete)")
	default:
		_, _ = c.Printf(" (%d%%)\n", s.Percent)
	}
}

// Timeline renders the derived month as a table, one row per day.
func (pp *PrettyPrint) Timeline(records ...timeline.DayRecord) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "

	for _, r := range records {
		if !r.IsUnlocked && !pp.ShowLocked {
			continue
		}
		tbl.AddRow(dayMarker(r), fmt.Sprintf("%2d", r.Day), r.DayName, badges(r.Entry), summary(r))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Path renders the strict path view: nodes up to the first locked day.
func (pp *PrettyPrint) Path(nodes ...timeline.PathNode) {
	tbl := uitable.New()
	tbl.Separator = " "

	for _, n := range nodes {
		if !n.Unlocked && !pp.ShowLocked {
			break
		}
		marker := glyph.Unlocked
		switch {
		case n.HasEntry:
			marker = glyph.Entry
		case n.IsToday:
			marker = glyph.Today
		case !n.Unlocked:
			marker = glyph.Locked
		}
		node := fmt.Sprintf("%2d", n.Day)
		if n.IsMilestone {
			node = glyph.Bold(node + " " + glyph.Milestone.String())
		}
		tbl.AddRow(marker.String(), node, n.DayName, badges(n.Entry))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Entry renders one day's full record.
func (pp *PrettyPrint) Entry(e *journal.Entry) {
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	pp.Title(e.Title())

	t := color.New()
	faint := color.New(color.Faint)

	_, _ = t.Printf("%s %s\n", badges(e), e.Summary())
	if e.Mood != journal.MoodUnset {
		_, _ = t.Printf("mood: %s %s\n", glyph.ForMood(e.Mood), e.Mood)
	}
	if e.Notes != "" {
		_, _ = t.Println(e.Notes)
	}
	if !e.Growth.Empty() {
		tbl := uitable.New()
		tbl.Separator = " "
		if e.Growth.Weight != "" {
			tbl.AddRow("weight:", e.Growth.Weight+" kg")
		}
		if e.Growth.Height != "" {
			tbl.AddRow("height:", e.Growth.Height+" cm")
		}
		if e.Growth.HeadCircumference != "" {
			tbl.AddRow("head:", e.Growth.HeadCircumference+" cm")
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	for _, m := range e.Milestones {
		_, _ = t.Printf("%s %s\n", glyph.Milestone, m)
	}
	for _, m := range e.Media {
		_, _ = faint.Printf("%s %s (%s)\n", glyph.ForType(journal.TypeMedia), m.Filename, m.Kind)
	}
	_, _ = t.Println("")
}

func dayMarker(r timeline.DayRecord) string {
	g := glyph.Unlocked
	switch {
	case r.HasEntry:
		g = glyph.Entry
	case r.IsToday:
		g = glyph.Today
	case !r.IsUnlocked:
		g = glyph.Locked
	}
	if r.IsActiveDate {
		return glyph.Bold(g.String())
	}
	return g.String()
}

func badges(e *journal.Entry) string {
	if e == nil {
		return " "
	}
	parts := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		parts = append(parts, glyph.ForType(t).String())
	}
	return strings.Join(parts, "")
}

func summary(r timeline.DayRecord) string {
	switch {
	case r.Entry != nil:
		return r.Entry.Summary()
	case r.IsMilestone:
		return "milestone day"
	case !r.IsUnlocked:
		return "locked"
	default:
		return ""
	}
}
