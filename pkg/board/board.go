// Package board shows a month of day records in a two pane terminal
// board. The left pane lists the days, the right pane shows the entry
// recorded for the selected day.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/pram/pkg/glyph"
	"tableflip.dev/pram/pkg/journal"
	tl "tableflip.dev/pram/pkg/timeline"
)

func Do(ctx context.Context, title string, records ...tl.DayRecord) error {
	dTable := tui.NewTable(1, 0)

	days := tui.NewVBox(
		dTable,
		tui.NewSpacer(),
	)
	days.SetBorder(true)
	days.SetSizePolicy(tui.Preferred, tui.Expanding)

	eTable := tui.NewTable(1, 0)
	eTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use up or down arrows to pick a day, ESC or 'q' to QUIT`)

	detail := tui.NewVBox(eTable)
	detail.SetTitle(title)
	detail.SetBorder(true)
	detail.SetSizePolicy(tui.Expanding, tui.Maximum)

	root := tui.NewVBox(
		tui.NewHBox(days, detail),
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		Records:    records,
		days:       dTable,
		daysTitle:  title,
		daysView:   days,
		detail:     eTable,
		detailView: detail,
	}
	d.populateDays()

	dTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateDetail()
	})

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	dTable.SetFocused(true)
	d.populateDetail()

	if err := ui.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	Records []tl.DayRecord

	dirty int

	days      *tui.Table
	daysTitle string
	daysView  *tui.Box

	detail     *tui.Table
	detailView *tui.Box
}

func (d *impl) populateDays() {
	d.days.RemoveRows()

	start := 0
	for i, r := range d.Records {
		if r.IsActiveDate {
			start = i
		}
		marker := glyph.Unlocked
		switch {
		case r.HasEntry:
			marker = glyph.Entry
		case r.IsToday:
			marker = glyph.Today
		case !r.IsUnlocked:
			marker = glyph.Locked
		}
		d.days.AppendRow(tui.NewLabel(fmt.Sprintf("%s %2d %s", marker, r.Day, r.DayName)))
	}
	d.dirty = -1
	d.days.Select(start)
}

func (d *impl) populateDetail() {
	selected := d.days.Selected()
	if selected < 0 || selected >= len(d.Records) {
		return
	}
	if d.dirty == selected {
		return
	}
	d.dirty = selected

	r := d.Records[selected]
	d.detail.RemoveRows()
	d.detailView.SetTitle(r.Date.Format("January 2, 2006"))

	switch {
	case r.Entry != nil:
		for _, line := range detailLines(r.Entry) {
			d.detail.AppendRow(tui.NewLabel(line))
		}
	case !r.IsUnlocked:
		d.detail.AppendRow(tui.NewLabel("locked"))
	default:
		d.detail.AppendRow(tui.NewLabel("no entry yet"))
	}
}

func detailLines(e *journal.Entry) []string {
	lines := []string{e.Summary()}
	if e.Mood != journal.MoodUnset {
		lines = append(lines, fmt.Sprintf("mood: %s %s", glyph.ForMood(e.Mood), e.Mood))
	}
	if e.Notes != "" {
		lines = append(lines, e.Notes)
	}
	if !e.Growth.Empty() {
		g := e.Growth
		parts := make([]string, 0, 3)
		if g.Weight != "" {
			parts = append(parts, "weight "+g.Weight+" kg")
		}
		if g.Height != "" {
			parts = append(parts, "height "+g.Height+" cm")
		}
		if g.HeadCircumference != "" {
			parts = append(parts, "head "+g.HeadCircumference+" cm")
		}
		lines = append(lines, strings.Join(parts, ", "))
	}
	for _, s := range e.Milestones {
		lines = append(lines, fmt.Sprintf("%s %s", glyph.Milestone, s))
	}
	for _, item := range e.Media {
		lines = append(lines, fmt.Sprintf("%s %s (%s)", glyph.ForType(journal.TypeMedia), item.Filename, item.Kind))
	}
	return lines
}
