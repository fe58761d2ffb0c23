// Package samples generates mock journal entries for demos, mirroring the
// on-the-fly sample data the app seeds its growth journal with.
package samples

import (
	"fmt"
	"math/rand"
	"time"

	"tableflip.dev/pram/pkg/journal"
)

var milestoneTexts = []string{
	"First smile",
	"Rolled over",
	"First laugh",
	"Slept through the night",
	"First tooth",
	"Sat up unassisted",
	"First word",
	"First crawl",
}

var noteTexts = []string{
	"Tried sweet potato for the first time.",
	"Long nap in the pram after the morning walk.",
	"Very giggly at bath time.",
	"A bit restless, teething maybe.",
	"Loved the new rattle.",
}

var moods = journal.AllMoods()

// Generate produces entries for roughly a third of the days of the month
// containing month, never beyond today when today falls in that month.
// The generator is deterministic for a given rng seed.
func Generate(month, today time.Time, rng *rand.Rand) []*journal.Entry {
	last := journal.DaysIn(month)
	if journal.DateOf(today).SameMonth(month) {
		last = today.Day()
	}

	entries := make([]*journal.Entry, 0, last)
	for day := 1; day <= last; day++ {
		if rng.Intn(3) != 0 {
			continue
		}
		d := journal.DateOf(time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC))
		entries = append(entries, randomEntry(d, rng))
	}
	return entries
}

func randomEntry(d journal.Date, rng *rand.Rand) *journal.Entry {
	e := journal.New(d, journal.TypeNote)
	e.Notes = noteTexts[rng.Intn(len(noteTexts))]
	e.Mood = moods[rng.Intn(len(moods))]

	if rng.Intn(2) == 0 {
		e.Types = append(e.Types, journal.TypeGrowth)
		e.Growth = &journal.GrowthData{
			Weight:            fmt.Sprintf("%.1f", 5.5+rng.Float64()*4),
			Height:            fmt.Sprintf("%.1f", 58+rng.Float64()*16),
			HeadCircumference: fmt.Sprintf("%.1f", 38+rng.Float64()*6),
		}
	}
	if rng.Intn(4) == 0 {
		e.Types = append(e.Types, journal.TypeMilestone)
		e.Milestones = []string{milestoneTexts[rng.Intn(len(milestoneTexts))]}
	}
	if rng.Intn(4) == 0 {
		e.Types = append(e.Types, journal.TypeMedia)
		e.Media = []journal.MediaItem{{
			Kind:     journal.MediaImage,
			URI:      fmt.Sprintf("file://photos/%s.jpg", d),
			Filename: fmt.Sprintf("%s.jpg", d),
		}}
	}
	return e
}
