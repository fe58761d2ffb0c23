// Package prompt provides interactive pickers for days, moods, and
// milestone text.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/timeline"
)

// PickDay selects one unlocked day from the derived month. Locked days are
// not offered at all.
func PickDay(records []timeline.DayRecord) (timeline.DayRecord, error) {
	open := make([]timeline.DayRecord, 0, len(records))
	cursor := 0
	for _, r := range records {
		if !r.IsUnlocked {
			continue
		}
		if r.IsActiveDate {
			cursor = len(open)
		}
		open = append(open, r)
	}
	if len(open) == 0 {
		return timeline.DayRecord{}, errors.New("prompt: no unlocked days")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .DayName | bold }} {{ .Day | bold }}{{ if .HasEntry }} {{ \"recorded\" | green }}{{ end }}",
		Inactive: "   {{ .DayName }} {{ .Day }}{{ if .HasEntry }} {{ \"recorded\" | cyan }}{{ end }}",
		Selected: "{{ .Date | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(fmt.Sprintf("%s %d", open[index].DayName, open[index].Day))
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Day",
		Items:     open,
		Templates: templates,
		Size:      10,
		CursorPos: cursor,
		Searcher:  searcher,
	}

	i, _, err := sel.Run()
	if err != nil {
		return timeline.DayRecord{}, err
	}
	return open[i], nil
}

// PickMood selects a mood, with "skip" mapping to unset.
func PickMood() (journal.Mood, error) {
	items := []string{"skip"}
	for _, m := range journal.AllMoods() {
		items = append(items, string(m))
	}

	sel := promptui.Select{
		HideHelp: true,
		Label:    "Mood",
		Items:    items,
		Size:     len(items),
	}
	i, _, err := sel.Run()
	if err != nil {
		return journal.MoodUnset, err
	}
	if i == 0 {
		return journal.MoodUnset, nil
	}
	return journal.ParseMood(items[i])
}

// MilestoneText prompts for one milestone; blank input is rejected the same
// way the form rejects it.
func MilestoneText() (string, error) {
	p := promptui.Prompt{
		Label: "Milestone",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("milestone text required")
			}
			return nil
		},
	}
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}
