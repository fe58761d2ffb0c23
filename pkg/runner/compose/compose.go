// Package compose drives the entry form from the command line: flags (or
// interactive prompts) stand in for the modal's inputs, and the committed
// entry is written back through the service.
package compose

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/pram/pkg/app"
	"tableflip.dev/pram/pkg/form"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/printers"
	"tableflip.dev/pram/pkg/prompt"
	"tableflip.dev/pram/pkg/store"
	tl "tableflip.dev/pram/pkg/timeline"
)

type Compose struct {
	Date  journal.Date
	Today time.Time

	Types      []string
	Weight     string
	Height     string
	Head       string
	Milestones []string
	Note       string
	Mood       string
	Media      []string

	Interactive bool

	Persistence store.Persistence
}

func (n *Compose) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compose, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}

	date := n.Date
	if n.Interactive {
		records, err := svc.Timeline(ctx, date.Time, n.Today, tl.WithActiveDate(date.Time))
		if err != nil {
			return err
		}
		picked, err := prompt.PickDay(records)
		if err != nil {
			return err
		}
		date = picked.Date
	}

	f, err := svc.OpenForm(ctx, date, n.Today)
	if err != nil {
		return err
	}

	if err := n.apply(f); err != nil {
		f.Cancel()
		return err
	}

	if n.Interactive {
		if err := n.applyInteractive(f); err != nil {
			f.Cancel()
			return err
		}
	}

	e, err := svc.SaveForm(ctx, f)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Entry(e)
	return nil
}

// apply replays the flag inputs through the form's transitions, the same
// path a UI host takes.
func (n *Compose) apply(f *form.Form) error {
	for _, raw := range n.Types {
		t, err := journal.ParseType(raw)
		if err != nil {
			return err
		}
		if !f.HasType(t) {
			f.ToggleType(t)
		}
	}

	growth := map[form.GrowthField]string{
		form.FieldWeight:            n.Weight,
		form.FieldHeight:            n.Height,
		form.FieldHeadCircumference: n.Head,
	}
	for field, value := range growth {
		if value == "" {
			continue
		}
		if !f.HasType(journal.TypeGrowth) {
			f.ToggleType(journal.TypeGrowth)
		}
		if err := f.UpdateGrowthField(field, value); err != nil {
			return err
		}
	}

	for _, m := range n.Milestones {
		if !f.HasType(journal.TypeMilestone) {
			f.ToggleType(journal.TypeMilestone)
		}
		if !f.AddMilestone(m) {
			return fmt.Errorf("milestone text is empty: %q", m)
		}
	}

	for _, path := range n.Media {
		if !f.HasType(journal.TypeMedia) {
			f.ToggleType(journal.TypeMedia)
		}
		f.AddMedia(mediaItem(path))
	}

	if n.Note != "" {
		f.SetNotes(n.Note)
	}

	if n.Mood != "" {
		mood, err := journal.ParseMood(n.Mood)
		if err != nil {
			return err
		}
		f.SetMood(mood)
	}

	return nil
}

func (n *Compose) applyInteractive(f *form.Form) error {
	if f.Mood() == journal.MoodUnset {
		mood, err := prompt.PickMood()
		if err != nil {
			return err
		}
		f.SetMood(mood)
	}
	if f.HasType(journal.TypeMilestone) && len(f.Milestones()) == 0 {
		text, err := prompt.MilestoneText()
		if err != nil {
			return err
		}
		f.AddMilestone(text)
	}
	return nil
}

// mediaItem resolves a path to an attachment record, inferring the kind
// from the extension.
func mediaItem(path string) journal.MediaItem {
	item := journal.MediaItem{
		URI:      "file://" + path,
		Filename: filepath.Base(path),
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".heic":
		item.Kind = journal.MediaImage
	case ".m4a", ".mp3", ".wav", ".aac":
		item.Kind = journal.MediaAudio
	default:
		item.Kind = journal.MediaDocument
	}
	return item
}
