package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/pram/pkg/printers"
	"tableflip.dev/pram/pkg/store"
	tl "tableflip.dev/pram/pkg/timeline"
)

type Timeline struct {
	Month      time.Time
	MonthName  string
	Today      time.Time
	ActiveDate *time.Time
	ShowLocked bool

	Persistence store.Persistence
}

func (n *Timeline) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not derive timeline, no persistence")
	}

	entries := n.Persistence.Month(ctx, n.Month)

	opts := []tl.Option{}
	if n.ActiveDate != nil {
		opts = append(opts, tl.WithActiveDate(*n.ActiveDate))
	}
	records := tl.Derive(n.Month, entries, n.Today, opts...)

	pp := printers.PrettyPrint{ShowLocked: n.ShowLocked}
	fmt.Println("")
	pp.TitleWithProgress(n.MonthName, tl.Progress(records))
	pp.Timeline(records...)

	return nil
}
