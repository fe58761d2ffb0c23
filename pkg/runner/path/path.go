package path

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/pram/pkg/printers"
	"tableflip.dev/pram/pkg/store"
	tl "tableflip.dev/pram/pkg/timeline"
)

type Path struct {
	Month      time.Time
	MonthName  string
	Today      time.Time
	ShowLocked bool

	Persistence store.Persistence
}

func (n *Path) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not build path, no persistence")
	}

	entries := n.Persistence.Month(ctx, n.Month)
	nodes := tl.BuildPath(n.Month, entries, n.Today)

	pp := printers.PrettyPrint{ShowLocked: n.ShowLocked}
	fmt.Println("")
	pp.TitleWithProgress(n.MonthName, tl.Progress(tl.Derive(n.Month, entries, n.Today)))
	pp.Path(nodes...)

	return nil
}
