package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/printers"
	"tableflip.dev/pram/pkg/store"
)

type Show struct {
	Date journal.Date
	JSON bool

	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	e, err := n.Persistence.Get(ctx, n.Date)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if e == nil {
		pp.Title(n.Date.Format("January 2, 2006"))
	}
	pp.Entry(e)
	return nil
}
