package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/store"
)

type Remove struct {
	Date journal.Date

	Persistence store.Persistence
}

func (n *Remove) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	if err := n.Persistence.Delete(n.Date); err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Println(fmt.Sprintf("removed entry for %s", n.Date))
	return nil
}
