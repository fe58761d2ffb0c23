package demo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/pram/pkg/samples"
	"tableflip.dev/pram/pkg/store"
)

type Demo struct {
	Month time.Time
	Today time.Time
	Seed  int64

	Persistence store.Persistence
}

func (n *Demo) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not seed demo data, no persistence")
	}

	seed := n.Seed
	if seed == 0 {
		seed = n.Today.UnixNano()
	}

	entries := samples.Generate(n.Month, n.Today, rand.New(rand.NewSource(seed)))
	for _, e := range entries {
		if err := n.Persistence.Put(e); err != nil {
			return err
		}
	}

	f := color.New(color.Faint)
	_, _ = f.Println(fmt.Sprintf("seeded %d sample entries for %s", len(entries), n.Month.Format("January 2006")))
	return nil
}
