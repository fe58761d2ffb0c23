package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/runner/remove"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addRemove(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "remove the entry for a day",
		Example: `
pram remove -d 2024-06-03
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := timeutil.ParseDay(do.Day, time.Now())
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := remove.Remove{
				Date:        journal.DateOf(day),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDayArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
