package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/runner/show"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the entry for a day",
		Example: `
pram show
pram show -d 2024-06-03
pram show -d yesterday --json
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

			s := show.Show{
				Date:        journal.DateOf(day),
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
