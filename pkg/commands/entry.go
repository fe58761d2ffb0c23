package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/journal"
	"tableflip.dev/pram/pkg/runner/compose"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addEntry(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	eo := &options.EntryOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "record or update the entry for a day",
		Long: `Record or update the journal entry for a day. The day must be
unlocked, which means it is the first of the month, the previous day
already has an entry, or the day is not in the future.`,
		Example: `
pram entry --note "first steps!"
pram entry -d yesterday --weight 4.2 --height 54
pram entry --milestone "rolled over" --media first-smile.jpg
pram entry -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			day, err := timeutil.ParseDay(do.Day, now)
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := compose.Compose{
				Date:        journal.DateOf(day),
				Today:       now,
				Types:       eo.Types,
				Weight:      eo.Weight,
				Height:      eo.Height,
				Head:        eo.Head,
				Milestones:  eo.Milestones,
				Note:        eo.Note,
				Mood:        eo.Mood,
				Media:       eo.Media,
				Interactive: io.Interactive,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
