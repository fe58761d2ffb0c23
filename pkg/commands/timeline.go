package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/runner/timeline"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addTimeline(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "show the day timeline for a month",
		Example: `
pram timeline
pram timeline --month previous
pram timeline -m "June 2024" --show-locked
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			month, name, err := timeutil.ParseMonth(mo.Month, now)
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := timeline.Timeline{
				Month:       month,
				MonthName:   name,
				Today:       now,
				ShowLocked:  mo.ShowLocked,
				Persistence: p,
			}
			if mo.Active != "" {
				active, err := timeutil.ParseDay(mo.Active, now)
				if err != nil {
					return err
				}
				s.ActiveDate = &active
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddActiveDayArg(cmd, mo)
	options.AddShowLockedArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
