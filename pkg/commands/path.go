package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/runner/path"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addPath(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "show the milestone path for a month",
		Example: `
pram path
pram path -m "June 2024"
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

			s := path.Path{
				Month:       month,
				MonthName:   name,
				Today:       now,
				ShowLocked:  mo.ShowLocked,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddShowLockedArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
