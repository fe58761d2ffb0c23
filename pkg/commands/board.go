package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/app"
	"tableflip.dev/pram/pkg/board"
	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addBoard(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "open a read-only month board",
		Example: `
pram board
pram board -m "June 2024"
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
			svc := &app.Service{Persistence: p}

			ctx := context.Background()
			records, err := svc.Timeline(ctx, month, now)
			if err != nil {
				return err
			}
			return board.Do(ctx, name, records...)
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
