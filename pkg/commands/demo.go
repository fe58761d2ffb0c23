package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/commands/options"
	"tableflip.dev/pram/pkg/runner/demo"
	"tableflip.dev/pram/pkg/store"
	"tableflip.dev/pram/pkg/timeutil"
)

func addDemo(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	so := &options.SeedOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "seed a month with sample entries",
		Example: `
pram demo
pram demo -m previous --seed 42
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			month, _, err := timeutil.ParseMonth(mo.Month, now)
			if err != nil {
				return err
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := demo.Demo{
				Month:       month,
				Today:       now,
				Seed:        so.Seed,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddSeedArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
