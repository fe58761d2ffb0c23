package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pram/pkg/app"
	"tableflip.dev/pram/pkg/runner/tui"
	"tableflip.dev/pram/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive month browser",
		Example: `
pram ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := &app.Service{Persistence: p}
			return tui.Run(svc, time.Now())
		},
	}

	topLevel.AddCommand(cmd)
}
