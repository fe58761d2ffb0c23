package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pram",
		Short: base.Wrap80("A day-by-day baby journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBoard(topLevel)
	addTimeline(topLevel)
	addPath(topLevel)
	addEntry(topLevel)
	addShow(topLevel)
	addRemove(topLevel)
	addDemo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
