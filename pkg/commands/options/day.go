package options

import (
	"github.com/spf13/cobra"
)

// DayOptions captures the day selection flag for entry commands.
type DayOptions struct {
	Day string
}

// AddDayArgs wires the day flag on the provided command.
func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "today",
		"Specify the day, like '2024-06-03', 'today' or 'yesterday'.")
}
