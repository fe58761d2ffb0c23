// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// MonthOptions captures month selection flags for timeline commands.
type MonthOptions struct {
	Month      string
	Active     string
	ShowLocked bool
}

// AddMonthArgs wires month-related flags on the provided command.
func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "current",
		"Specify the month, like 'June 2024', '2024-06', 'next' or 'previous'.")
}

// AddActiveDayArg registers the flag selecting which day is highlighted.
func AddActiveDayArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Active, "active", "",
		"Highlight a specific day, like '2024-06-03'.")
}

// AddShowLockedArg registers the flag revealing locked days.
func AddShowLockedArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().BoolVar(&o.ShowLocked, "show-locked", false,
		"Include days that are still locked.")
}
