package options

import (
	"github.com/spf13/cobra"
)

// SeedOptions captures the random seed flag for sample data.
type SeedOptions struct {
	Seed int64
}

// AddSeedArgs wires the seed flag on the provided command.
func AddSeedArgs(cmd *cobra.Command, o *SeedOptions) {
	cmd.Flags().Int64Var(&o.Seed, "seed", 0,
		"Random seed for generated entries. Zero picks one from the clock.")
}
