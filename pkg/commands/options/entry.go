package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the content flags for composing an entry.
type EntryOptions struct {
	Types      []string
	Weight     string
	Height     string
	Head       string
	Milestones []string
	Note       string
	Mood       string
	Media      []string
}

// AddEntryArgs wires entry content flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringSliceVarP(&o.Types, "type", "t", nil,
		"Entry types to record. One or more of 'note', 'growth', 'milestone', 'media'.")
	cmd.Flags().StringVar(&o.Weight, "weight", "",
		"Weight measurement in kg.")
	cmd.Flags().StringVar(&o.Height, "height", "",
		"Height measurement in cm.")
	cmd.Flags().StringVar(&o.Head, "head", "",
		"Head circumference in cm.")
	cmd.Flags().StringArrayVar(&o.Milestones, "milestone", nil,
		"Milestone text, repeatable.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Free form notes for the day.")
	cmd.Flags().StringVar(&o.Mood, "mood", "",
		"Mood for the day. One of 'happy', 'calm', 'tired', 'fussy', 'sick'.")
	cmd.Flags().StringArrayVar(&o.Media, "media", nil,
		"Path to a photo, document or recording, repeatable.")
}
