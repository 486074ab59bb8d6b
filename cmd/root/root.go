package root

import (
	"github.com/spf13/cobra"

	"unitimetable/cmd/catalog"
	"unitimetable/cmd/generate"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitimetable",
		Short: "Generates clash-free university timetables",
		Long: `Assigns every course of the selected programs to a day, period, room and
teacher such that no group, teacher or room is booked twice at the same time.`,
	}

	// add sub-commands
	rootCmd.AddCommand(generate.NewGenerateCommand())
	rootCmd.AddCommand(catalog.NewCatalogCommand())

	return rootCmd
}
