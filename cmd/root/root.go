package root

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combin/cmd/schedule"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "combin",
		Short: "combin enumerates integer vectors under constraints",
		Long: `Exhaustive, constraint-pruned enumeration of integer vectors.
For more information visit https://github.com/katalvlaran/combin`,
	}

	// add sub-commands
	rootCmd.AddCommand(schedule.NewScheduleCommand())

	return rootCmd
}
