package cmd

import (
	"fmt"

	"github.com/fieldrover/bagflow/internal"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <bag-path>",
	Short: "Print the bag summary report",
	Long: `Print summary statistics for a ROS2 bag: total size, storage id,
duration, start/end timestamps, message total and a per-topic line with
name, type, message count and serialization format.

The path may be the bag directory or a .db3 file inside it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := internal.OpenBag(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Parsing ROS2 bag from: %s\n", reader.Location.Dir)
		if err := internal.WriteSummary(cmd.OutOrStdout(), reader); err != nil {
			return fmt.Errorf("failed to report bag summary: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
