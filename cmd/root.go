package cmd

import (
	"fmt"
	"os"

	"github.com/fieldrover/bagflow/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bagflow",
	Short: "Inspect ROS2 bags and replay IMU/odometry topics into a dataflow sink",
	Long: `A CLI tool for working with ROS2 bag recordings (sqlite3 storage).

bagflow reads the bag's SQLite data file and metadata.yaml directly, prints
summary statistics, extracts recognized topics (IMU, odometry) into plain
JSON-shaped records, and replays them to a downstream sink at a fixed rate.

Quick Start:
  bagflow info <bag-path>               # Print the bag summary report
  bagflow topics <bag-path>             # List recorded topics
  bagflow replay <bag-path> -f 10       # Extract and replay at 10 Hz
  bagflow export <bag-path> --format json`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
