package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fieldrover/bagflow/internal"
	"github.com/spf13/cobra"
)

var replayFrequency int

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay <bag-path>",
	Short: "Extract IMU and odometry records and replay them to a sink",
	Long: `Run the full pipeline: print the bag summary, extract /Imu and /odom
messages into plain records, then emit them one per topic per tick at the
configured frequency. Each emission is a JSON payload printed to stdout,
tagged with its output id (imu_json, odom_json).

The loop stops once both sequences are exhausted, or on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayFrequency <= 0 {
			return fmt.Errorf("frequency must be a positive integer, got %d", replayFrequency)
		}

		reader, err := internal.OpenBag(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Parsing ROS2 bag from: %s\n", reader.Location.Dir)
		if err := internal.WriteSummary(out, reader); err != nil {
			return fmt.Errorf("failed to report bag summary: %w", err)
		}

		specs := internal.DefaultTopics()
		result, err := internal.ExtractTopics(reader, specs)
		if err != nil {
			return fmt.Errorf("failed to extract topics: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "Extracted %d IMU messages.\n", result.Len("/Imu"))
		fmt.Fprintf(out, "Extracted %d Odom messages.\n", result.Len("/odom"))
		if skipped := result.Skipped(); skipped > 0 {
			fmt.Fprintf(out, "Skipped %d corrupted message(s).\n", skipped)
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "Replaying extracted records at %d Hz...\n", replayFrequency)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		emitter := internal.NewEmitter(result, replayFrequency)
		err = emitter.Run(ctx, func(outputID string, data []byte, metadata interface{}) {
			fmt.Fprintf(out, "Sending %s: %s\n", outputID, data)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().IntVarP(&replayFrequency, "frequency", "f", internal.DefaultFrequency, "Emission frequency in Hz")
}
