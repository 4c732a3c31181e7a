package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fieldrover/bagflow/internal"
	"github.com/fieldrover/bagflow/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <bag-path>",
	Short: "Export extracted records to a file",
	Long: `Extract /Imu and /odom records from the bag and write them in the
chosen encoding (json, jsonl, yaml). Without --output the document is written
to stdout; otherwise to the given file, creating parent directories.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		reader, err := internal.OpenBag(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		result, err := internal.ExtractTopics(reader, internal.DefaultTopics())
		if err != nil {
			return fmt.Errorf("failed to extract topics: %w", err)
		}

		if exportOutput == "" {
			return exporter.Export(result, cmd.OutOrStdout())
		}

		if err := os.MkdirAll(filepath.Dir(exportOutput), 0o755); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}
		f, err := os.Create(exportOutput)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}
		defer f.Close()

		if err := exporter.Export(result, f); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: exportOutput, Err: err}
		}
		internal.LogInfo("exported %d record(s) to %s", result.Len("/Imu")+result.Len("/odom"), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, jsonl, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default stdout)")
}
