package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fieldrover/bagflow/internal"
)

func TestExportCommandJSONFile(t *testing.T) {
	bagDir := fixtureBagDir(t)
	outPath := filepath.Join(t.TempDir(), "out", "records.json")

	_, err := execute(t, "export", bagDir, "--format", "json", "--output", outPath)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read export file: %v", err)
	}
	var doc map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("export file is not valid JSON: %v", err)
	}
	if len(doc["/Imu"]) != 2 {
		t.Errorf("len(/Imu) = %d, want 2", len(doc["/Imu"]))
	}
	if len(doc["/odom"]) != 1 {
		t.Errorf("len(/odom) = %d, want 1", len(doc["/odom"]))
	}
}

func TestExportCommandUnknownFormat(t *testing.T) {
	bagDir := fixtureBagDir(t)
	if _, err := execute(t, "export", bagDir, "--format", "xml"); err == nil {
		t.Error("export expected error for unknown format")
	}
	// Reset for subsequent tests sharing the package-level flag.
	exportFormat = "json"
	exportOutput = ""
}

func TestReplayCommand(t *testing.T) {
	bagDir := fixtureBagDir(t)

	out, err := execute(t, "replay", bagDir, "--frequency", "500")
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}
	if out == "" {
		t.Error("replay produced no summary output")
	}
}

func TestReplayCommandInvalidFrequency(t *testing.T) {
	bagDir := fixtureBagDir(t)
	if _, err := execute(t, "replay", bagDir, "--frequency", "0"); err == nil {
		t.Error("replay expected error for zero frequency")
	}
	replayFrequency = internal.DefaultFrequency
}
