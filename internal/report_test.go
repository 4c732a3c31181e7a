package internal

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func reportFixture(t *testing.T) *BagReader {
	t.Helper()
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "run_0.db3")
	// Exactly half a mebibyte so the size line is deterministic.
	if err := os.WriteFile(dataFile, make([]byte, 512*1024), 0o644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	return &BagReader{
		Location: BagLocation{Dir: dir, DataFile: dataFile},
		conns: []*Connection{
			{ID: 1, Topic: "/Imu", MsgType: ImuMsgType, SerializationFormat: "cdr"},
			{ID: 2, Topic: "/odom", MsgType: OdometryMsgType, SerializationFormat: "cdr"},
			{ID: 3, Topic: "/scan", MsgType: "sensor_msgs/msg/LaserScan", SerializationFormat: "cdr"},
		},
		meta: &BagMetadata{
			StorageIdentifier: "sqlite3",
			Duration:          durationField{Nanoseconds: 2500000000},
			StartingTime:      startingField{NanosecondsSinceEpoch: 1700000000000000000},
			MessageCount:      42,
			Topics: []TopicWithCount{
				{TopicMetadata: TopicMetadata{Name: "/Imu"}, MessageCount: 30},
				{TopicMetadata: TopicMetadata{Name: "/odom"}, MessageCount: 12},
				// /scan deliberately missing from the count mapping.
			},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	reader := reportFixture(t)

	var buf bytes.Buffer
	if err := WriteSummary(&buf, reader); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	out := buf.String()

	wantLines := []string{
		"Files:             run_0.db3",
		"Bag size:          0.5 MiB",
		"Storage id:        sqlite3",
		"Duration:          2.500s",
		"Messages:          42",
		"  Topic: /Imu | Type: sensor_msgs/msg/Imu | Count: 30 | Serialization Format: cdr",
		"  Topic: /odom | Type: nav_msgs/msg/Odometry | Count: 12 | Serialization Format: cdr",
		// Topic absent from the count mapping defaults to 0.
		"  Topic: /scan | Type: sensor_msgs/msg/LaserScan | Count: 0 | Serialization Format: cdr",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("summary missing line %q\ngot:\n%s", line, out)
		}
	}

	startNs := int64(1700000000000000000)
	endNs := startNs + 2500000000
	wantStart := fmt.Sprintf("Start:             %s (%.3f)",
		time.Unix(0, startNs).Format(timestampLayout), float64(startNs)/1e9)
	wantEnd := fmt.Sprintf("End:               %s (%.3f)",
		time.Unix(0, endNs).Format(timestampLayout), float64(endNs)/1e9)
	if !strings.Contains(out, wantStart+"\n") {
		t.Errorf("summary missing start line %q\ngot:\n%s", wantStart, out)
	}
	if !strings.Contains(out, wantEnd+"\n") {
		t.Errorf("summary missing end line %q\ngot:\n%s", wantEnd, out)
	}
}

func TestWriteSummaryIdempotent(t *testing.T) {
	reader := reportFixture(t)

	var first, second bytes.Buffer
	if err := WriteSummary(&first, reader); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if err := WriteSummary(&second, reader); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("summary output differs between runs on an unmodified bag")
	}
}

func TestFormatEpochNanos(t *testing.T) {
	ns := int64(1700000000123000000)
	got := formatEpochNanos(ns)
	want := fmt.Sprintf("%s (1700000000.123)", time.Unix(0, ns).Format(timestampLayout))
	if got != want {
		t.Errorf("formatEpochNanos() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, "(1700000000.123)") {
		t.Errorf("epoch seconds should carry 3 decimals: %q", got)
	}
}
