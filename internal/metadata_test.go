package internal

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleMetadata = `rosbag2_bagfile_information:
  version: 4
  storage_identifier: sqlite3
  relative_file_paths:
    - rosbag2_test_0.db3
  duration:
    nanoseconds: 3000000000
  starting_time:
    nanoseconds_since_epoch: 1700000000000000000
  message_count: 42
  topics_with_message_count:
    - topic_metadata:
        name: /Imu
        type: sensor_msgs/msg/Imu
        serialization_format: cdr
      message_count: 30
    - topic_metadata:
        name: /odom
        type: nav_msgs/msg/Odometry
        serialization_format: cdr
      message_count: 12
`

func TestReadMetadata(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "metadata.yaml"), []byte(sampleMetadata), 0o644); err != nil {
		t.Fatalf("Failed to write metadata.yaml: %v", err)
	}

	meta, err := ReadMetadata(dir)
	if err != nil {
		t.Fatalf("ReadMetadata() error = %v", err)
	}

	if meta.StorageIdentifier != "sqlite3" {
		t.Errorf("StorageIdentifier = %q, want %q", meta.StorageIdentifier, "sqlite3")
	}
	if meta.MessageCount != 42 {
		t.Errorf("MessageCount = %d, want 42", meta.MessageCount)
	}
	if meta.DurationNanos() != 3000000000 {
		t.Errorf("DurationNanos() = %d, want 3000000000", meta.DurationNanos())
	}
	if meta.StartNanos() != 1700000000000000000 {
		t.Errorf("StartNanos() = %d, want 1700000000000000000", meta.StartNanos())
	}
	if got, want := meta.EndNanos(), meta.StartNanos()+meta.DurationNanos(); got != want {
		t.Errorf("EndNanos() = %d, want %d", got, want)
	}
	if len(meta.Topics) != 2 {
		t.Fatalf("len(Topics) = %d, want 2", len(meta.Topics))
	}
	if meta.Topics[0].TopicMetadata.Name != "/Imu" || meta.Topics[0].MessageCount != 30 {
		t.Errorf("Topics[0] = %+v, want /Imu with 30 messages", meta.Topics[0])
	}
}

func TestMessageCountByTopic(t *testing.T) {
	meta := &BagMetadata{
		Topics: []TopicWithCount{
			{TopicMetadata: TopicMetadata{Name: "/Imu"}, MessageCount: 3},
			{TopicMetadata: TopicMetadata{Name: "/odom"}, MessageCount: 1},
		},
	}
	counts := meta.MessageCountByTopic()
	if counts["/Imu"] != 3 || counts["/odom"] != 1 {
		t.Errorf("MessageCountByTopic() = %v", counts)
	}
	// Absent topic falls back to zero.
	if counts["/gps"] != 0 {
		t.Errorf("counts[/gps] = %d, want 0", counts["/gps"])
	}
}

func TestReadMetadataMissing(t *testing.T) {
	if _, err := ReadMetadata(t.TempDir()); err == nil {
		t.Fatal("ReadMetadata() expected error for missing file")
	}
}
