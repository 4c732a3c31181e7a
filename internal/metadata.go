package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const metadataFileName = "metadata.yaml"

// TopicMetadata describes one recorded topic as listed in the bag metadata
type TopicMetadata struct {
	Name                string `yaml:"name"`
	Type                string `yaml:"type"`
	SerializationFormat string `yaml:"serialization_format"`
}

// TopicWithCount pairs topic metadata with its recorded message count
type TopicWithCount struct {
	TopicMetadata TopicMetadata `yaml:"topic_metadata"`
	MessageCount  int64         `yaml:"message_count"`
}

// BagMetadata holds the subset of rosbag2 bag metadata this tool consumes
type BagMetadata struct {
	Version           int              `yaml:"version"`
	StorageIdentifier string           `yaml:"storage_identifier"`
	RelativeFilePaths []string         `yaml:"relative_file_paths"`
	Duration          durationField    `yaml:"duration"`
	StartingTime      startingField    `yaml:"starting_time"`
	MessageCount      int64            `yaml:"message_count"`
	Topics            []TopicWithCount `yaml:"topics_with_message_count"`
}

type durationField struct {
	Nanoseconds int64 `yaml:"nanoseconds"`
}

type startingField struct {
	NanosecondsSinceEpoch int64 `yaml:"nanoseconds_since_epoch"`
}

// metadataFile mirrors the top-level document layout of metadata.yaml
type metadataFile struct {
	Info BagMetadata `yaml:"rosbag2_bagfile_information"`
}

// DurationNanos returns the recording duration in nanoseconds.
func (m *BagMetadata) DurationNanos() int64 {
	return m.Duration.Nanoseconds
}

// StartNanos returns the recording start in nanoseconds since the epoch.
func (m *BagMetadata) StartNanos() int64 {
	return m.StartingTime.NanosecondsSinceEpoch
}

// EndNanos returns start + duration in epoch-nanosecond arithmetic.
func (m *BagMetadata) EndNanos() int64 {
	return m.StartNanos() + m.DurationNanos()
}

// MessageCountByTopic builds the topic name to message count mapping from
// the topics_with_message_count listing.
func (m *BagMetadata) MessageCountByTopic() map[string]int64 {
	counts := make(map[string]int64, len(m.Topics))
	for _, t := range m.Topics {
		counts[t.TopicMetadata.Name] = t.MessageCount
	}
	return counts
}

// ReadMetadata parses metadata.yaml from the bag directory.
func ReadMetadata(dir string) (*BagMetadata, error) {
	path := filepath.Join(dir, metadataFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &BagError{Dir: dir, Op: "metadata", Err: err}
	}
	var file metadataFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, &BagError{Dir: dir, Op: "metadata", Err: fmt.Errorf("failed to parse %s: %w", metadataFileName, err)}
	}
	return &file.Info, nil
}
