package testutil

import (
	"database/sql"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

// FixtureMessage is one stored message in a bag fixture
type FixtureMessage struct {
	Timestamp int64
	Data      []byte
}

// FixtureTopic is one recorded topic in a bag fixture
type FixtureTopic struct {
	Name     string
	Type     string
	Format   string
	Messages []FixtureMessage
}

// FixtureBag describes a synthetic ROS2 bag to create on disk
type FixtureBag struct {
	Name          string // data file base name, defaults to "bag_0"
	StartNanos    int64
	DurationNanos int64
	Topics        []FixtureTopic
	OmitMetadata  bool // skip writing metadata.yaml
}

// Create writes the bag fixture under dir and returns the bag directory path
func (b FixtureBag) Create(t *testing.T, dir string) string {
	t.Helper()
	name := b.Name
	if name == "" {
		name = "bag_0"
	}
	bagDir := filepath.Join(dir, name)
	if err := os.MkdirAll(bagDir, 0o755); err != nil {
		t.Fatalf("Failed to create bag directory: %v", err)
	}

	dbPath := filepath.Join(bagDir, name+".db3")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	schema := `
	CREATE TABLE topics (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		serialization_format TEXT NOT NULL
	);
	CREATE TABLE messages (
		id INTEGER PRIMARY KEY,
		topic_id INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		data BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	total := 0
	for i, topic := range b.Topics {
		topicID := int64(i + 1)
		format := topic.Format
		if format == "" {
			format = "cdr"
		}
		if _, err := db.Exec(
			"INSERT INTO topics (id, name, type, serialization_format) VALUES (?, ?, ?, ?)",
			topicID, topic.Name, topic.Type, format,
		); err != nil {
			t.Fatalf("Failed to insert topic: %v", err)
		}
		for _, msg := range topic.Messages {
			if _, err := db.Exec(
				"INSERT INTO messages (topic_id, timestamp, data) VALUES (?, ?, ?)",
				topicID, msg.Timestamp, msg.Data,
			); err != nil {
				t.Fatalf("Failed to insert message: %v", err)
			}
			total++
		}
	}

	if !b.OmitMetadata {
		b.writeMetadata(t, bagDir, name+".db3", total)
	}
	return bagDir
}

func (b FixtureBag) writeMetadata(t *testing.T, bagDir, dataFile string, total int) {
	t.Helper()
	topics := make([]map[string]interface{}, 0, len(b.Topics))
	for _, topic := range b.Topics {
		format := topic.Format
		if format == "" {
			format = "cdr"
		}
		topics = append(topics, map[string]interface{}{
			"topic_metadata": map[string]interface{}{
				"name":                 topic.Name,
				"type":                 topic.Type,
				"serialization_format": format,
			},
			"message_count": len(topic.Messages),
		})
	}
	doc := map[string]interface{}{
		"rosbag2_bagfile_information": map[string]interface{}{
			"version":             4,
			"storage_identifier":  "sqlite3",
			"relative_file_paths": []string{dataFile},
			"duration": map[string]interface{}{
				"nanoseconds": b.DurationNanos,
			},
			"starting_time": map[string]interface{}{
				"nanoseconds_since_epoch": b.StartNanos,
			},
			"message_count":             total,
			"topics_with_message_count": topics,
		},
	}
	raw, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal metadata: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bagDir, "metadata.yaml"), raw, 0o644); err != nil {
		t.Fatalf("Failed to write metadata.yaml: %v", err)
	}
}

// CDREncoder builds little-endian XCDR1 payloads for fixtures. Alignment is
// relative to the first byte after the 4-byte encapsulation header, matching
// the decoder.
type CDREncoder struct {
	buf []byte
}

// NewCDREncoder returns an encoder seeded with a little-endian header
func NewCDREncoder() *CDREncoder {
	return &CDREncoder{buf: []byte{0x00, 0x01, 0x00, 0x00}}
}

func (e *CDREncoder) align(n int) {
	for (len(e.buf)-4)%n != 0 {
		e.buf = append(e.buf, 0)
	}
}

// PutUint32 appends an aligned uint32
func (e *CDREncoder) PutUint32(v uint32) {
	e.align(4)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// PutInt32 appends an aligned int32
func (e *CDREncoder) PutInt32(v int32) {
	e.PutUint32(uint32(v))
}

// PutFloat64 appends an aligned float64
func (e *CDREncoder) PutFloat64(v float64) {
	e.align(8)
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

// PutFloat64s appends each value as an aligned float64
func (e *CDREncoder) PutFloat64s(vs ...float64) {
	for _, v := range vs {
		e.PutFloat64(v)
	}
}

// PutString appends a CDR string: length including NUL, bytes, NUL
func (e *CDREncoder) PutString(s string) {
	e.PutUint32(uint32(len(s) + 1))
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
}

// Bytes returns the encoded payload
func (e *CDREncoder) Bytes() []byte {
	return e.buf
}

// EncodeImu builds a sensor_msgs/msg/Imu CDR payload with zero covariances
func EncodeImu(frameID string, orientation [4]float64, angularVelocity, linearAcceleration [3]float64) []byte {
	e := NewCDREncoder()
	e.PutInt32(0)  // stamp.sec
	e.PutUint32(0) // stamp.nanosec
	e.PutString(frameID)
	e.PutFloat64s(orientation[:]...)
	e.PutFloat64s(make([]float64, 9)...) // orientation_covariance
	e.PutFloat64s(angularVelocity[:]...)
	e.PutFloat64s(make([]float64, 9)...) // angular_velocity_covariance
	e.PutFloat64s(linearAcceleration[:]...)
	e.PutFloat64s(make([]float64, 9)...) // linear_acceleration_covariance
	return e.Bytes()
}

// EncodeOdometry builds a nav_msgs/msg/Odometry CDR payload. Nil covariances
// encode as zeros.
func EncodeOdometry(frameID, childFrameID string, position [3]float64, orientation [4]float64, linear, angular [3]float64, poseCov, twistCov []float64) []byte {
	if poseCov == nil {
		poseCov = make([]float64, 36)
	}
	if twistCov == nil {
		twistCov = make([]float64, 36)
	}
	e := NewCDREncoder()
	e.PutInt32(0)
	e.PutUint32(0)
	e.PutString(frameID)
	e.PutString(childFrameID)
	e.PutFloat64s(position[:]...)
	e.PutFloat64s(orientation[:]...)
	e.PutFloat64s(poseCov...)
	e.PutFloat64s(linear[:]...)
	e.PutFloat64s(angular[:]...)
	e.PutFloat64s(twistCov...)
	return e.Bytes()
}
