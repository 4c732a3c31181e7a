package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fieldrover/bagflow/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	result := testResult(t)

	var buf bytes.Buffer
	e := &JSONExporter{}
	if err := e.Export(result, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := raw["/Imu"]; !ok {
		t.Error("document missing /Imu key")
	}
	if _, ok := raw["/odom"]; !ok {
		t.Error("document missing /odom key")
	}

	var imu []internal.ImuRecord
	if err := json.Unmarshal(raw["/Imu"], &imu); err != nil {
		t.Fatalf("failed to decode /Imu records: %v", err)
	}
	if len(imu) != 2 {
		t.Fatalf("len(/Imu) = %d, want 2", len(imu))
	}
	if imu[0].Timestamp != 100 || imu[1].Timestamp != 200 {
		t.Errorf("timestamps = %d, %d, want 100, 200", imu[0].Timestamp, imu[1].Timestamp)
	}
	if imu[1].LinearAcceleration.Z != 9.9 {
		t.Errorf("LinearAcceleration.Z = %v, want 9.9", imu[1].LinearAcceleration.Z)
	}
}

func TestJSONExporter_ExportEmpty(t *testing.T) {
	src := &fakeSource{}
	result, err := internal.ExtractTopics(src, internal.DefaultTopics())
	if err != nil {
		t.Fatalf("ExtractTopics() error = %v", err)
	}

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(result, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(raw["/Imu"]) != 0 || len(raw["/odom"]) != 0 {
		t.Errorf("expected empty sequences, got %v", raw)
	}
}
