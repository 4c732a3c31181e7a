package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONLExporter_Export(t *testing.T) {
	result := testResult(t)

	var buf bytes.Buffer
	e := &JSONLExporter{}
	if err := e.Export(result, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	type line struct {
		OutputID string          `json:"output_id"`
		Data     json.RawMessage `json:"data"`
	}

	var lines []line
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var l line
		if err := json.Unmarshal(scanner.Bytes(), &l); err != nil {
			t.Fatalf("line is not valid JSON: %v", err)
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}

	wantIDs := []string{"imu_json", "imu_json", "odom_json"}
	if len(lines) != len(wantIDs) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(wantIDs))
	}
	for i, want := range wantIDs {
		if lines[i].OutputID != want {
			t.Errorf("lines[%d].OutputID = %q, want %q", i, lines[i].OutputID, want)
		}
		if len(lines[i].Data) == 0 {
			t.Errorf("lines[%d] has no data", i)
		}
	}
}
