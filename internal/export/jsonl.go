package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fieldrover/bagflow/internal"
)

// JSONLExporter exports extracted records in JSONL format (one record per
// line, tagged with its sink output id)
type JSONLExporter struct{}

// Export writes one line per extracted record, per topic in registry order
func (e *JSONLExporter) Export(result *internal.ExtractionResult, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, spec := range result.Topics() {
		for _, record := range result.Records(spec.Topic) {
			obj := map[string]interface{}{
				"output_id": spec.OutputID,
				"data":      record,
			}
			if err := enc.Encode(obj); err != nil {
				return fmt.Errorf("failed to encode record: %w", err)
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
