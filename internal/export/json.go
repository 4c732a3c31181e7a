package export

import (
	"encoding/json"
	"io"

	"github.com/fieldrover/bagflow/internal"
)

// JSONExporter exports extracted records in JSON format (pretty-printed)
type JSONExporter struct{}

// Export writes the extraction result as one topic-keyed JSON document
func (e *JSONExporter) Export(result *internal.ExtractionResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(document(result))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
