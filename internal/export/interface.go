package export

import (
	"fmt"
	"io"

	"github.com/fieldrover/bagflow/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(result *internal.ExtractionResult, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, jsonl, yaml)", format)
	}
}

// document reshapes an extraction result into a topic-keyed map for the
// whole-document encoders.
func document(result *internal.ExtractionResult) map[string][]interface{} {
	doc := make(map[string][]interface{}, len(result.Topics()))
	for _, spec := range result.Topics() {
		doc[spec.Topic] = result.Records(spec.Topic)
	}
	return doc
}
