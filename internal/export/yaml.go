package export

import (
	"io"

	"github.com/fieldrover/bagflow/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports extracted records in YAML format
type YAMLExporter struct{}

// Export writes the extraction result as one topic-keyed YAML document
func (e *YAMLExporter) Export(result *internal.ExtractionResult, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(document(result))
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
