package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/casechat/internal"
)

// JSONExporter exports a transcript as one pretty-printed JSON document
type JSONExporter struct{}

// Export writes t as indented JSON
func (e *JSONExporter) Export(t *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(t)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
