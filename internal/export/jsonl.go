package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/casechat/internal"
)

// JSONLExporter exports one chat message per line, ready to replay against a chat API
type JSONLExporter struct{}

// Export writes each message of t as a single JSON line
func (e *JSONLExporter) Export(t *internal.Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i, msg := range t.Messages {
		if err := enc.Encode(msg); err != nil {
			return fmt.Errorf("failed to encode message %d: %w", i, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
