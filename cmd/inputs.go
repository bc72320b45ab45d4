package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// readInput reads path, or stdin when path is "" or "-"
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// parseJudgment decodes a judgment document. JSON input is kept as-is so its
// key order survives; anything else is parsed as YAML.
func parseJudgment(data []byte) (interface{}, error) {
	if json.Valid(data) {
		return json.RawMessage(data), nil
	}

	var judgment interface{}
	if err := yaml.Unmarshal(data, &judgment); err != nil {
		return nil, fmt.Errorf("judgment is neither JSON nor YAML: %w", err)
	}
	if judgment == nil {
		return nil, fmt.Errorf("judgment is empty")
	}
	return judgment, nil
}

// parseResponses decodes a prompt name to model response mapping (YAML or JSON)
func parseResponses(data []byte) (map[string]string, error) {
	var responses map[string]string
	if err := yaml.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses: %w", err)
	}
	return responses, nil
}
