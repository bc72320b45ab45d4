package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/iksnae/casechat/internal"
)

func TestParseJudgment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "json keeps key order", input: `{"b": 1, "a": 2}`, want: `{"b": 1, "a": 2}`},
		{name: "yaml mapping", input: "id: 7\n", want: `{"id": 7}`},
		{name: "json scalar", input: `"text"`, want: `"text"`},
		{name: "empty", input: "", wantErr: true},
		{name: "invalid", input: "a: [1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			judgment, err := parseJudgment([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseJudgment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got, err := internal.CanonicalJSON(judgment)
			if err != nil {
				t.Fatalf("CanonicalJSON() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseJudgment() encodes as %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseJudgment_JSONIsRaw(t *testing.T) {
	judgment, err := parseJudgment([]byte(`{"id": 7}`))
	if err != nil {
		t.Fatalf("parseJudgment() error = %v", err)
	}
	if _, ok := judgment.(json.RawMessage); !ok {
		t.Errorf("parseJudgment() = %T, want json.RawMessage", judgment)
	}
}

func TestParseResponses(t *testing.T) {
	got, err := parseResponses([]byte("q1: '[\"x\"]'\nq2: plain text\n"))
	if err != nil {
		t.Fatalf("parseResponses() error = %v", err)
	}
	if got["q1"] != `["x"]` || got["q2"] != "plain text" {
		t.Errorf("parseResponses() = %v", got)
	}

	if _, err := parseResponses([]byte("- not\n- a mapping\n")); err == nil {
		t.Error("parseResponses() should reject a list")
	}
}

func TestReadInput(t *testing.T) {
	data, err := readInput("-", strings.NewReader("from stdin"))
	if err != nil || string(data) != "from stdin" {
		t.Errorf("readInput(-) = (%q, %v)", data, err)
	}
	if _, err := readInput("/nonexistent/file", nil); err == nil {
		t.Error("readInput() should fail for a missing file")
	}
}
