package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestDuplicateNameError(t *testing.T) {
	err := &DuplicateNameError{Name: "q1"}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, `"q1"`) {
		t.Errorf("DuplicateNameError.Error() should contain the name, got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "already defined") {
		t.Errorf("DuplicateNameError.Error() should say already defined, got: %q", errorMsg)
	}
}

func TestConfigFormatError(t *testing.T) {
	originalErr := errors.New("is required")

	tests := []struct {
		name  string
		err   *ConfigFormatError
		want  string
		avoid string
	}{
		{
			name: "with field",
			err:  &ConfigFormatError{Field: "prompts[2].name", Err: originalErr},
			want: "config format error [prompts[2].name]: is required",
		},
		{
			name:  "without field",
			err:   &ConfigFormatError{Err: originalErr},
			want:  "config format error: is required",
			avoid: "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ConfigFormatError.Error() = %q, want %q", got, tt.want)
			}
			if tt.avoid != "" && strings.Contains(tt.err.Error(), tt.avoid) {
				t.Errorf("ConfigFormatError.Error() should not contain %q", tt.avoid)
			}
			if !errors.Is(tt.err, originalErr) {
				t.Error("ConfigFormatError.Unwrap() should return original error")
			}
		})
	}
}

func TestTemplateError(t *testing.T) {
	originalErr := errors.New("placeholder not found")
	err := &TemplateError{Template: "q1.multiple", Placeholder: "x", Err: originalErr}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "q1.multiple") || !strings.Contains(errorMsg, "{x}") {
		t.Errorf("TemplateError.Error() should name template and placeholder, got: %q", errorMsg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("TemplateError.Unwrap() should return original error")
	}
}

func TestStorageError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &StorageError{
		Path: "/test/path",
		Op:   "open",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "storage error") {
		t.Errorf("StorageError.Error() should contain 'storage error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "/test/path") {
		t.Errorf("StorageError.Error() should contain path, got: %q", errorMsg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("StorageError.Unwrap() should return original error")
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("write failed")
	err := &ExportError{
		Format: "jsonl",
		Path:   "/output/file.jsonl",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "export error") {
		t.Errorf("ExportError.Error() should contain 'export error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "jsonl") {
		t.Errorf("ExportError.Error() should contain format, got: %q", errorMsg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("ExportError.Unwrap() should return original error")
	}
}
