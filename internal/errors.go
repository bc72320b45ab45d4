package internal

import (
	"errors"
	"fmt"
)

// ErrEmptyPromptName is returned when a prompt is registered without a name
var ErrEmptyPromptName = errors.New("prompt name must not be empty")

// DuplicateNameError is returned when a prompt name is registered twice
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("prompt with name %q already defined", e.Name)
}

// ConfigFormatError represents a chat definition with missing or malformed fields
type ConfigFormatError struct {
	Field string // e.g. "system", "prompts[2].name"
	Err   error
}

func (e *ConfigFormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config format error: %v", e.Err)
	}
	return fmt.Sprintf("config format error [%s]: %v", e.Field, e.Err)
}

func (e *ConfigFormatError) Unwrap() error {
	return e.Err
}

// TemplateError represents a template that does not carry the expected placeholder
type TemplateError struct {
	Template    string // owning template, e.g. "judgment", "q1.multiple"
	Placeholder string
	Err         error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error [%s] {%s}: %v", e.Template, e.Placeholder, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing the transcript store
type StorageError struct {
	Path string
	Op   string // "open", "save", "load", "list"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
