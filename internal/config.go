package internal

import (
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Top-level fields of a chat definition document
const (
	fieldSystem   = "system"
	fieldJudgment = "judgment"
	fieldPrompts  = "prompts"
)

// ConfigSource yields a parsed chat definition document
type ConfigSource interface {
	ReadConfig() (map[string]interface{}, error)
}

// FileSource reads a YAML (or JSON) chat definition from disk
type FileSource struct {
	Path string
}

// ReadConfig reads and parses the file. Read and parse errors are returned as-is.
func (s FileSource) ReadConfig() (map[string]interface{}, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return BytesSource(data).ReadConfig()
}

// BytesSource is an in-memory YAML (or JSON) chat definition
type BytesSource []byte

// ReadConfig parses the document. Syntax errors are returned as-is; a
// well-formed document whose root is not a mapping is a ConfigFormatError.
func (s BytesSource) ReadConfig() (map[string]interface{}, error) {
	var root interface{}
	if err := yaml.Unmarshal(s, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}
	doc, ok := root.(map[string]interface{})
	if !ok {
		return nil, &ConfigFormatError{Err: fmt.Errorf("document must be a mapping, got %T", root)}
	}
	return doc, nil
}

// MapSource is an already parsed chat definition
type MapSource map[string]interface{}

// ReadConfig returns the mapping unchanged
func (s MapSource) ReadConfig() (map[string]interface{}, error) {
	return s, nil
}

// chatDefinition is the decoded, shape-checked form of a definition document
type chatDefinition struct {
	System   string
	Judgment string
	Prompts  []promptRecord
}

// promptRecord is one entry of the prompts list
type promptRecord struct {
	Name     string  `json:"name"`
	Prompt   string  `json:"prompt"`
	Multiple *string `json:"multiple"`
}

func (r promptRecord) validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Prompt, validation.Required),
	)
}

// decodeDefinition checks the document shape and extracts its fields in order
func decodeDefinition(doc map[string]interface{}) (*chatDefinition, error) {
	if doc == nil {
		return nil, &ConfigFormatError{Err: errors.New("document is empty")}
	}

	system, err := requiredString(doc, fieldSystem, fieldSystem)
	if err != nil {
		return nil, err
	}
	judgment, err := requiredString(doc, fieldJudgment, fieldJudgment)
	if err != nil {
		return nil, err
	}

	rawPrompts, ok := doc[fieldPrompts]
	if !ok || rawPrompts == nil {
		return nil, &ConfigFormatError{Field: fieldPrompts, Err: errors.New("is required")}
	}
	list, ok := rawPrompts.([]interface{})
	if !ok {
		return nil, &ConfigFormatError{Field: fieldPrompts, Err: fmt.Errorf("must be a list, got %T", rawPrompts)}
	}

	def := &chatDefinition{
		System:   system,
		Judgment: judgment,
		Prompts:  make([]promptRecord, 0, len(list)),
	}
	for i, item := range list {
		path := fmt.Sprintf("%s[%d]", fieldPrompts, i)
		record, err := decodePromptRecord(path, item)
		if err != nil {
			return nil, err
		}
		def.Prompts = append(def.Prompts, record)
	}

	return def, nil
}

func decodePromptRecord(path string, item interface{}) (promptRecord, error) {
	m, ok := item.(map[string]interface{})
	if !ok {
		return promptRecord{}, &ConfigFormatError{Field: path, Err: fmt.Errorf("must be a mapping, got %T", item)}
	}

	var record promptRecord
	var err error
	if record.Name, err = optionalString(m, "name", path+".name"); err != nil {
		return promptRecord{}, err
	}
	if record.Prompt, err = optionalString(m, "prompt", path+".prompt"); err != nil {
		return promptRecord{}, err
	}
	if raw, ok := m["multiple"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return promptRecord{}, &ConfigFormatError{Field: path + ".multiple", Err: fmt.Errorf("must be a string, got %T", raw)}
		}
		record.Multiple = &s
	}

	if err := record.validate(); err != nil {
		return promptRecord{}, &ConfigFormatError{Field: path, Err: err}
	}
	return record, nil
}

// requiredString returns doc[key], failing when it is absent or not a string
func requiredString(doc map[string]interface{}, key, path string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", &ConfigFormatError{Field: path, Err: errors.New("is required")}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ConfigFormatError{Field: path, Err: fmt.Errorf("must be a string, got %T", raw)}
	}
	return s, nil
}

// optionalString returns doc[key] or "" when absent; presence is checked by validate
func optionalString(doc map[string]interface{}, key, path string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ConfigFormatError{Field: path, Err: fmt.Errorf("must be a string, got %T", raw)}
	}
	return s, nil
}
