package internal

import (
	"errors"
	"fmt"
	"iter"
)

var errNoJudgmentTemplate = errors.New("judgment template not set")

// CaseChat holds the definition of one conversation type: the system
// preamble, the judgment introduction and an ordered set of prompts.
// The zero value is an empty chat ready for AddPrompt.
//
// A CaseChat is populated once (Load or AddPrompt) and read-only afterwards.
// Read-only use is safe from multiple goroutines; population is not.
type CaseChat struct {
	system      string
	judgment    *fieldTemplate
	prompts     map[string]*PromptTemplate
	promptNames []string
}

// NewCaseChat creates an empty chat definition
func NewCaseChat() *CaseChat {
	return &CaseChat{
		prompts: make(map[string]*PromptTemplate),
	}
}

// LoadCaseChat creates a chat definition from src
func LoadCaseChat(src ConfigSource) (*CaseChat, error) {
	c := NewCaseChat()
	if err := c.Load(src); err != nil {
		return nil, err
	}
	return c, nil
}

// System returns the system preamble
func (c *CaseChat) System() string {
	return c.system
}

// SetSystem sets the system preamble
func (c *CaseChat) SetSystem(system string) {
	c.system = system
}

// JudgmentTemplate returns the raw judgment introduction template, or "" when unset
func (c *CaseChat) JudgmentTemplate() string {
	if c.judgment == nil {
		return ""
	}
	return c.judgment.raw
}

// SetJudgmentTemplate validates and sets the judgment introduction template
func (c *CaseChat) SetJudgmentTemplate(tmpl string) error {
	t, err := parseFieldTemplate(fieldJudgment, tmpl, JudgmentPlaceholder)
	if err != nil {
		return err
	}
	c.judgment = t
	return nil
}

// PromptNames returns prompt names in registration order
func (c *CaseChat) PromptNames() []string {
	names := make([]string, len(c.promptNames))
	copy(names, c.promptNames)
	return names
}

// Len returns the number of registered prompts
func (c *CaseChat) Len() int {
	return len(c.promptNames)
}

// Prompt looks up a prompt by name
func (c *CaseChat) Prompt(name string) (*PromptTemplate, bool) {
	p, ok := c.prompts[name]
	return p, ok
}

// AddPrompt registers a prompt after the ones already present.
// multiple is nil for prompts that never expect a multi-part response.
// On error the registry is left unchanged.
func (c *CaseChat) AddPrompt(name, prompt string, multiple *string) error {
	if _, exists := c.prompts[name]; exists {
		return &DuplicateNameError{Name: name}
	}

	p, err := NewPromptTemplate(name, prompt, multiple)
	if err != nil {
		return err
	}

	if c.prompts == nil {
		c.prompts = make(map[string]*PromptTemplate)
	}
	c.promptNames = append(c.promptNames, name)
	c.prompts[name] = p
	return nil
}

// Load replaces the chat definition with the one read from src.
// Errors from src are returned unchanged; on any error c is left untouched.
func (c *CaseChat) Load(src ConfigSource) error {
	doc, err := src.ReadConfig()
	if err != nil {
		return err
	}

	def, err := decodeDefinition(doc)
	if err != nil {
		return err
	}

	next := NewCaseChat()
	next.SetSystem(def.System)
	if err := next.SetJudgmentTemplate(def.Judgment); err != nil {
		return &ConfigFormatError{Field: fieldJudgment, Err: err}
	}
	for i, record := range def.Prompts {
		if err := next.AddPrompt(record.Name, record.Prompt, record.Multiple); err != nil {
			var dup *DuplicateNameError
			if errors.As(err, &dup) {
				return err
			}
			return &ConfigFormatError{Field: fmt.Sprintf("%s[%d]", fieldPrompts, i), Err: err}
		}
	}

	LogDebug("Loaded chat definition with %d prompt(s)", next.Len())
	*c = *next
	return nil
}

// StartChat returns the system message that opens every conversation
func (c *CaseChat) StartChat() Message {
	return SystemMessage(c.system)
}

// StartJudgment returns the user message introducing the judgment
func (c *CaseChat) StartJudgment(judgment interface{}) (Message, error) {
	if c.judgment == nil {
		return Message{}, &TemplateError{Template: fieldJudgment, Placeholder: JudgmentPlaceholder, Err: errNoJudgmentTemplate}
	}
	encoded, err := CanonicalJSON(judgment)
	if err != nil {
		return Message{}, err
	}
	return UserMessage(c.judgment.execute(encoded)), nil
}

// Prompts returns one user message per prompt, in registration order.
// The judgment is encoded once; the returned sequence can be iterated any
// number of times and always yields the same messages.
func (c *CaseChat) Prompts(judgment interface{}) (iter.Seq[Message], error) {
	encoded, err := CanonicalJSON(judgment)
	if err != nil {
		return nil, err
	}

	prompts := make([]*PromptTemplate, 0, len(c.promptNames))
	for _, name := range c.promptNames {
		prompts = append(prompts, c.prompts[name])
	}
	return func(yield func(Message) bool) {
		for _, p := range prompts {
			if !yield(p.renderEncoded(encoded)) {
				return
			}
		}
	}, nil
}

// ExpandResponse turns a model response for the named prompt into follow-up
// prompts, one per element of the JSON array in response, in array order.
// A response that is not a JSON array, an unknown prompt, or a prompt
// without a multiple template all yield an empty sequence.
func (c *CaseChat) ExpandResponse(name, response string) iter.Seq[string] {
	p, ok := c.prompts[name]
	if !ok || !p.HasMultiple() {
		LogDebug("No multiple template for prompt %q, skipping expansion", name)
		return emptySeq
	}

	items, err := parseResponseArray(response)
	if err != nil {
		LogDebug("Response for prompt %q is not a JSON array: %v", name, err)
		return emptySeq
	}

	return func(yield func(string) bool) {
		for _, x := range items {
			s, _ := p.RenderElement(x)
			if !yield(s) {
				return
			}
		}
	}
}

func emptySeq(func(string) bool) {}
