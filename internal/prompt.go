package internal

// PromptTemplate is a named prompt rendered against a judgment.
// It is immutable once created; use NewPromptTemplate to build one.
type PromptTemplate struct {
	name     string
	prompt   *fieldTemplate
	multiple *fieldTemplate // nil when the prompt never expects a multi-part response
}

// NewPromptTemplate validates and builds a prompt template.
// prompt must carry a {judgment} placeholder; multiple, when non-nil, an {x} placeholder.
func NewPromptTemplate(name, prompt string, multiple *string) (*PromptTemplate, error) {
	if name == "" {
		return nil, ErrEmptyPromptName
	}

	pt, err := parseFieldTemplate(name, prompt, JudgmentPlaceholder)
	if err != nil {
		return nil, err
	}

	var mt *fieldTemplate
	if multiple != nil {
		mt, err = parseFieldTemplate(name+".multiple", *multiple, ElementPlaceholder)
		if err != nil {
			return nil, err
		}
	}

	return &PromptTemplate{name: name, prompt: pt, multiple: mt}, nil
}

// Name returns the prompt name
func (p *PromptTemplate) Name() string {
	return p.name
}

// Template returns the raw prompt template
func (p *PromptTemplate) Template() string {
	return p.prompt.raw
}

// Multiple returns the raw multiple template and whether one is set
func (p *PromptTemplate) Multiple() (string, bool) {
	if p.multiple == nil {
		return "", false
	}
	return p.multiple.raw, true
}

// HasMultiple reports whether the prompt expects a multi-part response
func (p *PromptTemplate) HasMultiple() bool {
	return p.multiple != nil
}

// Render substitutes the canonical JSON encoding of judgment into the prompt
func (p *PromptTemplate) Render(judgment interface{}) (string, error) {
	encoded, err := CanonicalJSON(judgment)
	if err != nil {
		return "", err
	}
	return p.prompt.execute(encoded), nil
}

// Message renders the prompt as a user message
func (p *PromptTemplate) Message(judgment interface{}) (Message, error) {
	content, err := p.Render(judgment)
	if err != nil {
		return Message{}, err
	}
	return p.message(content), nil
}

// RenderElement substitutes one response element into the multiple template.
// It returns false when the prompt has no multiple template.
func (p *PromptTemplate) RenderElement(x interface{}) (string, bool) {
	if p.multiple == nil {
		return "", false
	}
	return p.multiple.execute(elementText(x)), true
}

// renderEncoded fills the prompt with an already encoded judgment
func (p *PromptTemplate) renderEncoded(encoded string) Message {
	return p.message(p.prompt.execute(encoded))
}

func (p *PromptTemplate) message(content string) Message {
	msg := UserMessage(content)
	msg.Prompt = p.name
	return msg
}
