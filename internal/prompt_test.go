package internal

import (
	"errors"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestNewPromptTemplate(t *testing.T) {
	tests := []struct {
		name         string
		promptName   string
		prompt       string
		multiple     *string
		wantMultiple bool
		wantErr      error
	}{
		{
			name:         "with multiple",
			promptName:   "q1",
			prompt:       "Q1 about {judgment}",
			multiple:     strPtr("Item: {x}"),
			wantMultiple: true,
		},
		{
			name:       "without multiple",
			promptName: "q2",
			prompt:     "Q2 about {judgment}",
		},
		{
			name:         "empty multiple is still present",
			promptName:   "q3",
			prompt:       "Q3 about {judgment}",
			multiple:     strPtr("{x}"),
			wantMultiple: true,
		},
		{
			name:       "empty name",
			promptName: "",
			prompt:     "{judgment}",
			wantErr:    ErrEmptyPromptName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPromptTemplate(tt.promptName, tt.prompt, tt.multiple)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewPromptTemplate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPromptTemplate() unexpected error = %v", err)
			}
			if p.Name() != tt.promptName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.promptName)
			}
			if p.Template() != tt.prompt {
				t.Errorf("Template() = %q, want %q", p.Template(), tt.prompt)
			}
			if p.HasMultiple() != tt.wantMultiple {
				t.Errorf("HasMultiple() = %v, want %v", p.HasMultiple(), tt.wantMultiple)
			}
			raw, ok := p.Multiple()
			if ok != tt.wantMultiple || (ok && raw != *tt.multiple) {
				t.Errorf("Multiple() = (%q, %v), want (%v, %v)", raw, ok, tt.multiple, tt.wantMultiple)
			}
		})
	}
}

func TestNewPromptTemplate_MalformedTemplates(t *testing.T) {
	tests := []struct {
		name      string
		prompt    string
		multiple  *string
		wantOwner string
	}{
		{name: "prompt without placeholder", prompt: "Q1", wantOwner: "q1"},
		{name: "prompt with element placeholder", prompt: "Q1 {x}", wantOwner: "q1"},
		{name: "multiple without placeholder", prompt: "{judgment}", multiple: strPtr("Item"), wantOwner: "q1.multiple"},
		{name: "multiple with judgment placeholder", prompt: "{judgment}", multiple: strPtr("{judgment}"), wantOwner: "q1.multiple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPromptTemplate("q1", tt.prompt, tt.multiple)
			var tmplErr *TemplateError
			if !errors.As(err, &tmplErr) {
				t.Fatalf("NewPromptTemplate() error = %v, want *TemplateError", err)
			}
			if tmplErr.Template != tt.wantOwner {
				t.Errorf("TemplateError.Template = %q, want %q", tmplErr.Template, tt.wantOwner)
			}
		})
	}
}

func TestPromptTemplate_Render(t *testing.T) {
	p, err := NewPromptTemplate("q1", "Q1 about {judgment}", strPtr("Item: {x}"))
	if err != nil {
		t.Fatalf("NewPromptTemplate() error = %v", err)
	}

	got, err := p.Render(map[string]interface{}{"id": 7})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := `Q1 about {"id": 7}`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	msg, err := p.Message(map[string]interface{}{"id": 7})
	if err != nil {
		t.Fatalf("Message() error = %v", err)
	}
	if msg.Role != RoleUser || msg.Content != got || msg.Prompt != "q1" {
		t.Errorf("Message() = %+v, want user message %q for q1", msg, got)
	}

	if _, err := p.Render(make(chan int)); err == nil {
		t.Error("Render() with unencodable judgment should fail")
	}
}

func TestPromptTemplate_RenderElement(t *testing.T) {
	with, _ := NewPromptTemplate("q1", "{judgment}", strPtr("Item: {x}"))
	without, _ := NewPromptTemplate("q2", "{judgment}", nil)

	got, ok := with.RenderElement("a")
	if !ok || got != "Item: a" {
		t.Errorf("RenderElement() = (%q, %v), want (\"Item: a\", true)", got, ok)
	}

	got, ok = without.RenderElement("a")
	if ok || got != "" {
		t.Errorf("RenderElement() without multiple = (%q, %v), want (\"\", false)", got, ok)
	}
}
