package internal

// Transcript is the full message plan for one judgment run through a chat
type Transcript struct {
	ID        string             `json:"id" yaml:"id"`
	Chat      string             `json:"chat" yaml:"chat"` // chat definition the transcript was built from
	CreatedAt string             `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Messages  []Message          `json:"messages" yaml:"messages"`
	Metadata  TranscriptMetadata `json:"metadata" yaml:"metadata"`
}

// TranscriptMetadata summarizes a transcript
type TranscriptMetadata struct {
	Judgment       string `json:"judgment" yaml:"judgment"` // canonical JSON
	MessageCount   int    `json:"message_count" yaml:"message_count"`
	PromptCount    int    `json:"prompt_count" yaml:"prompt_count"`
	ExpansionCount int    `json:"expansion_count" yaml:"expansion_count"`
}

// BuildTranscript lays out the conversation for judgment: the system message,
// the judgment introduction, then every prompt in order. When responses holds
// a model response for a prompt, it follows the prompt as an assistant
// message together with the follow-up prompts it expands into.
func BuildTranscript(chat *CaseChat, name string, judgment interface{}, responses map[string]string) (*Transcript, error) {
	encoded, err := CanonicalJSON(judgment)
	if err != nil {
		return nil, err
	}

	intro, err := chat.StartJudgment(judgment)
	if err != nil {
		return nil, err
	}

	t := &Transcript{
		Chat:     name,
		Messages: []Message{chat.StartChat(), intro},
		Metadata: TranscriptMetadata{Judgment: encoded},
	}

	prompts, err := chat.Prompts(judgment)
	if err != nil {
		return nil, err
	}
	for msg := range prompts {
		t.Messages = append(t.Messages, msg)
		t.Metadata.PromptCount++

		response, ok := responses[msg.Prompt]
		if !ok {
			continue
		}
		t.Messages = append(t.Messages, Message{Role: RoleAssistant, Content: response, Prompt: msg.Prompt})
		for follow := range chat.ExpandResponse(msg.Prompt, response) {
			t.Messages = append(t.Messages, Message{Role: RoleUser, Content: follow, Prompt: msg.Prompt})
			t.Metadata.ExpansionCount++
		}
	}

	t.Metadata.MessageCount = len(t.Messages)
	return t, nil
}
