package internal

import (
	"time"
)

// CreateTestTranscript creates a test transcript with sample data
func CreateTestTranscript(id string) *Transcript {
	return &Transcript{
		ID:        id,
		Chat:      "test-chat",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Messages: []Message{
			{Role: RoleSystem, Content: "Be terse."},
			{Role: RoleUser, Content: `Case: {"id": 7}`},
			{Role: RoleUser, Content: `Q1 about {"id": 7}`, Prompt: "q1"},
			{Role: RoleAssistant, Content: `["x", "y"]`, Prompt: "q1"},
		},
		Metadata: TranscriptMetadata{
			Judgment:     `{"id": 7}`,
			MessageCount: 4,
			PromptCount:  1,
		},
	}
}

// CreateTestTranscriptWithMessages creates a test transcript with custom messages
func CreateTestTranscriptWithMessages(id string, messages []Message) *Transcript {
	return &Transcript{
		ID:       id,
		Chat:     "test-chat",
		Messages: messages,
		Metadata: TranscriptMetadata{
			Judgment:     "{}",
			MessageCount: len(messages),
		},
	}
}
