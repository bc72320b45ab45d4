package internal

import "testing"

func TestTranscriptHash(t *testing.T) {
	base := CreateTestTranscript("a")

	same := CreateTestTranscript("b")
	same.CreatedAt = "2030-01-01T00:00:00Z"

	changed := CreateTestTranscript("c")
	changed.Messages[2].Content = "Q1 about something else"

	renamed := CreateTestTranscript("d")
	renamed.Chat = "other-chat"

	tests := []struct {
		name     string
		other    *Transcript
		wantSame bool
	}{
		{name: "identical content, different id and time", other: same, wantSame: true},
		{name: "different message", other: changed, wantSame: false},
		{name: "different chat", other: renamed, wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranscriptHash(base) == TranscriptHash(tt.other)
			if got != tt.wantSame {
				t.Errorf("TranscriptHash() equal = %v, want %v", got, tt.wantSame)
			}
		})
	}
}

func TestTranscriptHash_FieldBoundaries(t *testing.T) {
	a := CreateTestTranscriptWithMessages("a", []Message{{Role: "user", Content: "ab"}, {Role: "user", Content: "c"}})
	b := CreateTestTranscriptWithMessages("b", []Message{{Role: "user", Content: "a"}, {Role: "user", Content: "bc"}})

	if TranscriptHash(a) == TranscriptHash(b) {
		t.Error("TranscriptHash() should differ when content moves across messages")
	}
}
