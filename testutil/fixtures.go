package testutil

import "testing"

// ChatFixture is a chat definition with two prompts, the first expecting a list response
const ChatFixture = `system: Be terse.
judgment: "Case: {judgment}"
prompts:
  - name: q1
    prompt: "Q1 about {judgment}"
    multiple: "Item: {x}"
  - name: q2
    prompt: "Q2 about {judgment}"
`

// DuplicateChatFixture defines the same prompt name twice
const DuplicateChatFixture = `system: Be terse.
judgment: "Case: {judgment}"
prompts:
  - name: q1
    prompt: "Q1 about {judgment}"
  - name: q1
    prompt: "Q1 again {judgment}"
`

// MissingSystemChatFixture lacks the system field
const MissingSystemChatFixture = `judgment: "Case: {judgment}"
prompts: []
`

// JudgmentFixture is a judgment document as JSON
const JudgmentFixture = `{"id": 7}`

// ResponsesFixture maps prompt names to model responses
const ResponsesFixture = `q1: '["x", "y"]'
`

// WriteChatFixture writes ChatFixture to dir/chat.yaml and returns its path
func WriteChatFixture(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "chat.yaml", ChatFixture)
}
