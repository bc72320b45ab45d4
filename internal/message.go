package internal

// Message roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a role + content pair handed to a chat transport
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Prompt  string `json:"prompt,omitempty" yaml:"prompt,omitempty"` // originating prompt name, if any
}

// SystemMessage creates a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
