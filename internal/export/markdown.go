package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/casechat/internal"
)

// MarkdownExporter exports a transcript as a readable Markdown document
type MarkdownExporter struct{}

// Export writes t as Markdown
func (e *MarkdownExporter) Export(t *internal.Transcript, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Transcript %s\n\n", t.ID)

	if t.Chat != "" {
		_, _ = fmt.Fprintf(w, "**Chat:** %s  \n", t.Chat)
	}
	if t.CreatedAt != "" {
		_, _ = fmt.Fprintf(w, "**Created:** %s  \n", t.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d  \n", len(t.Messages))
	_, _ = fmt.Fprintf(w, "**Prompts:** %d  \n", t.Metadata.PromptCount)
	_, _ = fmt.Fprintf(w, "**Expansions:** %d\n\n", t.Metadata.ExpansionCount)

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range t.Messages {
		prompt := ""
		if msg.Prompt != "" {
			prompt = fmt.Sprintf(" (%s)", msg.Prompt)
		}

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, prompt, escapeMarkdown(msg.Content))

		if i < len(t.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers outside fenced code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	inCodeBlock := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "```"):
			inCodeBlock = !inCodeBlock
		case !inCodeBlock:
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
		}
		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
