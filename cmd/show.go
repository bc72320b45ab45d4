package cmd

import (
	"fmt"
	"io"

	"github.com/iksnae/casechat/internal"
	"github.com/spf13/cobra"
)

var showLimit int

// showCmd displays a saved transcript
var showCmd = &cobra.Command{
	Use:   "show <transcript-id>",
	Short: "Show the messages of a saved transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		transcript, err := store.Load(args[0])
		if err != nil {
			return err
		}

		displayTranscript(cmd.OutOrStdout(), transcript, showLimit)
		return nil
	},
}

// displayTranscript prints a transcript header and up to limit messages (0 = all)
func displayTranscript(w io.Writer, t *internal.Transcript, limit int) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Transcript %s", t.ID)))
	fmt.Fprintf(w, "%s  %s  %s\n\n",
		titleStyle.Render(t.Chat),
		dateStyle.Render(formatCreatedAt(t.CreatedAt)),
		idStyle.Render("judgment "+t.Metadata.Judgment),
	)

	messages := t.Messages
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}

	for _, msg := range messages {
		label := msg.Role
		if msg.Prompt != "" {
			label = fmt.Sprintf("%s (%s)", msg.Role, msg.Prompt)
		}
		fmt.Fprintln(w, roleStyle(msg.Role).Render(label))
		fmt.Fprintln(w, messageContentStyle.Render(msg.Content))
	}

	if hidden := len(t.Messages) - len(messages); hidden > 0 {
		fmt.Fprintln(w, dateStyle.Render(fmt.Sprintf("... %d more message(s)", hidden)))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Show at most this many messages (0 = all)")
}
