package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/iksnae/casechat/internal"
	"github.com/spf13/cobra"
)

// historyCmd lists saved transcripts
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved transcripts",
	Long:  `List transcripts saved with 'casechat render --save', newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		summaries, err := store.List()
		if err != nil {
			return err
		}

		displayTranscripts(cmd.OutOrStdout(), summaries)
		return nil
	},
}

// displayTranscripts prints one entry per saved transcript
func displayTranscripts(w io.Writer, summaries []internal.TranscriptSummary) {
	if len(summaries) == 0 {
		internal.PrintInfo(w, "No saved transcripts")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d transcript(s)", len(summaries))))
	fmt.Fprintln(w)
	for _, s := range summaries {
		fmt.Fprintf(w, "%s  %s\n", titleStyle.Render(s.Chat), idStyle.Render(s.ID))
		fmt.Fprintf(w, "    %s messages, %s prompts, %s expansions  %s\n",
			countStyle.Render(fmt.Sprint(s.MessageCount)),
			countStyle.Render(fmt.Sprint(s.PromptCount)),
			countStyle.Render(fmt.Sprint(s.ExpansionCount)),
			dateStyle.Render(formatCreatedAt(s.CreatedAt)),
		)
	}
}

// formatCreatedAt renders an RFC 3339 timestamp in local time, or as-is if unparsable
func formatCreatedAt(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
