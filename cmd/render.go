package cmd

import (
	"errors"
	"fmt"

	"github.com/iksnae/casechat/internal"
	"github.com/iksnae/casechat/internal/export"
	"github.com/spf13/cobra"
)

var (
	judgmentPath  string
	responsesPath string
	renderFormat  string
	renderOut     string
	saveRender    bool
)

// renderCmd renders the conversation for one judgment
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the conversation for a judgment",
	Long: `Render the full message sequence for a judgment: the system preamble, the
judgment introduction, then every prompt in order.

With --responses, model responses (a YAML or JSON mapping from prompt name to
response text) are placed after their prompts, followed by the follow-up
prompts they expand into. With --save the transcript is stored for later
use with 'casechat history', 'show' and 'export'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if responsesPath == "-" && (judgmentPath == "" || judgmentPath == "-") {
			return errors.New("--judgment and --responses cannot both read from stdin")
		}

		exporter, err := export.NewExporter(renderFormat)
		if err != nil {
			return err
		}

		chat, name, err := loadChat()
		if err != nil {
			return err
		}

		data, err := readInput(judgmentPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
		judgment, err := parseJudgment(data)
		if err != nil {
			return err
		}

		var responses map[string]string
		if responsesPath != "" {
			data, err := readInput(responsesPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if responses, err = parseResponses(data); err != nil {
				return err
			}
			for promptName := range responses {
				if _, ok := chat.Prompt(promptName); !ok {
					internal.LogWarn("Response given for unknown prompt %q, ignoring", promptName)
				}
			}
		}

		transcript, err := internal.BuildTranscript(chat, name, judgment, responses)
		if err != nil {
			return fmt.Errorf("failed to render conversation: %w", err)
		}

		if saveRender {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(transcript); err != nil {
				return err
			}
			internal.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Saved transcript %s", transcript.ID))
		}

		if renderOut == "" || renderOut == "-" {
			return exporter.Export(transcript, cmd.OutOrStdout())
		}

		if err := exportToFile(exporter, transcript, renderOut, renderFormat); err != nil {
			return err
		}

		internal.LogInfo("Wrote %d message(s) to %s", len(transcript.Messages), renderOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&judgmentPath, "judgment", "j", "", "Judgment file (JSON or YAML, '-' for stdin)")
	renderCmd.Flags().StringVarP(&responsesPath, "responses", "r", "", "Model responses by prompt name (YAML or JSON)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "jsonl", "Output format (jsonl, md, yaml, json)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().BoolVar(&saveRender, "save", false, "Save the transcript to the transcript database")
	_ = renderCmd.MarkFlagRequired("judgment")
}
