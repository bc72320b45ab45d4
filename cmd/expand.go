package cmd

import (
	"fmt"

	"github.com/iksnae/casechat/internal"
	"github.com/spf13/cobra"
)

// expandCmd expands a list-shaped model response into follow-up prompts
var expandCmd = &cobra.Command{
	Use:   "expand <prompt-name> [response-file|-]",
	Short: "Expand a model response into follow-up prompts",
	Long: `Parse a model response to the named prompt as a JSON array and print one
follow-up prompt per element, using the prompt's multiple template.

A response that is not a JSON array produces no follow-ups. The response is
read from stdin when no file is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		chat, _, err := loadChat()
		if err != nil {
			return err
		}

		promptName := args[0]
		p, ok := chat.Prompt(promptName)
		if !ok {
			return fmt.Errorf("prompt not found: %s (use 'casechat prompts' to see available prompts)", promptName)
		}
		if !p.HasMultiple() {
			internal.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("prompt %s has no multiple template, nothing to expand", promptName))
			return nil
		}

		source := ""
		if len(args) == 2 {
			source = args[1]
		}
		data, err := readInput(source, cmd.InOrStdin())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		count := 0
		for follow := range chat.ExpandResponse(promptName, string(data)) {
			fmt.Fprintln(out, follow)
			count++
		}

		if count == 0 {
			internal.PrintWarning(cmd.ErrOrStderr(), "response is not a non-empty JSON array, no follow-up prompts")
		}
		internal.LogDebug("Expanded response for %s into %d prompt(s)", promptName, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
}
