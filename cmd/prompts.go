package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// promptsCmd lists the prompts of a chat definition in conversation order
var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List prompts in conversation order",
	Long:  `List the prompts of a chat definition in the order they are sent, marking prompts that expand list responses.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chat, name, err := loadChat()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Chat %s", name)))
		fmt.Fprintf(out, "%s prompt(s)\n\n", countStyle.Render(fmt.Sprint(chat.Len())))

		for i, promptName := range chat.PromptNames() {
			p, _ := chat.Prompt(promptName)
			marker := ""
			if p.HasMultiple() {
				marker = " " + idStyle.Render("[expands lists]")
			}
			fmt.Fprintf(out, "%2d. %s%s\n", i+1, titleStyle.Render(promptName), marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptsCmd)
}
