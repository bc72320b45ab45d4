package cmd

import (
	"fmt"

	"github.com/iksnae/casechat/internal"
	"github.com/spf13/cobra"
)

// validateCmd checks a chat definition without rendering anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a chat definition for format and template errors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chat, name, err := loadChat()
		if err != nil {
			return err
		}

		internal.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s is valid: %d prompt(s)", name, chat.Len()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
