package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/casechat/internal"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	envConfig = "CASECHAT_CONFIG"
	envDB     = "CASECHAT_DB"
)

var (
	verbose    bool
	configPath string
	dbPath     string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "casechat",
	Short: "Build case-analysis chat conversations from a prompt definition",
	Long: `casechat turns a chat definition (system preamble, judgment introduction
and an ordered list of prompts) into the messages sent to a chat model for
one judgment, and expands list-shaped model responses into follow-up prompts.

Quick Start:
  casechat prompts -c chat.yaml                      # List prompts in order
  casechat render -c chat.yaml -j judgment.json      # Render the conversation
  casechat expand -c chat.yaml q1 response.json      # Expand a model response
  casechat render -c chat.yaml -j judgment.json --save && casechat history

The chat definition may also be set with CASECHAT_CONFIG (a .env file in the
working directory is read on startup).`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env file is fine
		_ = godotenv.Load()
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError(os.Stderr, fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Chat definition file (YAML or JSON); defaults to $"+envConfig)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Transcript database path; defaults to $"+envDB+" or ~/.casechat/transcripts.db")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveConfigPath returns the chat definition path from the flag or environment
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}
	return "", errors.New("no chat definition given (use --config or set " + envConfig + ")")
}

// loadChat loads the chat definition and returns it with a display name
func loadChat() (*internal.CaseChat, string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, "", err
	}

	chat, err := internal.LoadCaseChat(internal.FileSource{Path: path})
	if err != nil {
		return nil, "", fmt.Errorf("failed to load chat definition %s: %w", path, err)
	}
	internal.LogDebug("Loaded %d prompt(s) from %s", chat.Len(), path)

	return chat, chatName(path), nil
}

// chatName derives a display name from a definition path
func chatName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveDBPath returns the transcript database path from the flag, environment or home directory
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if p := os.Getenv(envDB); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".casechat", "transcripts.db"), nil
}

// openStore opens the transcript store at the resolved path
func openStore() (*internal.TranscriptStore, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	return internal.OpenStore(path)
}
