package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/casechat/internal"
	"github.com/iksnae/casechat/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	outputDir    string
)

// exportCmd writes saved transcripts to files
var exportCmd = &cobra.Command{
	Use:   "export [transcript-id...]",
	Short: "Export saved transcripts to files",
	Long: `Export saved transcripts to various formats (jsonl, md, yaml, json).

Without IDs every saved transcript is exported. Use 'casechat history' to see
available transcript IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ids := args
		if len(ids) == 0 {
			summaries, err := store.List()
			if err != nil {
				return err
			}
			for _, s := range summaries {
				ids = append(ids, s.ID)
			}
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, id := range ids {
			transcript, err := store.Load(id)
			if err != nil {
				return err
			}

			path := filepath.Join(outputDir, fmt.Sprintf("transcript_%s.%s", id, exporter.Extension()))
			if err := exportToFile(exporter, transcript, path, exportFormat); err != nil {
				internal.LogError("%v", err)
				continue
			}
			exported++
		}

		internal.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Export complete: %d transcript(s) exported to %s", exported, outputDir))
		return nil
	},
}

// exportToFile writes t to path with exporter
func exportToFile(exporter export.Exporter, t *internal.Transcript, path, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := exporter.Export(t, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
}
