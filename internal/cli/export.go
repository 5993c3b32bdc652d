package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"capline/internal/caption"
)

var exportCmd = &cobra.Command{
	Use:   "export [caption_file]",
	Short: "Convert a caption file to SRT or VTT",
	Long: `Read an SRT or VTT caption file, sort and validate it, and write it
back out in the requested format.

Examples:
  capline export transcript.vtt -o captions.srt
  capline export captions.srt --format vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "srt", "Output caption format (srt, vtt)")
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	captions, err := caption.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load captions: %w", err)
	}
	if err := caption.Validate(captions); err != nil {
		return fmt.Errorf("caption list is invalid: %w", err)
	}

	formatStr, _ := cmd.Flags().GetString("format")
	var ext string
	switch strings.ToLower(formatStr) {
	case "srt":
		ext = ".srt"
	case "vtt":
		ext = ".vtt"
	default:
		return fmt.Errorf("unsupported format %q: use srt or vtt", formatStr)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = baseName + ext
	}

	if err := caption.WriteFile(captions, outputPath); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions written: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(captions))

	return nil
}
