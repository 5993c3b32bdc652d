package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"capline/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [video_file]",
	Short: "Open the interactive caption timeline editor",
	Long: `Open a video in the timeline editor. Pass --captions to load an
existing SRT or VTT track; without it the timeline starts empty and
captions are added in the editor.

Examples:
  capline edit video.mp4
  capline edit video.mp4 --captions transcript.srt
  capline edit video.mp4 -c transcript.vtt -o edited.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().
		StringP("captions", "c", "", "Caption file to load (srt, vtt)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}

	captionsPath, _ := cmd.Flags().GetString("captions")
	outputPath, _ := cmd.Flags().GetString("output")

	logger.Infow("Opening editor",
		"video", videoPath,
		"captions", captionsPath,
	)

	return tui.Run(context.Background(), tui.Options{
		VideoPath:    videoPath,
		CaptionsPath: captionsPath,
		OutPath:      outputPath,
		Logger:       logger,
	})
}
