package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"capline/internal/caption"
	"capline/internal/editor"
	"capline/internal/export"
	"capline/internal/media"
	"capline/internal/style"
)

var renderCmd = &cobra.Command{
	Use:   "render [video_file] [caption_file]",
	Short: "Re-render a video with captions burned in",
	Long: `Render every frame of the video with the active caption composited,
producing a new video file. Frames are stepped deterministically at
30fps, so the output is identical to what the editor preview shows.

Examples:
  capline render video.mp4 captions.srt
  capline render video.mp4 captions.srt -o final.mp4
  capline render video.mp4 captions.srt --preset neon`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().
		String("preset", "", "Style preset name to render with")
}

func runRender(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	captionsPath := args[1]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	captions, err := caption.Open(captionsPath)
	if err != nil {
		return fmt.Errorf("failed to load captions: %w", err)
	}
	if err := caption.Validate(captions); err != nil {
		return fmt.Errorf("caption list is invalid: %w", err)
	}

	styles := style.Default()
	if presetName, _ := cmd.Flags().GetString("preset"); presetName != "" {
		styles, err = loadPreset(presetName)
		if err != nil {
			return err
		}
	}

	info, err := media.Probe(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("failed to probe video: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		baseName := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
		outputPath = baseName + ".captioned.mp4"
	}

	logger.Infow("Starting render",
		"video", videoPath,
		"captions", len(captions),
		"output", outputPath,
		"resolution", fmt.Sprintf("%dx%d", info.Width, info.Height),
	)

	source, err := export.NewVideoSource(videoPath, info.Width, info.Height)
	if err != nil {
		return fmt.Errorf("cannot start export: %w", err)
	}

	audioFrom := ""
	if info.HasAudio {
		audioFrom = videoPath
	}
	encoder, err := export.NewVideoEncoder(export.EncoderOptions{
		Width:     info.Width,
		Height:    info.Height,
		OutPath:   outputPath,
		AudioFrom: audioFrom,
	})
	if err != nil {
		return fmt.Errorf("cannot start encoder: %w", err)
	}

	lastPct := -1
	pipeline := &export.Pipeline{
		Source:   source,
		Encoder:  encoder,
		State:    editor.NewState(captions, styles),
		Duration: info.Seconds(),
		Width:    info.Width,
		Height:   info.Height,
		Progress: func(p float64) {
			pct := int(p * 100)
			if pct != lastPct {
				lastPct = pct
				fmt.Printf("\rRendering... %3d%%", pct)
			}
		},
	}

	if err := pipeline.Run(ctx); err != nil {
		fmt.Println()
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Println()
	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Video rendered: %s\n", absOutput)

	return nil
}

func loadPreset(name string) (style.Options, error) {
	store, err := style.DefaultPresetStore()
	if err != nil {
		return style.Options{}, err
	}
	presets, err := store.Load()
	if err != nil {
		logger.Warnw("preset store unreadable, using defaults", "error", err)
		return style.Default(), nil
	}
	for _, p := range presets {
		if p.Name == name {
			return p.Styles, nil
		}
	}
	return style.Options{}, fmt.Errorf("preset %q not found", name)
}
