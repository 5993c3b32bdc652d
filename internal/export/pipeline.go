// Package export renders a video frame by frame with captions
// composited, feeding a streaming encoder. The loop is deterministic
// frame stepping, not wall-clock playback: frame i+1 is never
// requested before frame i is drawn and encoded.
package export

import (
	"context"
	"fmt"
	"image"
	"math"

	"capline/internal/caption"
	"capline/internal/editor"
	"capline/internal/render"
)

// ExportFPS is the frame rate of the rendered output.
const ExportFPS = 30.0

// FrameSource produces decoded frames. Seek blocks until the media
// reports the frame for t is ready; that wait is the pipeline's only
// suspension point.
type FrameSource interface {
	Seek(ctx context.Context, t float64) (*image.RGBA, error)
	Close() error
}

// Encoder consumes frames in order. Close finalizes the output;
// Abort discards it so a cancelled export never leaves a truncated
// file that looks valid.
type Encoder interface {
	WriteFrame(*image.RGBA) error
	Close() error
	Abort() error
}

// Position is the playback-position surface of the media source
// collaborator. The pipeline restores whatever position the user had
// before the export started.
type Position interface {
	CurrentTime() float64
	SetTime(float64)
}

// Pipeline drives one export run.
type Pipeline struct {
	Source   FrameSource
	Encoder  Encoder
	State    editor.State
	Duration float64
	Width    int
	Height   int

	// Progress, if set, receives completion in [0, 1] after each frame.
	Progress func(float64)

	// Player, if set, has its playback position saved and restored
	// around the export.
	Player Position
}

// Run executes the frame loop. On context cancellation it stops
// issuing seeks, aborts the encoder, and restores the playback
// position; the partial output file is removed.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.Source == nil || p.Encoder == nil {
		return fmt.Errorf("export pipeline missing source or encoder")
	}

	if p.Player != nil {
		saved := p.Player.CurrentTime()
		defer p.Player.SetTime(saved)
	}
	defer func() {
		_ = p.Source.Close()
	}()

	numFrames := int(math.Floor(p.Duration * ExportFPS))
	width := float64(p.Width)
	height := float64(p.Height)

	for i := 0; i <= numFrames; i++ {
		if err := ctx.Err(); err != nil {
			_ = p.Encoder.Abort()
			return err
		}

		t := float64(i) / ExportFPS

		frame, err := p.Source.Seek(ctx, t)
		if err != nil {
			_ = p.Encoder.Abort()
			return fmt.Errorf("frame %d: seek failed: %w", i, err)
		}

		if idx := caption.FindAt(p.State.Captions, t); idx >= 0 {
			if _, err := render.Draw(frame, p.State.Captions[idx].Text, p.State.Styles, width, height); err != nil {
				_ = p.Encoder.Abort()
				return fmt.Errorf("frame %d: caption render failed: %w", i, err)
			}
		}

		if err := p.Encoder.WriteFrame(frame); err != nil {
			_ = p.Encoder.Abort()
			return fmt.Errorf("frame %d: encode failed: %w", i, err)
		}

		if p.Progress != nil && numFrames > 0 {
			p.Progress(float64(i) / float64(numFrames))
		}
	}

	if err := p.Encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize encoded output: %w", err)
	}
	return nil
}
