package export

import (
	"fmt"
	"image"
	"io"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "capline/internal/ffmpeg"
)

// VideoEncoder streams RGBA frames into an H.264/MP4 file, muxing the
// audio track of the original video when present.
type VideoEncoder struct {
	width   int
	height  int
	writer  *io.PipeWriter
	done    chan error
	outPath string
	aborted bool
}

// EncoderOptions configures a VideoEncoder.
type EncoderOptions struct {
	Width     int
	Height    int
	OutPath   string
	AudioFrom string // original video path; empty skips audio muxing
}

// NewVideoEncoder starts the encoding process. It fails before
// touching the output path when ffmpeg is unavailable.
func NewVideoEncoder(opts EncoderOptions) (*VideoEncoder, error) {
	bins, err := ffmpegbin.Ensure()
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", opts.Width, opts.Height)
	}

	pr, pw := io.Pipe()

	videoIn := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"r":       ExportFPS,
	}).WithInput(pr)

	var stream *ffmpeg.Stream
	kwargs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"r":       ExportFPS,
	}
	if opts.AudioFrom != "" {
		audioIn := ffmpeg.Input(opts.AudioFrom)
		kwargs["c:a"] = "aac"
		kwargs["map"] = []string{"0:v:0", "1:a:0?"}
		kwargs["shortest"] = ""
		stream = ffmpeg.Output(
			[]*ffmpeg.Stream{videoIn, audioIn},
			opts.OutPath,
			kwargs,
		)
	} else {
		stream = videoIn.Output(opts.OutPath, kwargs)
	}

	enc := &VideoEncoder{
		width:   opts.Width,
		height:  opts.Height,
		writer:  pw,
		done:    make(chan error, 1),
		outPath: opts.OutPath,
	}

	go func() {
		enc.done <- stream.OverWriteOutput().
			SetFfmpegPath(bins.FFmpeg).
			Silent(true).
			Run()
	}()

	return enc, nil
}

// WriteFrame submits one frame. Frames must arrive in order; the
// pipeline guarantees that.
func (e *VideoEncoder) WriteFrame(img *image.RGBA) error {
	if img.Bounds().Dx() != e.width || img.Bounds().Dy() != e.height {
		return fmt.Errorf(
			"frame size %dx%d does not match encoder %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy(), e.width, e.height,
		)
	}
	_, err := e.writer.Write(img.Pix)
	return err
}

// Close finishes the stream and waits for the container to finalize.
func (e *VideoEncoder) Close() error {
	_ = e.writer.Close()
	if err := <-e.done; err != nil {
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}
	return nil
}

// Abort stops encoding and removes the partial output so it can never
// be mistaken for a finished export.
func (e *VideoEncoder) Abort() error {
	if e.aborted {
		return nil
	}
	e.aborted = true
	_ = e.writer.CloseWithError(fmt.Errorf("export aborted"))
	<-e.done
	return os.Remove(e.outPath)
}
