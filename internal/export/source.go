package export

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "capline/internal/ffmpeg"
)

// VideoSource decodes a video into RGBA frames at the export frame
// rate. Decoding is strictly sequential: each Seek hands back the next
// frame in presentation order and blocks until it is fully read from
// the decoder, which is the seek-completion signal.
type VideoSource struct {
	width      int
	height     int
	reader     *io.PipeReader
	done       chan error
	frame      int
	buf        []byte
	started    bool
	path       string
	ffmpegPath string
}

// NewVideoSource validates that decoding is possible (the capability
// check) without starting the decoder; the first Seek does that.
func NewVideoSource(path string, width, height int) (*VideoSource, error) {
	bins, err := ffmpegbin.Ensure()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", path)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	return &VideoSource{
		width:      width,
		height:     height,
		path:       path,
		ffmpegPath: bins.FFmpeg,
		buf:        make([]byte, width*height*4),
	}, nil
}

func (s *VideoSource) start() {
	pr, pw := io.Pipe()
	s.reader = pr
	s.done = make(chan error, 1)

	stream := ffmpeg.Input(s.path).
		Output("pipe:", ffmpeg.KwArgs{
			"f":       "rawvideo",
			"pix_fmt": "rgba",
			"r":       ExportFPS,
			"s":       fmt.Sprintf("%dx%d", s.width, s.height),
			"an":      "",
		}).
		WithOutput(pw).
		SetFfmpegPath(s.ffmpegPath).
		Silent(true)

	go func() {
		err := stream.Run()
		pw.CloseWithError(err)
		s.done <- err
	}()

	s.started = true
}

// Seek returns the frame at t. Because the pipeline steps exactly one
// frame interval at a time, t must be the next sequential timestamp.
func (s *VideoSource) Seek(ctx context.Context, t float64) (*image.RGBA, error) {
	expected := float64(s.frame) / ExportFPS
	if diff := t - expected; diff > 1.0/(2*ExportFPS) || diff < -1.0/(2*ExportFPS) {
		return nil, fmt.Errorf(
			"non-sequential seek: got %.4f, expected %.4f", t, expected,
		)
	}

	if !s.started {
		s.start()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(s.reader, s.buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// Duration rounding can leave the final frame short; reuse
			// the last decoded frame so the frame count contract holds.
			if s.frame > 0 {
				s.frame++
				return s.currentImage(), nil
			}
		}
		return nil, fmt.Errorf("decode frame at %.3fs: %w", t, err)
	}

	s.frame++
	return s.currentImage(), nil
}

func (s *VideoSource) currentImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.buf)
	return img
}

func (s *VideoSource) Close() error {
	if !s.started {
		return nil
	}
	_ = s.reader.Close()
	return <-s.done
}
