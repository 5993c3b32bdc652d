package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "capline/internal/ffmpeg"
)

// waveformSampleRate keeps decode cost low; the ruler backdrop does
// not need audio fidelity.
const waveformSampleRate = 8000

// Waveform decodes the audio track to mono PCM and downsamples it into
// buckets normalized peak amplitudes in [0, 1], one per bucket.
//
// A video without audio yields a zero-filled array rather than an
// error, since the ruler can render silence.
func Waveform(ctx context.Context, path string, buckets int) ([]float64, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("waveform buckets must be positive, got %d", buckets)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", path)
	}
	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"f":   "s16le",
			"ac":  1,
			"ar":  waveformSampleRate,
			"vn":  "",
			"map": "0:a:0?",
		}).
		WithOutput(&buf).
		SetFfmpegPath(ffmpegPath).
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg waveform decode failed: %w", err)
	}

	return downsamplePCM(buf.Bytes(), buckets), nil
}

// downsamplePCM reduces little-endian s16 mono samples to per-bucket
// peak amplitudes normalized to [0, 1].
func downsamplePCM(raw []byte, buckets int) []float64 {
	peaks := make([]float64, buckets)
	sampleCount := len(raw) / 2
	if sampleCount == 0 {
		return peaks
	}

	samplesPerBucket := sampleCount/buckets + 1
	for i := 0; i < sampleCount; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		amp := float64(v)
		if amp < 0 {
			amp = -amp
		}
		bucket := i / samplesPerBucket
		if bucket >= buckets {
			bucket = buckets - 1
		}
		if amp > peaks[bucket] {
			peaks[bucket] = amp
		}
	}

	for i := range peaks {
		peaks[i] /= 32768.0
	}
	return peaks
}
