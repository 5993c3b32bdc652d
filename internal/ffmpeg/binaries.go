// Package ffmpeg locates the ffmpeg and ffprobe binaries the export
// pipeline depends on. Lookup happens once; a missing binary is the
// capability-missing failure mode, reported before any export state
// changes.
package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

// ErrUnavailable wraps lookup failures so callers can refuse to start
// an export with a clear message.
type ErrUnavailable struct {
	Binary string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf(
		"%s not found: install it or set CAPLINE_%s_PATH",
		e.Binary, toEnvSuffix(e.Binary),
	)
}

var (
	ensureOnce sync.Once
	ensureErr  error
	ensurePath BinaryPaths
)

// Ensure resolves both binaries, preferring explicit environment
// overrides over PATH lookup. The result is cached for the process.
func Ensure() (BinaryPaths, error) {
	ensureOnce.Do(func() {
		ensurePath, ensureErr = ensure()
	})
	return ensurePath, ensureErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func ensure() (BinaryPaths, error) {
	ffmpegPath, err := locate("ffmpeg", os.Getenv("CAPLINE_FFMPEG_PATH"))
	if err != nil {
		return BinaryPaths{}, err
	}
	ffprobePath, err := locate("ffprobe", os.Getenv("CAPLINE_FFPROBE_PATH"))
	if err != nil {
		return BinaryPaths{}, err
	}
	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}

func locate(binary, override string) (string, error) {
	if override != "" {
		info, err := os.Stat(override)
		if err != nil || info.IsDir() {
			return "", &ErrUnavailable{Binary: binary}
		}
		return override, nil
	}
	found, err := exec.LookPath(binary)
	if err != nil {
		return "", &ErrUnavailable{Binary: binary}
	}
	return found, nil
}

func toEnvSuffix(binary string) string {
	if binary == "ffprobe" {
		return "FFPROBE"
	}
	return "FFMPEG"
}
