package ffmpeg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocateHonorsOverride(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := locate("ffmpeg", fake)
	if err != nil {
		t.Fatalf("locate with a valid override failed: %v", err)
	}
	if got != fake {
		t.Errorf("override ignored: got %q, expected %q", got, fake)
	}
}

func TestLocateRejectsBadOverride(t *testing.T) {
	dir := t.TempDir()

	// a path that does not exist
	_, err := locate("ffmpeg", filepath.Join(dir, "missing"))
	var unavailable *ErrUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if unavailable.Binary != "ffmpeg" {
		t.Errorf("unexpected binary name %q", unavailable.Binary)
	}

	// a directory is not a binary
	if _, err := locate("ffprobe", dir); err == nil {
		t.Error("directory override should be rejected")
	}
}

func TestErrUnavailableNamesEnvVar(t *testing.T) {
	tests := []struct {
		binary string
		want   string
	}{
		{"ffmpeg", "CAPLINE_FFMPEG_PATH"},
		{"ffprobe", "CAPLINE_FFPROBE_PATH"},
	}
	for _, tt := range tests {
		e := &ErrUnavailable{Binary: tt.binary}
		if !strings.Contains(e.Error(), tt.want) {
			t.Errorf("%s error %q does not mention %s", tt.binary, e.Error(), tt.want)
		}
	}
}
