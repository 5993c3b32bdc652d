package media

import (
	"encoding/binary"
	"math"
	"testing"
)

func pcm(samples ...int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

func TestDownsamplePCMPeaks(t *testing.T) {
	// two buckets: peak 16384 in the first, peak -32768 in the second
	raw := pcm(100, 16384, -200, 0, -32768, 50)

	peaks := downsamplePCM(raw, 2)
	if len(peaks) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(peaks))
	}
	if math.Abs(peaks[0]-0.5) > 1e-9 {
		t.Errorf("bucket 0 peak = %v, expected 0.5", peaks[0])
	}
	if math.Abs(peaks[1]-1.0) > 1e-9 {
		t.Errorf("bucket 1 peak = %v, expected 1.0", peaks[1])
	}
}

func TestDownsamplePCMEmptyInput(t *testing.T) {
	peaks := downsamplePCM(nil, 4)
	if len(peaks) != 4 {
		t.Fatalf("expected 4 zero buckets, got %d", len(peaks))
	}
	for i, p := range peaks {
		if p != 0 {
			t.Errorf("bucket %d = %v, expected 0", i, p)
		}
	}
}

func TestDownsamplePCMRange(t *testing.T) {
	raw := pcm(-32768, 32767, 0, -1, 1, 12345, -12345, 32767)
	peaks := downsamplePCM(raw, 3)
	for i, p := range peaks {
		if p < 0 || p > 1 {
			t.Errorf("bucket %d = %v out of [0,1]", i, p)
		}
	}
}
