package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// supported interchange formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// FormatSRTDocument renders captions as a SubRip document: sequential
// 1-based blocks separated by one blank line, comma millisecond separator.
func FormatSRTDocument(captions []Caption) string {
	blocks := make([]string, 0, len(captions))
	for i, c := range captions {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(secondsToDuration(c.Start)),
			formatSRTTime(secondsToDuration(c.End))))
		sb.WriteString(c.Text)
		sb.WriteString("\n")
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

// FormatVTTDocument renders captions as a WebVTT document.
func FormatVTTDocument(captions []Caption) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, c := range captions {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(secondsToDuration(c.Start)),
			formatVTTTime(secondsToDuration(c.End))))
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// WriteFile writes captions to path, picking the format from the extension.
func WriteFile(captions []Caption, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var doc string
	switch GetFormatFromExtension(path) {
	case FormatVTT:
		doc = FormatVTTDocument(captions)
	default:
		doc = FormatSRTDocument(captions)
	}

	return os.WriteFile(path, []byte(doc), 0644)
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s*1000+0.5) * time.Millisecond
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// caption format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt":
		return FormatVTT
	default:
		return FormatSRT
	}
}
