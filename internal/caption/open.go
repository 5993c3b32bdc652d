package caption

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Open loads a caption list from an SRT or VTT file. Input may be
// unsorted (transcription output often is); the result is sorted by
// start time.
func Open(path string) ([]Caption, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var captions []Caption
	var err error
	switch ext {
	case ".srt":
		captions, err = parseSRTFile(path)
	case ".vtt":
		captions, err = parseVTTFile(path)
	default:
		return nil, fmt.Errorf("unsupported caption format: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	Sort(captions)
	return captions, nil
}
