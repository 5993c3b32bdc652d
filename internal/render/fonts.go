package render

import (
	"errors"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	size int
	bold bool
}

type fontBank struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[fontKey]font.Face
}

var bank = newFontBank()

func newFontBank() *fontBank {
	b := &fontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return b
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return b
	}
	b.regular = reg
	b.bold = bol
	return b
}

// face returns a cached font face for the given pixel size and weight.
func (b *fontBank) face(sizePx float64, weight int) (font.Face, error) {
	size := int(sizePx + 0.5)
	if size < 1 {
		size = 1
	}
	bold := weight >= 600

	b.mu.Lock()
	defer b.mu.Unlock()

	key := fontKey{size: size, bold: bold}
	if f, ok := b.cache[key]; ok {
		return f, nil
	}

	src := b.regular
	if bold {
		src = b.bold
	}
	if src == nil {
		return nil, errors.New("embedded fonts failed to parse")
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	b.cache[key] = f
	return f, nil
}
