// Package render lays out and paints caption text. The same routine
// serves the live preview and the export pipeline, so the two always
// produce identical pixels for identical inputs.
package render

import (
	"strings"

	"golang.org/x/image/font"

	"capline/internal/style"
)

// Bounds is the caption box in source-resolution pixel space, used for
// hit-testing and in-place editing overlays. Recomputed every frame,
// never persisted.
type Bounds struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) falls inside the box.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// Layout is the measured geometry of a caption on a surface of the
// given dimensions.
type Layout struct {
	Lines      []string
	LineWidths []float64
	FontSize   float64
	LineHeight float64
	Padding    float64
	Box        Bounds
}

// Measure wraps text against the style and surface dimensions and
// computes the caption box. Width and height are the video's native
// resolution, not the display size.
func Measure(text string, styles style.Options, width, height float64) (Layout, error) {
	fontSize := styles.FontSize / 100 * height
	maxLineWidth := styles.MaxWidth / 100 * width
	padding := styles.Padding / 100 * fontSize
	lineHeight := fontSize * 1.2

	face, err := bank.face(fontSize, styles.FontWeight)
	if err != nil {
		return Layout{}, err
	}

	var lines []string
	for _, explicit := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(explicit, face, maxLineWidth)...)
	}

	widths := make([]float64, len(lines))
	widest := 0.0
	for i, line := range lines {
		widths[i] = measureString(face, line)
		if widths[i] > widest {
			widest = widths[i]
		}
	}

	boxW := widest + 2*padding
	boxH := float64(len(lines))*lineHeight + 2*padding
	centerX := styles.Position.X / 100 * width
	centerY := styles.Position.Y / 100 * height

	return Layout{
		Lines:      lines,
		LineWidths: widths,
		FontSize:   fontSize,
		LineHeight: lineHeight,
		Padding:    padding,
		Box: Bounds{
			X:      centerX - boxW/2,
			Y:      centerY - boxH/2,
			Width:  boxW,
			Height: boxH,
		},
	}, nil
}

// wrapLine greedily packs words until the next word would overflow
// maxWidth. A line always keeps at least one word, even when that word
// alone exceeds the limit; words are never broken mid-word.
func wrapLine(text string, face font.Face, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measureString(face, candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return lines
}

func measureString(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// lineX returns the X anchor of a wrapped line inside the box interior
// for the configured alignment. Drawing uses the same anchor as
// measurement so alignment stays consistent.
func lineX(l Layout, align style.Align, i int) float64 {
	interiorLeft := l.Box.X + l.Padding
	interiorWidth := l.Box.Width - 2*l.Padding
	switch align {
	case style.AlignLeft:
		return interiorLeft
	case style.AlignRight:
		return interiorLeft + interiorWidth - l.LineWidths[i]
	default:
		return interiorLeft + (interiorWidth-l.LineWidths[i])/2
	}
}
