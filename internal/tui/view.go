package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"capline/internal/geometry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Padding(0, 1)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	clipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39"))
	selClipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	playheadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	waveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

var waveGlyphs = []rune(" ▁▂▃▄▅▆▇█")

func (m appModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("capline") + "  " +
		dimStyle.Render(m.info.Path) + "\n")
	b.WriteString("\n")
	b.WriteString(m.previewPanel())
	b.WriteString("\n")
	b.WriteString(m.zoomLine() + "\n")
	b.WriteString(m.rulerLine() + "\n")

	rows := m.clipRows()
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString("  edit: " + m.textInput.View() + "\n")
	} else {
		b.WriteString(m.statusLine() + "\n")
	}
	b.WriteString(m.helpLine())

	return b.String()
}

// previewPanel mirrors what export will draw: current caption, its
// measured box in source-resolution pixels, and the active style.
func (m appModel) previewPanel() string {
	st := m.state()
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %dx%d  %.2ffps  %s\n",
		m.info.Width, m.info.Height, m.info.FrameRate, m.info.Duration))
	b.WriteString(fmt.Sprintf("  playhead %7.3fs / %.3fs   captions %d   history %d/%d\n",
		m.engine.Ctx.Playhead, m.engine.Ctx.Duration,
		len(st.Captions), m.history.Cursor()+1, m.history.Len()))

	if c, box, ok := m.previewBounds(); ok {
		text := strings.ReplaceAll(c.Text, "\n", " ⏎ ")
		b.WriteString(fmt.Sprintf("  caption [%.2f → %.2f]  %q\n", c.Start, c.End, text))
		b.WriteString(fmt.Sprintf("  box x=%.0f y=%.0f w=%.0f h=%.0f\n",
			box.X, box.Y, box.Width, box.Height))
	} else {
		b.WriteString(dimStyle.Render("  no caption at playhead") + "\n")
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  style: %s %s  font %.1f%%  pos %.0f,%.0f\n",
		st.Styles.Effect, st.Styles.Align, st.Styles.FontSize,
		st.Styles.Position.X, st.Styles.Position.Y))

	return b.String()
}

func (m appModel) zoomLine() string {
	return dimStyle.Render(fmt.Sprintf("  zoom %.2fx  scroll %.0fpx",
		m.engine.Ctx.Zoom, m.engine.Ctx.ScrollX))
}

// rulerLine draws the waveform backdrop with the playhead marker.
func (m appModel) rulerLine() string {
	ctx := m.engine.Ctx
	playCell := m.timeToCell(ctx.Playhead)

	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if x == playCell {
			b.WriteString(playheadStyle.Render("▼"))
			continue
		}
		t := geometry.PixelToTime(ctx.ScrollX+float64(x)*pxPerCell, ctx.Zoom)
		if t > ctx.Duration {
			b.WriteString(" ")
			continue
		}
		bucket := int(t / ctx.Duration * float64(len(m.waveform)))
		if bucket >= len(m.waveform) {
			bucket = len(m.waveform) - 1
		}
		g := int(m.waveform[bucket] * float64(len(waveGlyphs)-1))
		b.WriteString(waveStyle.Render(string(waveGlyphs[g])))
	}
	return b.String()
}

// clipRows renders the caption strip: three rows of clip bands, text
// in the middle row, playhead overlaid.
func (m appModel) clipRows() []string {
	ctx := m.engine.Ctx
	st := m.state()
	playCell := m.timeToCell(ctx.Playhead)

	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for x := 0; x < m.width; x++ {
			t := geometry.PixelToTime(ctx.ScrollX+float64(x)*pxPerCell, ctx.Zoom)

			idx := -1
			for i, c := range st.Captions {
				if t >= c.Start && t < c.End {
					idx = i
					break
				}
			}

			ch := " "
			if x == playCell {
				ch = "│"
			}

			if idx < 0 {
				if x == playCell {
					b.WriteString(playheadStyle.Render(ch))
				} else if t <= ctx.Duration {
					b.WriteString(dimStyle.Render("·"))
				} else {
					b.WriteString(" ")
				}
				continue
			}

			if r == 1 {
				ch = m.clipCellText(st.Captions[idx].Text, st.Captions[idx].Start, x)
			} else if ch == " " {
				ch = "▔"
				if r == 2 {
					ch = "▁"
				}
			}

			s := clipStyle
			if idx == ctx.Selected {
				s = selClipStyle
			}
			b.WriteString(s.Render(ch))
		}
		rows[r] = b.String()
	}
	return rows
}

// clipCellText picks the character of the caption's first line that
// lands in cell x, so short clips show a readable prefix.
func (m appModel) clipCellText(text string, start float64, x int) string {
	firstLine := strings.SplitN(text, "\n", 2)[0]
	startCell := m.timeToCell(start)
	i := x - startCell - 1
	runes := []rune(firstLine)
	if i >= 0 && i < len(runes) {
		return string(runes[i])
	}
	return " "
}

func (m appModel) timeToCell(t float64) int {
	px := geometry.TimeToPixel(t, m.engine.Ctx.Zoom) - m.engine.Ctx.ScrollX
	return int(px / pxPerCell)
}

func (m appModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusIsErr {
		return "  " + errStyle.Render(m.status)
	}
	return "  " + okStyle.Render(m.status)
}

func (m appModel) helpLine() string {
	return dimStyle.Render(
		"  space play  ←/→ nudge  u undo  ctrl+r redo  d del  s split  m merge  a add  e edit  f effect  +/- zoom  w srt  q quit",
	)
}
