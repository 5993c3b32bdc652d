// Package tui is the interactive timeline editor: a bubbletea program
// whose mouse and key events feed the timeline interaction engine, and
// whose view renders the caption clips, ruler, and playhead.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"capline/internal/caption"
	"capline/internal/editor"
	"capline/internal/logging"
	"capline/internal/media"
	"capline/internal/render"
	"capline/internal/style"
	"capline/internal/timeline"
)

// pxPerCell maps one terminal column to this many timeline pixels, so
// the geometry mapper keeps working in its own pixel space.
const pxPerCell = 10.0

// waveformBuckets sizes the ruler's amplitude backdrop.
const waveformBuckets = 600

type playTickMsg time.Time

type appModel struct {
	logger *logging.Logger

	engine  *timeline.Engine
	history *editor.History

	info     *media.Info
	waveform []float64

	outPath string

	width  int
	height int

	playing bool

	editing   bool
	textInput textinput.Model

	status      string
	statusIsErr bool

	keys keyMap
}

// Options configures the editor session.
type Options struct {
	VideoPath    string
	CaptionsPath string
	OutPath      string
	Logger       *logging.Logger
}

// Run probes the video, loads collaborator captions, and starts the
// interactive editor.
func Run(ctx context.Context, opts Options) error {
	info, err := media.Probe(ctx, opts.VideoPath)
	if err != nil {
		return fmt.Errorf("failed to probe video: %w", err)
	}

	var captions []caption.Caption
	if opts.CaptionsPath != "" {
		captions, err = caption.Open(opts.CaptionsPath)
		if err != nil {
			return fmt.Errorf("failed to load captions: %w", err)
		}
	}

	wave, err := media.Waveform(ctx, opts.VideoPath, waveformBuckets)
	if err != nil {
		// the ruler degrades to silence; not fatal
		opts.Logger.Debugw("waveform extraction failed", "error", err)
		wave = make([]float64, waveformBuckets)
	}

	history := editor.NewHistory(editor.NewState(captions, style.Default()))
	engine := timeline.NewEngine(history, info.Seconds())

	ti := textinput.New()
	ti.Placeholder = "caption text"
	ti.CharLimit = 0

	m := appModel{
		logger:    opts.Logger,
		engine:    engine,
		history:   history,
		info:      info,
		waveform:  wave,
		outPath:   opts.OutPath,
		textInput: ti,
		keys:      defaultKeyMap(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func playTick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

// state returns the snapshot being rendered.
func (m *appModel) state() editor.State {
	return m.history.Current()
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}

// report surfaces engine errors as inline notices instead of
// propagating them; a constraint-refused edit never ends the session.
func (m *appModel) report(err error) {
	if err == nil {
		return
	}
	m.logger.Debugw("edit refused", "error", err)
	m.setStatus(err.Error(), true)
}

// previewBounds recomputes the caption box for the playhead caption,
// the same measurement export uses.
func (m *appModel) previewBounds() (caption.Caption, render.Bounds, bool) {
	st := m.state()
	idx := caption.FindAt(st.Captions, m.engine.Ctx.Playhead)
	if idx < 0 {
		return caption.Caption{}, render.Bounds{}, false
	}
	c := st.Captions[idx]
	l, err := render.Measure(c.Text, st.Styles, float64(m.info.Width), float64(m.info.Height))
	if err != nil {
		return c, render.Bounds{}, true
	}
	return c, l.Box, true
}
