package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"capline/internal/caption"
	"capline/internal/geometry"
	"capline/internal/style"
	"capline/internal/timeline"
)

// fixed view rows so mouse events can be routed without re-measuring
// the layout
const (
	rulerRow   = 9
	clipRowTop = 10
	clipRowBot = 12
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.Ctx.ViewportWidth = float64(msg.Width) * pxPerCell
		m.textInput.Width = msg.Width - 4
		return m, nil

	case playTickMsg:
		if !m.playing {
			return m, nil
		}
		t := m.engine.Ctx.Playhead + 1.0/30.0
		if t >= m.engine.Ctx.Duration {
			t = m.engine.Ctx.Duration
			m.playing = false
		}
		m.engine.SetPlayhead(t)
		m.engine.FollowPlayhead()
		if m.playing {
			return m, playTick()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m appModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = false
		m.report(m.engine.SetCaptionText(m.engine.Ctx.Selected, m.textInput.Value()))
		return m, nil
	case "esc":
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	// any non-nudge key closes an open nudge burst into one history entry
	isNudge := key.Matches(msg, keys.NudgeLeft) || key.Matches(msg, keys.NudgeRight) ||
		key.Matches(msg, keys.NudgeLeftBig) || key.Matches(msg, keys.NudgeRightBig)
	if !isNudge {
		m.report(m.engine.FinalizeNudge())
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.PlayPause):
		m.playing = !m.playing
		if m.playing {
			m.engine.ScrubEnd()
			return m, playTick()
		}
		return m, nil

	case key.Matches(msg, keys.Undo):
		if m.history.Undo() {
			m.clampSelection()
			m.setStatus("undo", false)
		}
		return m, nil

	case key.Matches(msg, keys.Redo):
		if m.history.Redo() {
			m.clampSelection()
			m.setStatus("redo", false)
		}
		return m, nil

	case key.Matches(msg, keys.NudgeLeft):
		m.report(m.engine.Nudge(-1))
		return m, nil
	case key.Matches(msg, keys.NudgeRight):
		m.report(m.engine.Nudge(1))
		return m, nil
	case key.Matches(msg, keys.NudgeLeftBig):
		m.report(m.engine.Nudge(-10))
		return m, nil
	case key.Matches(msg, keys.NudgeRightBig):
		m.report(m.engine.Nudge(10))
		return m, nil

	case key.Matches(msg, keys.StepBack):
		m.engine.SetPlayhead(m.engine.Ctx.Playhead - timeline.FrameStep)
		m.engine.FollowPlayhead()
		return m, nil
	case key.Matches(msg, keys.StepForward):
		m.engine.SetPlayhead(m.engine.Ctx.Playhead + timeline.FrameStep)
		m.engine.FollowPlayhead()
		return m, nil

	case key.Matches(msg, keys.Delete):
		m.report(m.engine.DeleteSelected())
		return m, nil

	case key.Matches(msg, keys.Split):
		m.report(m.engine.SplitAtPlayhead())
		return m, nil

	case key.Matches(msg, keys.Merge):
		m.report(m.engine.MergeWithNext())
		return m, nil

	case key.Matches(msg, keys.Add):
		m.report(m.engine.AddCaptionAt(m.engine.Ctx.Playhead, 2.0, "New caption"))
		return m, nil

	case key.Matches(msg, keys.Edit):
		idx := m.engine.Ctx.Selected
		if idx < 0 || idx >= len(m.state().Captions) {
			m.setStatus("no caption selected", true)
			return m, nil
		}
		m.editing = true
		m.textInput.SetValue(m.state().Captions[idx].Text)
		m.textInput.Focus()
		return m, nil

	case key.Matches(msg, keys.CycleEffect):
		m.report(m.engine.UpdateStyles(func(o style.Options) style.Options {
			switch o.Effect {
			case style.EffectNone:
				o.Effect = style.EffectShadow
			case style.EffectShadow:
				o.Effect = style.EffectOutline
			default:
				o.Effect = style.EffectNone
			}
			return o
		}, false))
		return m, nil

	case key.Matches(msg, keys.CycleAlign):
		m.report(m.engine.UpdateStyles(func(o style.Options) style.Options {
			switch o.Align {
			case style.AlignLeft:
				o.Align = style.AlignCenter
			case style.AlignCenter:
				o.Align = style.AlignRight
			default:
				o.Align = style.AlignLeft
			}
			return o
		}, false))
		return m, nil

	case key.Matches(msg, keys.ZoomIn), key.Matches(msg, keys.ZoomOut):
		// keyboard zoom anchors on the playhead
		anchorX := geometry.TimeToPixel(m.engine.Ctx.Playhead, m.engine.Ctx.Zoom) -
			m.engine.Ctx.ScrollX
		if anchorX < 0 || anchorX > m.engine.Ctx.ViewportWidth {
			anchorX = m.engine.Ctx.ViewportWidth / 2
		}
		notches := 1
		if key.Matches(msg, keys.ZoomOut) {
			notches = -1
		}
		m.engine.WheelZoom(anchorX, notches)
		return m, nil

	case key.Matches(msg, keys.SaveSRT):
		m.writeSRT()
		return m, nil
	}

	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	viewportX := float64(msg.X) * pxPerCell
	absX := m.engine.Ctx.ScrollX + viewportX

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		notches := 1
		if msg.Button == tea.MouseButtonWheelDown {
			notches = -1
		}
		if msg.Alt || msg.Ctrl {
			m.engine.WheelZoom(viewportX, notches)
		} else {
			m.engine.Ctx.ScrollX -= float64(notches) * 3 * pxPerCell
			if m.engine.Ctx.ScrollX < 0 {
				m.engine.Ctx.ScrollX = 0
			}
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// a press ends any open nudge burst before starting a gesture
		m.report(m.engine.FinalizeNudge())
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case msg.Y == rulerRow:
			m.engine.ScrubTo(geometry.PixelToTime(absX, m.engine.Ctx.Zoom))
		case msg.Y >= clipRowTop && msg.Y <= clipRowBot:
			m.engine.PointerDown(absX)
		}
		return m, nil

	case tea.MouseActionMotion:
		switch {
		case m.engine.Ctx.Drag != nil:
			m.report(m.engine.PointerMove(absX))
		case m.engine.Ctx.Scrubbing:
			m.engine.ScrubTo(geometry.PixelToTime(absX, m.engine.Ctx.Zoom))
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.engine.Ctx.Drag != nil {
			m.report(m.engine.PointerUp(absX))
		}
		m.engine.ScrubEnd()
		return m, nil
	}

	return m, nil
}

func (m *appModel) clampSelection() {
	if m.engine.Ctx.Selected >= len(m.state().Captions) {
		m.engine.Ctx.Selected = -1
	}
}

func (m *appModel) writeSRT() {
	path := m.outPath
	if path == "" {
		path = "captions.srt"
	}
	if err := caption.WriteFile(m.state().Captions, path); err != nil {
		m.setStatus(fmt.Sprintf("srt write failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("wrote %s", path), false)
}
