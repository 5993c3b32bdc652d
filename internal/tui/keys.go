package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	PlayPause key.Binding
	Undo      key.Binding
	Redo      key.Binding

	NudgeLeft     key.Binding
	NudgeRight    key.Binding
	NudgeLeftBig  key.Binding
	NudgeRightBig key.Binding

	StepBack    key.Binding
	StepForward key.Binding

	Delete key.Binding
	Split  key.Binding
	Merge  key.Binding
	Add    key.Binding
	Edit   key.Binding

	CycleEffect key.Binding
	CycleAlign  key.Binding

	ZoomIn  key.Binding
	ZoomOut key.Binding

	SaveSRT key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),

		NudgeLeft:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "nudge -1 frame")),
		NudgeRight:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "nudge +1 frame")),
		NudgeLeftBig:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "nudge -10")),
		NudgeRightBig: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "nudge +10")),

		StepBack:    key.NewBinding(key.WithKeys(","), key.WithHelp(",", "playhead back")),
		StepForward: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "playhead forward")),

		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete caption")),
		Split:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split at playhead")),
		Merge:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "merge with next")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add caption")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit text")),

		CycleEffect: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle effect")),
		CycleAlign:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cycle align")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),

		SaveSRT: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write srt")),
	}
}
