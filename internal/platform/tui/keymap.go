package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Abandon    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "start"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "give up"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key press to an action for the given phase.
// While idle, letters belong to the name field and only Start keys act.
func (k KeyMap) MapKey(msg tea.KeyMsg, running bool) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}

	if running {
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionFlap
		case key.Matches(msg, k.Abandon):
			return core.ActionAbandon
		}
		return core.ActionNone
	}

	if key.Matches(msg, k.Start) {
		return core.ActionStart
	}
	return core.ActionNone
}

// runningKeys is the help view while a round is in progress.
type runningKeys KeyMap

func (k runningKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Abandon, k.Screenshot, k.Quit}
}

func (k runningKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// idleKeys is the help view while entering a name.
type idleKeys KeyMap

func (k idleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

func (k idleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
