package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-phoenix/internal/core"
)

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		running bool
		want    core.Action
	}{
		{"space flaps while running", keySpace, true, core.ActionFlap},
		{"up flaps while running", keyUp, true, core.ActionFlap},
		{"w flaps while running", runes("w"), true, core.ActionFlap},
		{"esc abandons while running", keyEsc, true, core.ActionAbandon},
		{"enter does nothing while running", keyEnter, true, core.ActionNone},
		{"space starts while idle", keySpace, false, core.ActionStart},
		{"enter starts while idle", keyEnter, false, core.ActionStart},
		{"w types while idle", runes("w"), false, core.ActionNone},
		{"esc does nothing while idle", keyEsc, false, core.ActionNone},
		{"ctrl+c quits while running", keyCtrlC, true, core.ActionQuit},
		{"ctrl+c quits while idle", keyCtrlC, false, core.ActionQuit},
		{"ctrl+s screenshots", keyCtrlS, true, core.ActionScreenshot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg, tt.running); got != tt.want {
				t.Errorf("MapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
