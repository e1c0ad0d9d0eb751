package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termsnake/termsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapping(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Map(tc.msg); got != tc.want {
				t.Errorf("Map(%s) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
