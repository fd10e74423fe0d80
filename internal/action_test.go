package internal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runeKey(r ...rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: r}
}

func TestDecodeNormal(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Action{Kind: ActionEnter}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Action{Kind: ActionSwitchTab, Switch: SwitchToggle}},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, Action{Kind: ActionSwitchTab, Switch: SwitchLeft}},
		{"h", runeKey('h'), Action{Kind: ActionSwitchTab, Switch: SwitchLeft}},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, Action{Kind: ActionSwitchTab, Switch: SwitchRight}},
		{"l", runeKey('l'), Action{Kind: ActionSwitchTab, Switch: SwitchRight}},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, Action{Kind: ActionShowHelp}},
		{"n", runeKey('n'), Action{Kind: ActionToggleShowNumber}},
		{"i", runeKey('i'), Action{Kind: ActionInsert, Dir: Up}},
		{"o", runeKey('o'), Action{Kind: ActionInsert, Dir: Down}},
		{"e", runeKey('e'), Action{Kind: ActionEdit}},
		{"j", runeKey('j'), Action{Kind: ActionMoveCursor, Dir: Down}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, Action{Kind: ActionMoveCursor, Dir: Down}},
		{"k", runeKey('k'), Action{Kind: ActionMoveCursor, Dir: Up}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, Action{Kind: ActionMoveCursor, Dir: Up}},
		{"J", runeKey('J'), Action{Kind: ActionMoveItem, Dir: Down}},
		{"shift+down", tea.KeyMsg{Type: tea.KeyShiftDown}, Action{Kind: ActionMoveItem, Dir: Down}},
		{"K", runeKey('K'), Action{Kind: ActionMoveItem, Dir: Up}},
		{"shift+up", tea.KeyMsg{Type: tea.KeyShiftUp}, Action{Kind: ActionMoveItem, Dir: Up}},
		{"g", runeKey('g'), Action{Kind: ActionGotoBegin}},
		{"G", runeKey('G'), Action{Kind: ActionGotoEnd}},
		{"d", runeKey('d'), Action{Kind: ActionDelete}},
		{"q", runeKey('q'), Action{Kind: ActionSaveQuit}},
		{"Q", runeKey('Q'), Action{Kind: ActionNoSaveQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Action{Kind: ActionNoSaveQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeNormal(tt.msg)
			require.True(t, ok, "key %q should be mapped", tt.msg.String())
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNormalIgnoresUnmappedKeys(t *testing.T) {
	unmapped := []tea.KeyMsg{
		{Type: tea.KeyShiftLeft},
		{Type: tea.KeyShiftRight},
		{Type: tea.KeyEsc},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyF2},
		runeKey('z'),
		runeKey('x'),
		{Type: tea.KeySpace, Runes: []rune{' '}},
	}

	for _, msg := range unmapped {
		_, ok := DecodeNormal(msg)
		require.False(t, ok, "key %q should not be mapped", msg.String())
	}
}

func TestDecodeInsert(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   InsertAction
		wantOK bool
	}{
		{"letter", runeKey('a'), InsertAction{Kind: InsertChar, Text: "a"}, true},
		{"normal mode keys are text", runeKey('q'), InsertAction{Kind: InsertChar, Text: "q"}, true},
		{"unicode", runeKey('日'), InsertAction{Kind: InsertChar, Text: "日"}, true},
		{"paste", runeKey('h', 'i', '!'), InsertAction{Kind: InsertChar, Text: "hi!"}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, InsertAction{Kind: InsertChar, Text: " "}, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, InsertAction{Kind: InsertDeleteChar}, true},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, InsertAction{Kind: InsertDeleteChar}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, InsertAction{Kind: InsertCommit}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, InsertAction{Kind: InsertCancel}, true},
		{"alt+a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, InsertAction{}, false},
		{"paste with newline", runeKey('a', '\n', 'b'), InsertAction{}, false},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, InsertAction{}, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, InsertAction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeInsert(tt.msg)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHelpSectionsCoverBindings(t *testing.T) {
	sections := DefaultKeyMap.HelpSections()
	require.Len(t, sections, 4)

	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
		for _, e := range s.Entries {
			require.NotEmpty(t, e.Key, "section %s has an entry without key", s.Title)
			require.NotEmpty(t, e.Desc, "section %s has an entry without description", s.Title)
		}
	}
	require.Equal(t, []string{"ACTIONS", "MOVEMENT", "INSERT / EDIT MODE", "LEAVING HELP"}, titles)
}
