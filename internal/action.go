package internal

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind enumerates the normal mode actions.
type ActionKind int

const (
	ActionEnter ActionKind = iota
	ActionSwitchTab
	ActionShowHelp
	ActionToggleShowNumber
	ActionInsert
	ActionEdit
	ActionMoveCursor
	ActionMoveItem
	ActionGotoBegin
	ActionGotoEnd
	ActionDelete
	ActionSaveQuit
	ActionNoSaveQuit
)

// TabSwitch says how SwitchTab picks the next tab.
type TabSwitch int

const (
	SwitchToggle TabSwitch = iota
	SwitchLeft
	SwitchRight
)

// Action is a decoded normal mode key. Dir is set for Insert, MoveCursor and
// MoveItem; Switch is set for SwitchTab.
type Action struct {
	Kind   ActionKind
	Dir    Direction
	Switch TabSwitch
}

// InsertKind enumerates the insert mode actions.
type InsertKind int

const (
	InsertChar InsertKind = iota
	InsertDeleteChar
	InsertCommit
	InsertCancel
)

// InsertAction is a decoded insert mode key. Text holds the typed runes for
// InsertChar; a paste may deliver several at once.
type InsertAction struct {
	Kind InsertKind
	Text string
}

// DecodeNormal maps a key to a normal mode action. Unmapped keys return false.
func DecodeNormal(msg tea.KeyMsg) (Action, bool) {
	return DefaultKeyMap.decodeNormal(msg)
}

func (k KeyMap) decodeNormal(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.Enter):
		return Action{Kind: ActionEnter}, true
	case key.Matches(msg, k.ToggleTab):
		return Action{Kind: ActionSwitchTab, Switch: SwitchToggle}, true
	case key.Matches(msg, k.LeftTab):
		return Action{Kind: ActionSwitchTab, Switch: SwitchLeft}, true
	case key.Matches(msg, k.RightTab):
		return Action{Kind: ActionSwitchTab, Switch: SwitchRight}, true
	case key.Matches(msg, k.Help):
		return Action{Kind: ActionShowHelp}, true
	case key.Matches(msg, k.ShowNumber):
		return Action{Kind: ActionToggleShowNumber}, true
	case key.Matches(msg, k.InsertAbove):
		return Action{Kind: ActionInsert, Dir: Up}, true
	case key.Matches(msg, k.InsertBelow):
		return Action{Kind: ActionInsert, Dir: Down}, true
	case key.Matches(msg, k.Edit):
		return Action{Kind: ActionEdit}, true
	case key.Matches(msg, k.CursorDown):
		return Action{Kind: ActionMoveCursor, Dir: Down}, true
	case key.Matches(msg, k.CursorUp):
		return Action{Kind: ActionMoveCursor, Dir: Up}, true
	case key.Matches(msg, k.ItemDown):
		return Action{Kind: ActionMoveItem, Dir: Down}, true
	case key.Matches(msg, k.ItemUp):
		return Action{Kind: ActionMoveItem, Dir: Up}, true
	case key.Matches(msg, k.Begin):
		return Action{Kind: ActionGotoBegin}, true
	case key.Matches(msg, k.End):
		return Action{Kind: ActionGotoEnd}, true
	case key.Matches(msg, k.Delete):
		return Action{Kind: ActionDelete}, true
	case key.Matches(msg, k.SaveQuit):
		return Action{Kind: ActionSaveQuit}, true
	case key.Matches(msg, k.NoSaveQuit):
		return Action{Kind: ActionNoSaveQuit}, true
	}
	return Action{}, false
}

// DecodeInsert maps a key to an insert mode action. Unmapped keys return false.
func DecodeInsert(msg tea.KeyMsg) (InsertAction, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return InsertAction{Kind: InsertCommit}, true
	case tea.KeyEsc:
		return InsertAction{Kind: InsertCancel}, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return InsertAction{Kind: InsertDeleteChar}, true
	case tea.KeySpace:
		return InsertAction{Kind: InsertChar, Text: " "}, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return InsertAction{}, false
		}
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				return InsertAction{}, false
			}
		}
		return InsertAction{Kind: InsertChar, Text: string(msg.Runes)}, true
	}
	return InsertAction{}, false
}
