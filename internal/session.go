package internal

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Session is the editing state: both lists, the current mode and the
// numbering flag. It knows nothing about the terminal.
type Session struct {
	Lists      *Lists
	Mode       Mode
	ShowNumber bool
}

func NewSession(lists *Lists) *Session {
	return &Session{Lists: lists}
}

// HandleKey decodes msg with the decoder of the current mode and applies it.
// Unrecognized keys are ignored.
func (s *Session) HandleKey(msg tea.KeyMsg) QuitKind {
	switch s.Mode.Kind {
	case ModeInsertNew, ModeInsertEdit:
		if a, ok := DecodeInsert(msg); ok {
			s.ApplyInsert(a)
		}
	case ModeHelp:
		if a, ok := DecodeNormal(msg); ok {
			s.ApplyHelp(a)
		}
	default:
		if a, ok := DecodeNormal(msg); ok {
			return s.Apply(a)
		}
	}
	return QuitNone
}

// Apply runs a normal mode action.
func (s *Session) Apply(a Action) QuitKind {
	l := s.Lists
	switch a.Kind {
	case ActionEnter:
		l.Transfer()
	case ActionSwitchTab:
		switch a.Switch {
		case SwitchLeft:
			l.Active = TabTodos
		case SwitchRight:
			l.Active = TabDones
		default:
			l.Active = l.Active.Toggle()
		}
	case ActionShowHelp:
		s.Mode = Mode{Kind: ModeHelp}
	case ActionToggleShowNumber:
		s.ShowNumber = !s.ShowNumber
	case ActionInsert:
		l.Insert(a.Dir)
		s.Mode = Mode{Kind: ModeInsertNew}
	case ActionEdit:
		if current, ok := l.Current(); ok {
			s.Mode = Mode{Kind: ModeInsertEdit, Snapshot: current}
		}
	case ActionMoveCursor:
		l.MoveCursor(a.Dir)
	case ActionMoveItem:
		l.MoveItem(a.Dir)
	case ActionGotoBegin:
		l.GotoBegin()
	case ActionGotoEnd:
		l.GotoEnd()
	case ActionDelete:
		l.Delete()
	case ActionSaveQuit:
		return QuitSave
	case ActionNoSaveQuit:
		return QuitNoSave
	}
	return QuitNone
}

// ApplyHelp handles keys on the help screen. Both quit keys only leave the
// help screen; everything else is ignored.
func (s *Session) ApplyHelp(a Action) {
	switch a.Kind {
	case ActionSaveQuit, ActionNoSaveQuit:
		s.Mode = Mode{Kind: ModeNormal}
	}
}

// ApplyInsert edits the item under the cursor in place. Cancel rolls back:
// a new item is removed, an edited item gets its snapshot back.
func (s *Session) ApplyInsert(a InsertAction) {
	l := s.Lists
	switch a.Kind {
	case InsertChar:
		if current, ok := l.Current(); ok {
			l.SetCurrent(current + a.Text)
		}
	case InsertDeleteChar:
		if current, ok := l.Current(); ok && current != "" {
			_, size := utf8.DecodeLastRuneInString(current)
			l.SetCurrent(current[:len(current)-size])
		}
	case InsertCommit:
		s.Mode = Mode{Kind: ModeNormal}
	case InsertCancel:
		switch s.Mode.Kind {
		case ModeInsertNew:
			l.Delete()
		case ModeInsertEdit:
			l.SetCurrent(s.Mode.Snapshot)
		}
		s.Mode = Mode{Kind: ModeNormal}
	}
}
