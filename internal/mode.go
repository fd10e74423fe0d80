package internal

// ModeKind is the tag of Mode.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeInsertNew
	ModeInsertEdit
	ModeHelp
)

// Mode is the global input mode. Snapshot is only meaningful for
// ModeInsertEdit and holds the item text from before the edit.
type Mode struct {
	Kind     ModeKind
	Snapshot string
}

func (m Mode) IsInsert() bool {
	return m.Kind == ModeInsertNew || m.Kind == ModeInsertEdit
}

// Name is the label shown in the status line.
func (m Mode) Name() string {
	switch m.Kind {
	case ModeInsertNew:
		return "INSERT"
	case ModeInsertEdit:
		return "EDIT"
	case ModeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// QuitKind reports whether and how the session asked to end.
type QuitKind int

const (
	QuitNone QuitKind = iota
	QuitSave
	QuitNoSave
)

func (q QuitKind) String() string {
	switch q {
	case QuitSave:
		return "save"
	case QuitNoSave:
		return "no-save"
	default:
		return "none"
	}
}
