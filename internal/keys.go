package internal

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the normal mode dispatch table.
type KeyMap struct {
	Enter       key.Binding
	ToggleTab   key.Binding
	LeftTab     key.Binding
	RightTab    key.Binding
	Help        key.Binding
	ShowNumber  key.Binding
	InsertAbove key.Binding
	InsertBelow key.Binding
	Edit        key.Binding
	CursorDown  key.Binding
	CursorUp    key.Binding
	ItemDown    key.Binding
	ItemUp      key.Binding
	Begin       key.Binding
	End         key.Binding
	Delete      key.Binding
	SaveQuit    key.Binding
	NoSaveQuit  key.Binding
}

// DefaultKeyMap holds the vim-style bindings. shift+left and shift+right are
// deliberately left unbound.
var DefaultKeyMap = KeyMap{
	Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Move item to the other list")),
	ToggleTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Toggle tab")),
	LeftTab:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("<- / h", "Select todo tab")),
	RightTab:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("-> / l", "Select done tab")),
	Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "Show this screen")),
	ShowNumber:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Toggle item numbers")),
	InsertAbove: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Insert item above")),
	InsertBelow: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "Insert item below")),
	Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit item under cursor")),
	CursorDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j / ↓", "Move cursor down")),
	CursorUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k / ↑", "Move cursor up")),
	ItemDown:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "Move item under cursor down")),
	ItemUp:      key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "Move item under cursor up")),
	Begin:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Jump to beginning")),
	End:         key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "Jump to end")),
	Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Delete item under cursor")),
	SaveQuit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Save and quit")),
	NoSaveQuit:  key.NewBinding(key.WithKeys("Q", "ctrl+c"), key.WithHelp("Q", "Quit without saving")),
}

// HelpEntry is one key/description line of the help screen.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpSection groups help entries under a title.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

func entry(b key.Binding) HelpEntry {
	h := b.Help()
	return HelpEntry{Key: h.Key, Desc: h.Desc}
}

// HelpSections describes the bindings for the help screen. Insert mode keys
// are decoded by type rather than bound, so they are listed literally.
func (k KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "ACTIONS",
			Entries: []HelpEntry{
				entry(k.Help),
				entry(k.InsertAbove),
				entry(k.InsertBelow),
				entry(k.Edit),
				entry(k.Enter),
				entry(k.Delete),
				entry(k.ItemDown),
				entry(k.ItemUp),
				entry(k.ShowNumber),
				entry(k.SaveQuit),
				entry(k.NoSaveQuit),
			},
		},
		{
			Title: "MOVEMENT",
			Entries: []HelpEntry{
				entry(k.CursorDown),
				entry(k.CursorUp),
				entry(k.Begin),
				entry(k.End),
				entry(k.ToggleTab),
				entry(k.LeftTab),
				entry(k.RightTab),
			},
		},
		{
			Title: "INSERT / EDIT MODE",
			Entries: []HelpEntry{
				{Key: "(type normally)", Desc: "Edit text"},
				{Key: "Backspace", Desc: "Delete last character"},
				{Key: "Enter", Desc: "Save changes"},
				{Key: "Esc", Desc: "Cancel"},
			},
		},
		{
			Title: "LEAVING HELP",
			Entries: []HelpEntry{
				{Key: "q / Q", Desc: "Quit help screen"},
			},
		},
	}
}
