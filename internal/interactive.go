package internal

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// frameInterval is the redraw cadence when no input arrives.
const frameInterval = time.Second / 60

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// InteractiveTodoList is the bubbletea model for the two-pane view.
type InteractiveTodoList struct {
	session *Session
	opts    RenderOptions
	logger  *log.Logger
	width   int
	height  int
	quit    QuitKind
}

func NewInteractiveTodoList(doc *Document, cfg *Config, logger *log.Logger) InteractiveTodoList {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := NewSession(NewLists(doc.Todos, doc.Dones))
	session.ShowNumber = cfg.Display.ShowNumbers

	return InteractiveTodoList{
		session: session,
		opts:    cfg.RenderOptions(),
		logger:  logger,
		width:   80,
		height:  24,
		quit:    QuitNone,
	}
}

func (m InteractiveTodoList) Init() tea.Cmd {
	return frameTick()
}

func (m InteractiveTodoList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		cmd = frameTick()

	case tea.KeyMsg:
		before := m.session.Mode.Kind
		quit := m.session.HandleKey(msg)
		if after := m.session.Mode; after.Kind != before {
			m.logger.Debug("mode changed", "mode", after.Name())
		}
		if quit != QuitNone {
			m.quit = quit
			m.logger.Info("quit requested", "kind", quit)
			return m, tea.Quit
		}
	}

	// Clamp pass for the frame about to be drawn.
	m.session.Lists.Clamp()
	return m, cmd
}

func (m InteractiveTodoList) View() string {
	if m.quit != QuitNone {
		return ""
	}
	frame := Render(m.session, m.width, m.height, m.opts)
	return frame.String()
}

// Quit reports how the session ended.
func (m InteractiveTodoList) Quit() QuitKind {
	return m.quit
}

// Document returns the current lists as a document.
func (m InteractiveTodoList) Document() *Document {
	l := m.session.Lists
	return &Document{
		Todos: append([]string{}, l.Todos()...),
		Dones: append([]string{}, l.Dones()...),
	}
}

// ShowInteractiveTodoList runs the program on the alternate screen. The
// program owns the terminal: raw mode is restored when Run returns, on
// errors and recovered panics too.
func ShowInteractiveTodoList(doc *Document, cfg *Config, logger *log.Logger) (*Document, QuitKind, error) {
	model := NewInteractiveTodoList(doc, cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	result, err := p.Run()
	if err != nil {
		return nil, QuitNone, err
	}

	finalModel := result.(InteractiveTodoList)
	out := finalModel.Document()
	out.Existed = doc.Existed
	return out, finalModel.Quit(), nil
}
