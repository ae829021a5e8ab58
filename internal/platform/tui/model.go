package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/session"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model driving one pong session.
type Model struct {
	session *session.Session
	screen  *core.Screen
	surface *cellSurface
	input   *termInput // Pointer so queued events survive value copies
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	logger  *log.Logger
}

// NewModel creates a model that renders s onto a terminal of cfg's size.
func NewModel(s *session.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	settings := s.Settings()
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: s,
		screen:  screen,
		surface: newCellSurface(screen, settings.Width, settings.Height, screen.Width(), screen.Height()),
		input:   newTermInput(),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues quits and refreshes held directions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.input.push(core.QuitEvent())
	case core.ActionUp, core.ActionDown:
		m.input.held.Press(action, m.input.tick)
	}
	return m, nil
}

// handleMouse converts left-button releases on the playfield to pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	// X10 mouse reporting does not say which button was released.
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil
	}

	x, y := m.surface.toPlayfield(msg.X, msg.Y)
	m.input.push(core.PointerRelease(x, y))
	return m, nil
}

// handleResize rescales the playfield to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	rows := max(msg.Height-footerRows, 1)
	m.screen.Resize(msg.Width, rows)
	m.surface.resize(msg.Width, rows)
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.input.tick++
	m.session.Tick(m.input)

	if m.session.Terminated() {
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the session followed by the key help line.
func (m Model) View() string {
	if m.session.Terminated() {
		return ""
	}

	m.session.Render(m.surface)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the session driven by this model.
func (m Model) Session() *session.Session {
	return m.session
}
