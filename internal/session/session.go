// Package session drives the menu -> playing state machine shared by every
// rendering backend. A backend calls Tick once per frame and Render right
// after it; the session never blocks and never touches the backend directly.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Session owns the menu and, once a difficulty is picked, the game.
type Session struct {
	settings pong.Settings
	logger   *log.Logger
	state    State
	menu     *pong.Menu
	game     *pong.Game
}

// New creates a session sitting on the difficulty menu.
// A nil logger discards output.
func New(settings pong.Settings, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		settings: settings,
		logger:   logger,
		state:    StateMenu,
		menu:     pong.NewMenu(settings.Width, settings.Height),
	}
}

// Start leaves the menu and begins a game at difficulty d.
// It has no effect unless the session is on the menu.
func (s *Session) Start(d pong.Difficulty) {
	if s.state != StateMenu {
		return
	}
	s.game = pong.NewGame(s.settings, d)
	s.state = StatePlaying
	s.logger.Info("game started", "difficulty", d, "ai_speed", s.game.AISpeed())
}

// Quit terminates the session. Calling it again is a no-op.
func (s *Session) Quit() {
	if s.state == StateTerminated {
		return
	}
	if s.game != nil {
		score := s.game.Score()
		s.logger.Info("session ended", "player1", score.Player1, "player2", score.Player2, "ticks", s.game.Ticks())
	} else {
		s.logger.Info("session ended from menu")
	}
	s.state = StateTerminated
}

// Tick runs one frame: drain events, then advance the current state.
// A quit event abandons the rest of the tick.
func (s *Session) Tick(in core.Input) {
	if s.state == StateTerminated {
		return
	}
	wasPlaying := s.state == StatePlaying

	for _, ev := range in.PollEvents() {
		switch ev.Kind {
		case core.EventQuit:
			s.Quit()
			return
		case core.EventPointerRelease:
			if s.state != StateMenu {
				continue
			}
			if d, ok := s.menu.Hit(ev.X, ev.Y); ok {
				s.Start(d)
			} else {
				s.logger.Debug("click outside menu buttons", "x", ev.X, "y", ev.Y)
			}
		}
	}

	// The tick that leaves the menu does not also simulate.
	if !wasPlaying {
		return
	}

	result := s.game.Step(in.Held())
	if result.Scored != pong.SideNone {
		s.logger.Debug("point scored",
			"side", result.Scored,
			"player1", result.Score.Player1,
			"player2", result.Score.Player2,
		)
	}
}

// Render draws the menu or the game, whichever is active.
func (s *Session) Render(dst core.Surface) {
	switch s.state {
	case StateMenu:
		s.menu.Render(dst)
	case StatePlaying:
		s.game.Render(dst)
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Terminated reports whether the session has ended.
func (s *Session) Terminated() bool {
	return s.state == StateTerminated
}

// Game returns the running game, or nil while on the menu.
func (s *Session) Game() *pong.Game {
	return s.game
}

// Menu returns the difficulty menu.
func (s *Session) Menu() *pong.Menu {
	return s.menu
}

// Settings returns the settings games are created with.
func (s *Session) Settings() pong.Settings {
	return s.settings
}
