package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/session"
)

// BackendName is the registry name of the terminal backend.
const BackendName = "tui"

func init() {
	registry.Register(BackendName, func() registry.Backend {
		return &Backend{}
	})
}

// Backend runs a session in the current terminal.
type Backend struct{}

func (b *Backend) Name() string { return BackendName }

func (b *Backend) Description() string {
	return "Terminal UI (Bubble Tea, mouse clicks on the menu)"
}

// Run blocks until the session terminates or ctx is cancelled.
func (b *Backend) Run(ctx context.Context, s *session.Session, opts registry.Options) error {
	cfg := core.DefaultConfig()
	if opts.TickRate > 0 {
		cfg.TickRate = opts.TickRate
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	model := NewModel(s, cfg, opts.Logger)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	s.Quit()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
