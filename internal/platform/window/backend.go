package window

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/session"
)

// BackendName is the registry name of the window backend.
const BackendName = "window"

func init() {
	registry.Register(BackendName, func() registry.Backend {
		return &Backend{}
	})
}

// Backend runs a session in a desktop window.
type Backend struct{}

func (b *Backend) Name() string { return BackendName }

func (b *Backend) Description() string {
	return "Desktop window (Ebitengine, 800x600 by default)"
}

// Run opens the window and blocks until the session terminates, the window
// is closed or ctx is cancelled.
func (b *Backend) Run(ctx context.Context, s *session.Session, opts registry.Options) error {
	settings := s.Settings()
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(int(settings.Width), int(settings.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowClosingHandled(true)

	g := &game{ctx: ctx, session: s, input: &windowInput{}, logger: opts.Logger}
	err := ebiten.RunGame(g)
	s.Quit()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game adapts a session to ebiten.Game.
type game struct {
	ctx     context.Context
	session *session.Session
	input   *windowInput
	logger  *log.Logger
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		if g.logger != nil {
			g.logger.Debug("window closed by context", "error", g.ctx.Err())
		}
		return ebiten.Termination
	}

	g.input.collect()
	g.session.Tick(g.input)
	if g.session.Terminated() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	settings := g.session.Settings()
	g.session.Render(newImageSurface(screen, settings.Width, settings.Height))
}

func (g *game) Layout(_, _ int) (int, int) {
	settings := g.session.Settings()
	return int(settings.Width), int(settings.Height)
}
