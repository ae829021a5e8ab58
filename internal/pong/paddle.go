package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle dimensions in playfield units.
const (
	PaddleWidth  = 15
	PaddleHeight = 80
)

// Direction is the vertical intent derived from held input.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// DirectionFrom derives a paddle direction from held actions.
// Up wins when both are held.
func DirectionFrom(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	default:
		return DirNone
	}
}

// Paddle is a 15x80 rectangle that only moves vertically.
type Paddle struct {
	Rect core.RectF
}

// NewPaddle creates a paddle with its top-left corner at (x, y).
func NewPaddle(x, y float64) *Paddle {
	return &Paddle{Rect: core.NewRectF(x, y, PaddleWidth, PaddleHeight)}
}

// Move shifts the paddle by speed in the given direction.
// It does not know about the playfield; call ClampToBounds afterwards.
func (p *Paddle) Move(dir Direction, speed float64) {
	switch dir {
	case DirUp:
		p.Rect = p.Rect.Translate(0, -speed)
	case DirDown:
		p.Rect = p.Rect.Translate(0, speed)
	}
}

// AIReact follows the ball's current vertical span without predicting it.
func (p *Paddle) AIReact(ball core.RectF, speed float64) {
	if ball.Bottom() > p.Rect.Bottom() {
		p.Move(DirDown, speed)
	} else if ball.Top() < p.Rect.Top() {
		p.Move(DirUp, speed)
	}
}

// ClampToBounds snaps the paddle back inside [0, screenHeight].
func (p *Paddle) ClampToBounds(screenHeight float64) {
	if p.Rect.Top() < 0 {
		p.Rect.SetTop(0)
	} else if p.Rect.Bottom() > screenHeight {
		p.Rect.SetBottom(screenHeight)
	}
}
