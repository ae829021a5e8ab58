package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// BallSize is the side of the square ball in playfield units.
const BallSize = 15

// Axis selects which direction component a bounce reflects.
type Axis int

const (
	AxisNone Axis = iota
	// AxisHorizontal flips DX (paddle hit).
	AxisHorizontal
	// AxisVertical flips DY (top or bottom wall).
	AxisVertical
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Side identifies the playfield edge the ball left through.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Ball moves diagonally one speed step per tick.
// DX and DY are always -1 or +1; the speed magnitude lives in Game.
type Ball struct {
	Rect   core.RectF
	DX, DY int
}

// NewBall creates a ball at (x, y) heading down and to the right.
func NewBall(x, y float64) *Ball {
	return &Ball{
		Rect: core.NewRectF(x, y, BallSize, BallSize),
		DX:   1,
		DY:   1,
	}
}

// Advance moves the ball by its direction scaled by speed.
func (b *Ball) Advance(speed float64) {
	b.Rect = b.Rect.Translate(float64(b.DX)*speed, float64(b.DY)*speed)
}

// Exited reports which side of a playfield of the given width the ball has left.
func (b *Ball) Exited(width float64) Side {
	if b.Rect.Left() < 0 {
		return SideLeft
	}
	if b.Rect.Right() > width {
		return SideRight
	}
	return SideNone
}

// Bounce reverses the direction component for the given axis.
func (b *Ball) Bounce(axis Axis) {
	switch axis {
	case AxisHorizontal:
		b.DX = -b.DX
	case AxisVertical:
		b.DY = -b.DY
	}
}
