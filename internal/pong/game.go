// Package pong implements a two-paddle Pong match against a CPU opponent.
// Player 1 controls the left paddle, the CPU controls the right paddle.
// The game never ends on its own: scores accumulate until the session quits.
package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Default game settings
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultPaddleSpeed = 2.0
	DefaultBallSpeed   = 2.0
	ScoreTextY         = 10
)

// Settings holds the playfield size and speed scalars for a game.
type Settings struct {
	Width       float64
	Height      float64
	PaddleSpeed float64

	BallSpeed float64

	// AISpeeds overrides the CPU speed per difficulty. Missing entries use
	// Difficulty.AISpeed.
	AISpeeds map[Difficulty]float64
}

// DefaultSettings returns the classic 800x600 setup.
func DefaultSettings() Settings {
	return Settings{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		PaddleSpeed: DefaultPaddleSpeed,
		BallSpeed:   DefaultBallSpeed,
	}
}

// AISpeed returns the CPU paddle speed for d.
func (s Settings) AISpeed(d Difficulty) float64 {
	if v, ok := s.AISpeeds[d]; ok {
		return v
	}
	return d.AISpeed()
}

// Score is the running score. It only ever increases.
type Score struct {
	Player1 int
	Player2 int
}

// String formats the score the way it is drawn on screen.
func (s Score) String() string {
	return fmt.Sprintf("Player 1: %d  Player 2: %d", s.Player1, s.Player2)
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Scored Side // Side the ball left through, SideNone if nobody scored
	Bounce Axis // Bounce applied this tick, AxisNone if none
	Score  Score
}

// Game owns both paddles, the ball and the score.
type Game struct {
	settings   Settings
	difficulty Difficulty
	aiSpeed    float64

	paddle1 *Paddle // Player 1 (left)
	paddle2 *Paddle // CPU (right)
	ball    *Ball
	score   Score
	ticks   uint64
}

// NewGame creates a game with entities at their canonical positions.
func NewGame(settings Settings, difficulty Difficulty) *Game {
	g := &Game{
		settings:   settings,
		difficulty: difficulty,
		aiSpeed:    settings.AISpeed(difficulty),
	}
	g.Reset()
	return g
}

// Reset replaces the paddles and ball with fresh ones at the canonical
// start positions. The score is kept.
func (g *Game) Reset() {
	w, h := g.settings.Width, g.settings.Height
	g.paddle1 = NewPaddle(0, h/2)
	g.paddle2 = NewPaddle(w-PaddleWidth, h/2)
	g.ball = NewBall(w/2, h/2)
}

// Step advances the game by one tick using the held input of Player 1.
func (g *Game) Step(held core.InputFrame) StepResult {
	g.ticks++
	h := g.settings.Height

	g.paddle1.Move(DirectionFrom(held), g.settings.PaddleSpeed)
	g.paddle1.ClampToBounds(h)

	g.paddle2.AIReact(g.ball.Rect, g.aiSpeed)
	g.paddle2.ClampToBounds(h)

	g.ball.Advance(g.settings.BallSpeed)
	switch side := g.ball.Exited(g.settings.Width); side {
	case SideLeft:
		g.score.Player2++
		g.Reset()
		return StepResult{Scored: side, Score: g.score}
	case SideRight:
		g.score.Player1++
		g.Reset()
		return StepResult{Scored: side, Score: g.score}
	}

	// Paddle hits win over wall contact in the same tick.
	bounce := AxisNone
	if g.ball.Rect.Intersects(g.paddle1.Rect) || g.ball.Rect.Intersects(g.paddle2.Rect) {
		bounce = AxisHorizontal
	} else if g.ball.Rect.Top() <= 0 || g.ball.Rect.Bottom() >= h {
		bounce = AxisVertical
	}
	g.ball.Bounce(bounce)

	return StepResult{Bounce: bounce, Score: g.score}
}

// Render draws the current game state to the surface.
func (g *Game) Render(dst core.Surface) {
	dst.Clear()

	dst.FillRect(core.ColorWhite, g.paddle1.Rect)
	dst.FillRect(core.ColorWhite, g.paddle2.Rect)
	dst.FillRect(core.ColorWhite, g.ball.Rect)

	text := dst.RenderText(g.score.String(), core.ColorWhite)
	dst.DrawText(text, dst.Width()/2-text.Width()/2, ScoreTextY)
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// Paddles returns the player and CPU paddles.
func (g *Game) Paddles() (player, cpu *Paddle) {
	return g.paddle1, g.paddle2
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Difficulty returns the difficulty chosen for this game.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// AISpeed returns the CPU paddle speed in use.
func (g *Game) AISpeed() float64 {
	return g.aiSpeed
}

// Settings returns the settings the game was created with.
func (g *Game) Settings() Settings {
	return g.settings
}

// Ticks returns the number of steps taken.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
