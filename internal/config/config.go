// Package config provides YAML-based configuration loading for pong.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Config contains all tunable parameters.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Physics   PhysicsConfig   `yaml:"physics"`
	CPU       CPUConfig       `yaml:"cpu"`
	Loop      LoopConfig      `yaml:"loop"`
}

// PlayfieldConfig defines the logical drawing surface size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick movement in playfield units.
type PhysicsConfig struct {
	PaddleSpeed float64 `yaml:"paddle_speed"`
	BallSpeed   float64 `yaml:"ball_speed"`
}

// CPUConfig defines the CPU paddle speed for each difficulty.
type CPUConfig struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Speed returns the configured CPU speed for d.
func (c CPUConfig) Speed(d pong.Difficulty) float64 {
	switch d {
	case pong.DifficultyEasy:
		return c.Easy
	case pong.DifficultyHard:
		return c.Hard
	default:
		return c.Medium
	}
}

// Settings converts the config into game settings.
func (c Config) Settings() pong.Settings {
	speeds := make(map[pong.Difficulty]float64, 3)
	for _, d := range pong.Difficulties() {
		speeds[d] = c.CPU.Speed(d)
	}
	return pong.Settings{
		Width:       c.Playfield.Width,
		Height:      c.Playfield.Height,
		PaddleSpeed: c.Physics.PaddleSpeed,
		BallSpeed:   c.Physics.BallSpeed,
		AISpeeds:    speeds,
	}
}

// Validate reports every value that would make the game unplayable.
func (c Config) Validate() error {
	var errs []error
	if c.Playfield.Width < pong.PaddleWidth*2+pong.BallSize {
		errs = append(errs, fmt.Errorf("playfield.width %v is too small", c.Playfield.Width))
	}
	if c.Playfield.Height < pong.PaddleHeight {
		errs = append(errs, fmt.Errorf("playfield.height %v is smaller than a paddle", c.Playfield.Height))
	}
	if c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.paddle_speed must be positive, got %v", c.Physics.PaddleSpeed))
	}
	if c.Physics.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_speed must be positive, got %v", c.Physics.BallSpeed))
	}
	for _, d := range pong.Difficulties() {
		if v := c.CPU.Speed(d); v <= 0 {
			errs = append(errs, fmt.Errorf("cpu.%s must be positive, got %v", d, v))
		}
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
