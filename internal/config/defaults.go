package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  pong.DefaultWidth,
			Height: pong.DefaultHeight,
		},
		Physics: PhysicsConfig{
			PaddleSpeed: pong.DefaultPaddleSpeed,
			BallSpeed:   pong.DefaultBallSpeed,
		},
		CPU: CPUConfig{
			Easy:   pong.EasyAISpeed,
			Medium: pong.MediumAISpeed,
			Hard:   pong.HardAISpeed,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
