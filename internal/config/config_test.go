package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestSettings(t *testing.T) {
	s := Default().Settings()

	assert.Equal(t, 800.0, s.Width)
	assert.Equal(t, 600.0, s.Height)
	assert.Equal(t, 2.0, s.PaddleSpeed)
	assert.Equal(t, 2.0, s.BallSpeed)
	assert.Equal(t, 1.5, s.AISpeed(pong.DifficultyEasy))
	assert.Equal(t, 2.0, s.AISpeed(pong.DifficultyMedium))
	assert.Equal(t, 2.5, s.AISpeed(pong.DifficultyHard))
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("cpu:\n  hard: 3.25\nloop:\n  tick_rate: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 3.25, cfg.CPU.Hard)
	assert.Equal(t, 30, cfg.Loop.TickRate)
	assert.Equal(t, 1.5, cfg.CPU.Easy, "unmentioned values keep their defaults")
	assert.Equal(t, 800.0, cfg.Playfield.Width)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("physics: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny width", func(c *Config) { c.Playfield.Width = 20 }},
		{"height below paddle", func(c *Config) { c.Playfield.Height = 50 }},
		{"zero paddle speed", func(c *Config) { c.Physics.PaddleSpeed = 0 }},
		{"negative ball speed", func(c *Config) { c.Physics.BallSpeed = -1 }},
		{"zero cpu speed", func(c *Config) { c.CPU.Medium = 0 }},
		{"zero tick rate", func(c *Config) { c.Loop.TickRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  ball_speed: 4\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Physics.BallSpeed)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("loop: [1"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("loop:\n  tick_rate: -5\n"), 0o600))
	_, err = Load(invalid)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Local ./configs/pong.yaml is used next.
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", FileName), []byte("cpu:\n  easy: 1.0\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.CPU.Easy)

	// The user config wins over the local one.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".pong"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".pong", FileName), []byte("cpu:\n  easy: 1.25\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 1.25, cfg.CPU.Easy)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_rate: 60")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
