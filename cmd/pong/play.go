package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/session"
)

var (
	flagBackend    string
	flagDifficulty string
)

func init() {
	rootCmd.Flags().StringVar(&flagBackend, "backend", tui.BackendName, "Rendering backend: "+backendNames())
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu: easy, medium, hard")
}

func backendNames() string {
	var names []string
	for _, b := range registry.List() {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (available: %s)", flagBackend, backendNames())
	}
	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	var difficulty pong.Difficulty
	if flagDifficulty != "" {
		if difficulty, err = pong.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	logger, closeLog, err := openLogger(backend.Name())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	sess := session.New(cfg.Settings(), logger)
	if flagDifficulty != "" {
		sess.Start(difficulty)
	}

	logger.Info("starting", "backend", backend.Name(), "tick_rate", tickRate(cmd, cfg))
	if err := backend.Run(cmd.Context(), sess, registry.Options{
		TickRate: tickRate(cmd, cfg),
		Logger:   logger,
	}); err != nil {
		return err
	}

	logger.Info("exited", "score", scoreOf(sess))
	return nil
}

// openLogger picks the log destination. The terminal backend owns stdout
// and stderr, so without --log-file its logs are discarded.
func openLogger(backend string) (*log.Logger, func() error, error) {
	if flagLogFile == "" && backend != tui.BackendName {
		logger, err := logging.New(os.Stderr, flagLogLevel, "pong")
		return logger, func() error { return nil }, err
	}
	return logging.Open(flagLogFile, flagLogLevel, "pong")
}

func scoreOf(s *session.Session) string {
	if g := s.Game(); g != nil {
		return g.Score().String()
	}
	return "no game played"
}
