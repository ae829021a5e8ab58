// pong is a Pong game against a CPU opponent, playable in the terminal,
// in a desktop window or over SSH.
//
// Usage:
//
//	pong                     - Pick a difficulty and play in the terminal
//	pong --backend window    - Play in a desktop window
//	pong serve               - Start SSH server for remote play
//	pong difficulties        - List difficulties and CPU speeds
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: loop.tick_rate from config)
//	--config <path>      - Load tuning values from a YAML file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-pong/internal/platform/tui"
	_ "github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong against the CPU",
	Long: `Pong against a CPU opponent. Click a difficulty on the menu, then keep
the ball in play with your paddle on the left. Scores accumulate until you quit.

Controls:
  Up/W       - Move paddle up
  Down/S     - Move paddle down
  Q/Esc      - Quit (or close the window)

Examples:
  pong
  pong --difficulty hard
  pong --backend window
  pong --config ./pong.yaml --log-file pong.log --log-level debug
  pong serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(configCmd)
}

// tickRate returns --fps when given, otherwise the configured rate.
func tickRate(cmd *cobra.Command, cfg config.Config) int {
	if cmd.Flags().Changed("fps") {
		return flagFPS
	}
	return cfg.Loop.TickRate
}
