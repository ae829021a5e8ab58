package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulties and CPU paddle speeds",
	Long:  `Shows each difficulty with the CPU paddle speed from the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	settings := cfg.Settings()

	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Name", "CPU speed")
	fmt.Printf("  %-8s  %s\n", "----", "---------")
	for _, d := range pong.Difficulties() {
		fmt.Printf("  %-8s  %.1f\n", d, settings.AISpeed(d))
	}

	fmt.Println()
	fmt.Printf("Player paddle speed: %.1f, ball speed: %.1f\n", settings.PaddleSpeed, settings.BallSpeed)
	fmt.Println("Run 'pong --difficulty <name>' to skip the menu.")
	return nil
}
