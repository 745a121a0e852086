package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets from the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Difficulty presets (%s config):\n\n", source)

	rows := make([][]string, 0, len(cfg.Presets))
	for _, p := range config.Presets() {
		params := cfg.Presets[p]
		mark := ""
		if p == cfg.Difficulty.Preset {
			mark = "*"
		}
		rows = append(rows, []string{
			string(p) + mark,
			fmt.Sprintf("%g", params.BallSpeed),
			fmt.Sprintf("%g", params.PaddleWidth),
		})
	}
	fprintTable(os.Stdout, []string{"Preset", "Ball speed", "Paddle width"}, rows)

	fmt.Println()
	fmt.Println("* starting preset. Run 'bricks play --difficulty <preset>' to change it.")
	return nil
}
