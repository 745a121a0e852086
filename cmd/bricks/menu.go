package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play in the terminal",
	Long: `Show the difficulty presets, then start a terminal game with the
chosen one.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	rt := terminalRuntime()
	choice, err := tui.RunPresetPicker(cfg.Presets, cfg.Difficulty.Preset, rt.ScreenW, rt.ScreenH)
	if err != nil {
		return err
	}
	// User quit
	if choice == nil {
		return nil
	}

	flagDifficulty = string(*choice)
	return runPlay(cmd, args)
}
