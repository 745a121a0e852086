package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left/Right, A/D  - Move the paddle (while held)
  1/2/3            - Preset low/middle/high
  M                - Mute
  H                - Instructions
  Q/Esc            - Quit

Logs go to stderr unless --log is given.

Examples:
  bricks window
  bricks window --scale 1.5 --difficulty high`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field")
}

func runWindow(_ *cobra.Command, _ []string) error {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS

	s, err := newSession(rt, true)
	if err != nil {
		return err
	}
	defer s.close()

	return window.Run(s.game, window.Options{
		TickRate: flagFPS,
		Muted:    s.cfg.Audio.Muted,
		Scale:    flagScale,
		Logger:   s.logger,
	})
}
