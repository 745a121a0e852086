package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Move the paddle
  Space/Down       - Stop the paddle
  1/2/3            - Preset low/middle/high
  M                - Mute
  ?/H              - Instructions
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  bricks play
  bricks play --difficulty low
  bricks play --fps 30 --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalRuntime returns the runtime config for the current terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}

func runPlay(_ *cobra.Command, _ []string) error {
	rt := terminalRuntime()

	s, err := newSession(rt, false)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.Run(s.game, rt, tui.Options{
		Muted:  s.cfg.Audio.Muted,
		Logger: s.logger,
	})
}
