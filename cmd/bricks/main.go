// bricks is a ball-and-paddle brick breaker for the terminal and the desktop.
//
// Usage:
//
//	bricks                   - Play in the terminal (same as "bricks play")
//	bricks play              - Play in the terminal
//	bricks window            - Play in a desktop window
//	bricks menu              - Pick a difficulty, then play in the terminal
//	bricks presets           - List difficulty presets
//	bricks config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Starting preset: low, middle, high
//	--mute                - Start with sound muted
//	--log <path>          - Log file (default: ~/.bricks/bricks.log)
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLog        string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - break every brick with a bouncing ball",
	Long: `Bricks is a single-screen brick breaker. Keep the ball in play
with the paddle and clear the wall of bricks to win the round.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  menu     - Pick a difficulty, then play
  presets  - Show difficulty presets
  config   - Print configuration

Examples:
  bricks
  bricks play --difficulty high
  bricks window --mute
  bricks config > ~/.bricks/configs/bricks.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting preset: low, middle, high")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file path (default: ~/.bricks/bricks.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
