package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that fails to parse.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  2,
			DX:     2,
			DY:     -2,
		},
		Paddle: PaddleConfig{
			Width:  80,
			Height: 10,
			Speed:  8,
			Bottom: 20,
		},
		Bricks: BrickLayout{
			Rows:    9,
			Columns: 5,
			Width:   70,
			Height:  20,
			Padding: 10,
			OffsetX: 45,
			OffsetY: 60,
		},
		Round: RoundConfig{
			WinDelay:    5 * time.Second,
			WinMessage:  "You WON!",
			LoseMessage: "You LOST!",
		},
		Presets: PresetTable{
			PresetLow:    {BallSpeed: 2, PaddleWidth: 140},
			PresetMiddle: {BallSpeed: 2, PaddleWidth: 80},
			PresetHigh:   {BallSpeed: 4, PaddleWidth: 80},
		},
		Difficulty: DifficultyConfig{
			Preset: PresetMiddle,
		},
		Audio: AudioConfig{
			Muted:  false,
			Volume: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBricksYAML
}
