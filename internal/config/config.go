// Package config provides YAML-based game configuration loading, validation
// and the difficulty preset table.
package config

import "time"

// BricksConfig contains all configuration for the brick breaker.
type BricksConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BrickLayout      `yaml:"bricks"`
	Round      RoundConfig      `yaml:"round"`
	Presets    PresetTable      `yaml:"presets"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// FieldConfig defines the logical play field size. All positions are in
// field units; frontends scale them to their surface.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball at startup. The ball starts at field center.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	DX     float64 `yaml:"dx"`
	DY     float64 `yaml:"dy"`
}

// PaddleConfig defines the paddle at startup.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Bottom float64 `yaml:"bottom"` // Distance from the paddle's top edge to the field bottom
}

// BrickLayout defines the fixed brick grid.
type BrickLayout struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Extent returns the right and bottom edges of the laid-out grid.
func (l BrickLayout) Extent() (right, bottom float64) {
	right = l.OffsetX + float64(l.Columns)*(l.Width+l.Padding) - l.Padding
	bottom = l.OffsetY + float64(l.Rows)*(l.Height+l.Padding) - l.Padding
	return right, bottom
}

// RoundConfig defines round transitions.
type RoundConfig struct {
	WinDelay    time.Duration `yaml:"win_delay"`
	WinMessage  string        `yaml:"win_message"`
	LoseMessage string        `yaml:"lose_message"`
}

// DifficultyConfig selects the preset applied at startup.
type DifficultyConfig struct {
	Preset Preset `yaml:"preset"`
}

// AudioConfig defines cue playback.
type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // Linear gain in [0, 1]; 0 is silent
}
