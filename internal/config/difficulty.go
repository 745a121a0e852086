package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for preset names outside low/middle/high.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Preset represents a named difficulty level.
type Preset string

const (
	PresetLow    Preset = "low"
	PresetMiddle Preset = "middle"
	PresetHigh   Preset = "high"
)

// Presets lists the presets in display order.
func Presets() []Preset {
	return []Preset{PresetLow, PresetMiddle, PresetHigh}
}

// PresetParams holds the values a preset overwrites.
type PresetParams struct {
	BallSpeed   float64 `yaml:"ball_speed"`
	PaddleWidth float64 `yaml:"paddle_width"`
}

// PresetTable maps each preset to its parameters.
type PresetTable map[Preset]PresetParams

// Lookup returns the parameters for a preset.
func (t PresetTable) Lookup(p Preset) (PresetParams, error) {
	params, ok := t[p]
	if !ok {
		return PresetParams{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return params, nil
}

// ParsePreset converts a user-supplied name to a Preset. Matching is case
// insensitive and accepts the aliases easy, normal, medium and hard.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low", "easy":
		return PresetLow, nil
	case "middle", "normal", "medium":
		return PresetMiddle, nil
	case "high", "hard":
		return PresetHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// ApplyPreset makes p the startup preset and rewrites the startup ball and
// paddle values to match it.
func ApplyPreset(cfg *BricksConfig, p Preset) error {
	params, err := cfg.Presets.Lookup(p)
	if err != nil {
		return err
	}
	cfg.Difficulty.Preset = p
	cfg.Ball.Speed = params.BallSpeed
	cfg.Ball.DX = params.BallSpeed
	cfg.Ball.DY = -params.BallSpeed
	cfg.Paddle.Width = params.PaddleWidth
	return nil
}
