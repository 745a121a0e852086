package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration once at startup. All violations are
// reported together.
func (c BricksConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		add("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}

	if c.Ball.Radius <= 0 {
		add("ball radius must be positive, got %g", c.Ball.Radius)
	}
	if c.Ball.Speed < 0 {
		add("ball speed must not be negative, got %g", c.Ball.Speed)
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		add("paddle size must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Speed < 0 {
		add("paddle speed must not be negative, got %g", c.Paddle.Speed)
	}
	if c.Paddle.Bottom < 0 || c.Paddle.Bottom > c.Field.Height {
		add("paddle bottom offset %g is outside the field", c.Paddle.Bottom)
	}

	b := c.Bricks
	if b.Rows <= 0 || b.Columns <= 0 {
		add("brick grid must have at least one row and column, got %dx%d", b.Rows, b.Columns)
	}
	if b.Width <= 0 || b.Height <= 0 {
		add("brick size must be positive, got %gx%g", b.Width, b.Height)
	}
	if b.Padding < 0 || b.OffsetX < 0 || b.OffsetY < 0 {
		add("brick padding and offsets must not be negative")
	}
	if right, bottom := b.Extent(); right > c.Field.Width || bottom > c.Field.Height {
		add("brick grid extends to %gx%g, beyond the %gx%g field", right, bottom, c.Field.Width, c.Field.Height)
	}

	if c.Round.WinDelay < 0 {
		add("win delay must not be negative, got %s", c.Round.WinDelay)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio volume must be within [0, 1], got %g", c.Audio.Volume)
	}

	for _, p := range Presets() {
		params, err := c.Presets.Lookup(p)
		if err != nil {
			add("preset table is missing %q", string(p))
			continue
		}
		if params.BallSpeed < 0 || params.PaddleWidth <= 0 {
			add("preset %q has invalid values (ball_speed=%g, paddle_width=%g)", string(p), params.BallSpeed, params.PaddleWidth)
		}
	}
	for p := range c.Presets {
		if p != PresetLow && p != PresetMiddle && p != PresetHigh {
			add("preset table has unknown entry %q", string(p))
		}
	}
	if _, err := c.Presets.Lookup(c.Difficulty.Preset); err != nil {
		add("difficulty preset %q is not in the preset table", string(c.Difficulty.Preset))
	}

	return errors.Join(errs...)
}
