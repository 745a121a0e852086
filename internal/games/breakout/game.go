package breakout

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

// Cues is the audio cue requester the game talks to.
type Cues interface {
	Play(cue audio.Cue) bool
	SetMuted(muted bool)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for round transitions and preset changes.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCues sets the cue requester. The default discards all cues.
func WithCues(c Cues) Option {
	return func(g *Game) {
		if c != nil {
			g.cues = c
		}
	}
}

// Game is the whole session: entities, score, tick clock, intent inbox and
// deferred round actions. Frontends own one Game and drive it with Tick.
type Game struct {
	field  Field
	ball   Ball
	paddle Paddle
	grid   *BrickGrid

	score   int
	preset  config.Preset
	message string

	// Round bookkeeping
	tick          uint64
	winDelayTicks uint64
	wins          int
	losses        int
	sched         Scheduler

	inbox  core.Inbox
	events []Event

	cfg    config.BricksConfig
	cues   Cues
	logger *log.Logger
}

// New creates a session from a validated configuration. The ball starts at
// field center, the paddle centered near the bottom, every brick visible.
func New(cfg config.BricksConfig, rt core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		cues:   audio.NewLatch(audio.Discard{}, cfg.Audio.Muted),
		logger: log.New(io.Discard),
		preset: cfg.Difficulty.Preset,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.field = Field{W: cfg.Field.Width, H: cfg.Field.Height}
	g.ball = Ball{
		Radius: cfg.Ball.Radius,
		Speed:  cfg.Ball.Speed,
		DX:     cfg.Ball.DX,
		DY:     cfg.Ball.DY,
	}
	g.ball.Center(g.field)
	g.paddle = Paddle{
		X:     g.field.W/2 - cfg.Paddle.Width/2,
		Y:     g.field.H - cfg.Paddle.Bottom,
		W:     cfg.Paddle.Width,
		H:     cfg.Paddle.Height,
		Speed: cfg.Paddle.Speed,
	}
	g.grid = NewBrickGrid(cfg.Bricks)
	g.winDelayTicks = delayTicks(cfg.Round.WinDelay.Seconds(), rt.TickRate)
	return g
}

// delayTicks converts seconds to whole ticks at tickRate, rounding up.
func delayTicks(seconds float64, tickRate int) uint64 {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Ceil(seconds * float64(tickRate)))
}

// Post queues an intent for the next tick.
func (g *Game) Post(in core.Intent) {
	g.inbox.Post(in)
}

// Tick advances the session by one frame: queued intents are applied, the
// motion engine runs, the round state machine consumes its events, and due
// deferred actions fire. The returned events are valid until the next Tick.
func (g *Game) Tick() []Event {
	g.tick++

	for _, in := range g.inbox.Drain() {
		g.apply(in)
	}

	g.events = Move(g.field, &g.ball, &g.paddle, g.grid, g.events[:0])
	g.handleEvents(g.events)
	g.sched.RunDue(g.tick)

	return g.events
}

// apply executes a single intent.
func (g *Game) apply(in core.Intent) {
	switch in.Kind {
	case core.IntentDirection:
		g.SetPaddleDirection(in.Dir)
	case core.IntentPreset:
		if err := g.ApplyPreset(in.Preset); err != nil {
			g.logger.Warn("ignoring preset intent", "preset", in.Preset, "error", err)
		}
	case core.IntentMute:
		g.cues.SetMuted(in.Muted)
		g.logger.Debug("mute toggled", "muted", in.Muted)
	}
}

// SetPaddleDirection sets the paddle velocity to -Speed, 0 or +Speed.
func (g *Game) SetPaddleDirection(d core.Direction) {
	g.paddle.DX = d.Sign() * g.paddle.Speed
}

// ApplyPreset overwrites ball speed and velocity and paddle width with the
// named preset's values, leaving positions and score alone, then requests a
// full-grid reset.
func (g *Game) ApplyPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	params, err := g.cfg.Presets.Lookup(p)
	if err != nil {
		return err
	}

	g.preset = p
	g.ball.Speed = params.BallSpeed
	g.ball.DX = params.BallSpeed
	g.ball.DY = -params.BallSpeed
	g.paddle.W = params.PaddleWidth

	g.logger.Info("preset applied", "preset", p, "ball_speed", params.BallSpeed, "paddle_width", params.PaddleWidth)
	g.resetGrid()
	return nil
}

// Field returns the play field.
func (g *Game) Field() Field { return g.field }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Preset returns the active difficulty preset.
func (g *Game) Preset() config.Preset { return g.preset }

// Message returns the current heading text ("" when none).
func (g *Game) Message() string { return g.message }

// Ticks returns the tick clock.
func (g *Game) Ticks() uint64 { return g.tick }

// Grid returns the brick grid.
func (g *Game) Grid() *BrickGrid { return g.grid }

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball { return g.ball }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// View returns what the render stage needs for one frame.
func (g *Game) View() View {
	return View{
		Field:  g.field,
		Ball:   g.ball,
		Paddle: g.paddle,
		Grid:   g.grid,
		Score:  g.score,
	}
}
