package breakout

import "math"

// Snapshot contains the complete session state that affects simulation.
// Uses primitive types only for stable hashing and comparison.
type Snapshot struct {
	Tick    uint64
	Score   int
	Preset  string
	Message string

	BallX, BallY   float64
	BallDX, BallDY float64
	BallSpeed      float64

	PaddleX, PaddleW float64
	PaddleDX         float64

	// Brick visibility, row-major: row*cols + col
	Bricks         []bool
	VisibleBricks  int
	PendingActions int
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, 0, g.grid.Len())
	g.grid.Each(func(_, _ int, b *Brick) {
		bricks = append(bricks, b.Visible)
	})

	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Preset:  string(g.preset),
		Message: g.message,

		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallDX:    g.ball.DX,
		BallDY:    g.ball.DY,
		BallSpeed: g.ball.Speed,

		PaddleX:  g.paddle.X,
		PaddleW:  g.paddle.W,
		PaddleDX: g.paddle.DX,

		Bricks:         bricks,
		VisibleBricks:  g.grid.CountVisible(),
		PendingActions: g.sched.Pending(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	for _, r := range snap.Preset {
		h = h*31 + uint64(r)
	}

	for _, f := range []float64{
		snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.BallSpeed,
		snap.PaddleX, snap.PaddleW, snap.PaddleDX,
	} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.Bricks {
		if v {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	h = h*31 + uint64(snap.PendingActions) //#nosec G115 -- hash computation
	return h
}
