package breakout

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/core"
)

// EventKind identifies a collision event produced by Move.
type EventKind int

const (
	EventWallBounce     EventKind = iota // Side or top wall reflection
	EventPaddleHit                       // Ball launched upward by the paddle
	EventBrickDestroyed                  // Row and Col identify the brick
	EventBallLost                        // Ball crossed the bottom boundary
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBrickDestroyed:
		return "brick-destroyed"
	case EventBallLost:
		return "ball-lost"
	default:
		return "unknown"
	}
}

// Event is a single collision outcome of one tick.
type Event struct {
	Kind     EventKind
	Row, Col int // Brick coordinate for EventBrickDestroyed
}

// String implements fmt.Stringer.
func (e Event) String() string {
	if e.Kind == EventBrickDestroyed {
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Row, e.Col)
	}
	return e.Kind.String()
}

// MovePaddle applies the paddle velocity and keeps the paddle inside
// [0, f.W-p.W]. A paddle wider than the field ends up at 0.
func MovePaddle(f Field, p *Paddle) {
	p.X += p.DX
	p.X = core.ClampF(p.X, 0, f.W-p.W)
}

// Move advances the paddle and ball by one tick, resolves collisions in a
// fixed order and appends the resulting events to events.
//
// Order: paddle motion, ball motion, side walls, top/bottom walls, paddle,
// bricks (row-major), loss. All containment tests are strict, so a ball
// exactly touching a paddle or brick edge does not collide.
func Move(f Field, ball *Ball, paddle *Paddle, grid *BrickGrid, events []Event) []Event {
	MovePaddle(f, paddle)
	ball.Move()

	// Side walls are symmetric.
	if ball.Right() > f.W || ball.Left() < 0 {
		ball.BounceX()
		events = append(events, Event{Kind: EventWallBounce})
	}

	// Top and bottom both reflect, but only the top is a bounce: crossing
	// the bottom is reported as a loss below.
	if ball.Bottom() > f.H || ball.Top() < 0 {
		ball.BounceY()
		if ball.Top() < 0 {
			events = append(events, Event{Kind: EventWallBounce})
		}
	}

	if ball.Left() > paddle.X && ball.Right() < paddle.Right() && ball.Bottom() > paddle.Y {
		ball.DY = -ball.Speed
		events = append(events, Event{Kind: EventPaddleHit})
	}

	grid.Each(func(row, col int, b *Brick) {
		if !b.Visible {
			return
		}
		if ball.Left() > b.X && ball.Right() < b.X+b.W &&
			ball.Bottom() > b.Y && ball.Top() < b.Y+b.H {
			ball.BounceY()
			b.Visible = false
			events = append(events, Event{Kind: EventBrickDestroyed, Row: row, Col: col})
		}
	})

	if ball.Bottom() > f.H {
		events = append(events, Event{Kind: EventBallLost})
	}

	return events
}
