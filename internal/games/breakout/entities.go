// Package breakout implements the brick breaker simulation: the entity
// model, the per-tick collision and motion engine, the round state machine
// and the render stage. It has no dependency on any frontend.
package breakout

import "github.com/vovakirdan/bricks/internal/config"

// Field is the rectangular play area. Boundary tests use it as a constant.
type Field struct {
	W, H float64
}

// Ball is the ball state. X and Y are the center.
type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64 // Nominal speed; paddle hits launch at exactly this
	DX, DY float64 // Velocity per tick
}

// Left returns the ball's left edge.
func (b *Ball) Left() float64 { return b.X - b.Radius }

// Right returns the ball's right edge.
func (b *Ball) Right() float64 { return b.X + b.Radius }

// Top returns the ball's top edge.
func (b *Ball) Top() float64 { return b.Y - b.Radius }

// Bottom returns the ball's bottom edge.
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// Center places the ball at the middle of the field without touching velocity.
func (b *Ball) Center(f Field) {
	b.X = f.W / 2
	b.Y = f.H / 2
}

// Paddle is the player's paddle. X and Y are the top-left corner.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64
	DX    float64 // One of -Speed, 0, +Speed
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 { return p.X + p.W }

// Brick is a single brick. Its rectangle never changes; only Visible does.
type Brick struct {
	X, Y    float64
	W, H    float64
	Visible bool
}

// BrickGrid is a fixed rows x cols grid of bricks indexed by (row, col).
type BrickGrid struct {
	rows, cols int
	bricks     [][]Brick // [row][col]
}

// NewBrickGrid lays out every brick of the grid, all visible. Brick (r, c)
// is placed at OffsetX + c*(Width+Padding), OffsetY + r*(Height+Padding).
func NewBrickGrid(l config.BrickLayout) *BrickGrid {
	rows, cols := max(l.Rows, 0), max(l.Columns, 0)
	g := &BrickGrid{
		rows:   rows,
		cols:   cols,
		bricks: make([][]Brick, rows),
	}
	for r := range rows {
		g.bricks[r] = make([]Brick, cols)
		for c := range cols {
			g.bricks[r][c] = Brick{
				X:       l.OffsetX + float64(c)*(l.Width+l.Padding),
				Y:       l.OffsetY + float64(r)*(l.Height+l.Padding),
				W:       l.Width,
				H:       l.Height,
				Visible: true,
			}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *BrickGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *BrickGrid) Cols() int { return g.cols }

// Len returns the total number of bricks, visible or not.
func (g *BrickGrid) Len() int { return g.rows * g.cols }

// At returns the brick at (row, col). It panics if the index is out of range.
func (g *BrickGrid) At(row, col int) *Brick {
	return &g.bricks[row][col]
}

// Each calls fn for every brick in row-major order.
func (g *BrickGrid) Each(fn func(row, col int, b *Brick)) {
	for r := range g.bricks {
		for c := range g.bricks[r] {
			fn(r, c, &g.bricks[r][c])
		}
	}
}

// ShowAll makes every brick visible again.
func (g *BrickGrid) ShowAll() {
	g.Each(func(_, _ int, b *Brick) { b.Visible = true })
}

// CountVisible returns the number of visible bricks.
func (g *BrickGrid) CountVisible() int {
	n := 0
	g.Each(func(_, _ int, b *Brick) {
		if b.Visible {
			n++
		}
	})
	return n
}
