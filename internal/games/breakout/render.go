package breakout

import (
	"fmt"

	"github.com/vovakirdan/bricks/internal/core"
)

// Colors of the drawn elements.
const (
	BallColor   = core.ColorBrightBlue
	PaddleColor = core.ColorBrightBlue
	BrickColor  = core.ColorBrightBlue
	ScoreColor  = core.ColorBrightBlue
)

// Score text sits this far from the right edge, at this height.
const (
	scoreInsetX = 100
	scoreY      = 30
)

// View is the read-only input of the render stage.
type View struct {
	Field  Field
	Ball   Ball
	Paddle Paddle
	Grid   *BrickGrid
	Score  int
}

// Render draws one frame of v onto dst: a cleared surface, the ball, the
// paddle, every visible brick and the score. It reads nothing but v.
func Render(dst core.Canvas, v View) {
	dst.Clear()

	dst.FillCircle(v.Ball.X, v.Ball.Y, v.Ball.Radius, BallColor)
	dst.FillRect(v.Paddle.X, v.Paddle.Y, v.Paddle.W, v.Paddle.H, PaddleColor)

	if v.Grid != nil {
		v.Grid.Each(func(_, _ int, b *Brick) {
			if b.Visible {
				dst.FillRect(b.X, b.Y, b.W, b.H, BrickColor)
			}
		})
	}

	dst.DrawText(v.Field.W-scoreInsetX, scoreY, ScoreText(v.Score), ScoreColor)
}

// ScoreText formats the score label.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Render draws the current frame onto dst.
func (g *Game) Render(dst core.Canvas) {
	Render(dst, g.View())
}
