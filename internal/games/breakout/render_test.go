package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
)

type drawOp struct {
	kind       string
	x, y, w, h float64
	text       string
}

// recordCanvas records draw calls in order.
type recordCanvas struct {
	ops []drawOp
}

func (c *recordCanvas) Clear() { c.ops = append(c.ops, drawOp{kind: "clear"}) }

func (c *recordCanvas) FillRect(x, y, w, h float64, _ core.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h})
}

func (c *recordCanvas) FillCircle(cx, cy, r float64, _ core.Color) {
	c.ops = append(c.ops, drawOp{kind: "circle", x: cx, y: cy, w: r})
}

func (c *recordCanvas) DrawText(x, y float64, text string, _ core.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", x: x, y: y, text: text})
}

func (c *recordCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func TestRenderDrawsFrame(t *testing.T) {
	g := New(config.DefaultBricksConfig(), testRuntime)
	g.grid.At(3, 3).Visible = false
	g.score = 12

	var c recordCanvas
	g.Render(&c)

	if len(c.ops) == 0 || c.ops[0].kind != "clear" {
		t.Fatalf("first op should be clear, got %v", c.ops)
	}
	if c.count("circle") != 1 {
		t.Errorf("circles = %d, expected 1", c.count("circle"))
	}
	// Paddle plus 44 visible bricks.
	if c.count("rect") != 45 {
		t.Errorf("rects = %d, expected 45", c.count("rect"))
	}

	last := c.ops[len(c.ops)-1]
	if last.kind != "text" || last.text != "Score: 12" || last.x != 700 || last.y != 30 {
		t.Errorf("score op = %+v, expected \"Score: 12\" at (700, 30)", last)
	}
}

func TestRenderReadsOnlyView(t *testing.T) {
	g := New(config.DefaultBricksConfig(), testRuntime)
	before := g.Snapshot()

	var c recordCanvas
	Render(&c, g.View())
	Render(&c, View{Field: Field{W: 100, H: 100}})

	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("rendering changed session state")
	}
}

func TestRenderOntoCells(t *testing.T) {
	g := New(config.DefaultBricksConfig(), testRuntime)
	screen := core.NewScreen(80, 24)
	canvas := core.NewCellCanvas(screen, core.NewRect(0, 0, 80, 24), 800, 600)

	g.Render(canvas)

	rows := strings.Split(screen.String(), "\n")
	if row := rows[1]; !strings.Contains(row, "Score: 0") {
		t.Errorf("row 1 = %q, expected score text", row)
	}
	if row := rows[23]; !strings.ContainsRune(row, core.FillGlyph) {
		t.Errorf("row 23 = %q, expected paddle cells", row)
	}
}
