package core

import "math"

// Canvas is a flat 2D drawing surface addressed in field units.
// The game renders through it; frontends decide what a unit means on screen.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	DrawText(x, y float64, text string, c Color)
}

// Glyphs used when rasterizing shapes into terminal cells.
const (
	FillGlyph = '█'
	DotGlyph  = '●'
)

// CellCanvas rasterizes field-unit drawing onto a region of a Screen.
// The field is scaled independently on each axis to fill the region.
type CellCanvas struct {
	screen *Screen
	area   Rect
	sx, sy float64
}

// NewCellCanvas maps a fieldW x fieldH field onto area of screen.
func NewCellCanvas(screen *Screen, area Rect, fieldW, fieldH float64) *CellCanvas {
	c := &CellCanvas{screen: screen, area: area}
	if fieldW > 0 {
		c.sx = float64(area.W) / fieldW
	}
	if fieldH > 0 {
		c.sy = float64(area.H) / fieldH
	}
	return c
}

// Clear blanks the canvas region only.
func (c *CellCanvas) Clear() {
	c.screen.DrawRect(c.area, Cell{Rune: ' '})
}

// FillRect fills every cell the rectangle touches; a non-empty rectangle
// always covers at least one cell.
func (c *CellCanvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := c.span(x, x+w, c.sx)
	y0, y1 := c.span(y, y+h, c.sy)
	c.fill(NewRect(x0, y0, x1-x0, y1-y0), Cell{Rune: FillGlyph, Color: col})
}

// FillCircle fills cells whose centers fall inside the circle. Circles too
// small to cover a cell center are drawn as a single dot.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col Color) {
	if r <= 0 || c.sx == 0 || c.sy == 0 {
		return
	}
	x0, x1 := c.span(cx-r, cx+r, c.sx)
	y0, y1 := c.span(cy-r, cy+r, c.sy)

	drawn := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fx := (float64(px) + 0.5) / c.sx
			fy := (float64(py) + 0.5) / c.sy
			dx, dy := fx-cx, fy-cy
			if dx*dx+dy*dy <= r*r {
				c.set(px, py, Cell{Rune: FillGlyph, Color: col})
				drawn = true
			}
		}
	}
	if !drawn {
		c.set(int(math.Floor(cx*c.sx)), int(math.Floor(cy*c.sy)), Cell{Rune: DotGlyph, Color: col})
	}
}

// DrawText writes text starting at the cell containing (x, y), shifted left
// when it would run past the region's right edge.
func (c *CellCanvas) DrawText(x, y float64, text string, col Color) {
	n := len([]rune(text))
	px := int(math.Floor(x * c.sx))
	py := int(math.Floor(y * c.sy))
	if px+n > c.area.W {
		px = c.area.W - n
	}
	px = Max(px, 0)
	py = Clamp(py, 0, Max(c.area.H-1, 0))

	i := 0
	for _, r := range text {
		c.set(px+i, py, Cell{Rune: r, Color: col})
		i++
	}
}

// span converts a field interval to a half-open cell interval of at least one cell.
func (c *CellCanvas) span(from, to, scale float64) (int, int) {
	a := int(math.Floor(from * scale))
	b := int(math.Ceil(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// fill draws r (canvas-relative) clipped to the canvas region.
func (c *CellCanvas) fill(r Rect, cell Cell) {
	if !r.Intersects(c.bounds()) {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.set(x, y, cell)
		}
	}
}

// set writes a canvas-relative cell, ignoring anything outside the region.
func (c *CellCanvas) set(x, y int, cell Cell) {
	if !c.bounds().Contains(x, y) {
		return
	}
	c.screen.SetCell(c.area.X+x, c.area.Y+y, cell)
}

// bounds is the canvas region in canvas-relative cells.
func (c *CellCanvas) bounds() Rect {
	return NewRect(0, 0, c.area.W, c.area.H)
}
