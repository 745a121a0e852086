package core

import (
	"strings"
	"testing"
)

func glyph(s *Screen, x, y int) rune { return s.GetCell(x, y).Rune }

func row(s *Screen, y int) string { return strings.Split(s.String(), "\n")[y] }

func TestCellCanvasFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	// 100x100 field on 10x10 cells: 10 units per cell.
	c := NewCellCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	c.FillRect(20, 30, 20, 10, ColorBlue)

	for x := 2; x < 4; x++ {
		cell := s.GetCell(x, 3)
		if cell.Rune != FillGlyph || cell.Color != ColorBlue {
			t.Errorf("expected blue fill at (%d, 3), got %+v", x, cell)
		}
	}
	if glyph(s, 4, 3) != ' ' || glyph(s, 2, 4) != ' ' {
		t.Error("FillRect should not spill outside its cells")
	}
}

func TestCellCanvasTinyRectCoversOneCell(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCellCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	c.FillRect(55, 55, 1, 1, ColorRed)
	if glyph(s, 5, 5) != FillGlyph {
		t.Errorf("sub-cell rect should still draw one cell, got %q", glyph(s, 5, 5))
	}
}

func TestCellCanvasFillCircle(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCellCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	c.FillCircle(50, 50, 20, ColorCyan)
	if glyph(s, 4, 4) != FillGlyph || glyph(s, 5, 5) != FillGlyph {
		t.Error("circle center cells should be filled")
	}
	if glyph(s, 0, 0) != ' ' {
		t.Error("cells far from the circle should stay empty")
	}
}

func TestCellCanvasSmallCircleIsDot(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCellCanvas(s, NewRect(0, 0, 10, 10), 100, 100)

	c.FillCircle(51, 51, 1, ColorCyan)
	if glyph(s, 5, 5) != DotGlyph {
		t.Errorf("small circle should be a dot, got %q", glyph(s, 5, 5))
	}
}

func TestCellCanvasTextShiftsLeft(t *testing.T) {
	s := NewScreen(10, 3)
	c := NewCellCanvas(s, NewRect(0, 0, 10, 3), 100, 30)

	c.DrawText(90, 0, "Score", ColorDefault)
	if got := row(s, 0); got != "     Score" {
		t.Errorf("text should be shifted to fit, got %q", got)
	}
}

func TestCellCanvasClipsToArea(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCellCanvas(s, NewRect(2, 2, 4, 4), 40, 40)

	c.FillRect(-100, -100, 1000, 1000, ColorRed)
	if glyph(s, 1, 1) != ' ' || glyph(s, 6, 6) != ' ' {
		t.Error("canvas must not draw outside its area")
	}
	if glyph(s, 2, 2) != FillGlyph || glyph(s, 5, 5) != FillGlyph {
		t.Error("canvas area should be filled")
	}

	c.Clear()
	if glyph(s, 3, 3) != ' ' {
		t.Error("Clear should blank the area")
	}
}
