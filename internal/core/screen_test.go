package core

import "testing"

func TestScreenCellsOutsideAreIgnored(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 2, Cell{Rune: '#', Color: ColorBlue})
	s.SetCell(4, 0, Cell{Rune: 'x'})
	s.SetCell(0, -1, Cell{Rune: 'x'})

	if got := s.GetCell(1, 2); got.Rune != '#' || got.Color != ColorBlue {
		t.Errorf("GetCell(1, 2) = %+v, expected blue '#'", got)
	}
	if got := s.GetCell(9, 9); got.Rune != ' ' {
		t.Errorf("out of range cell = %q, expected blank", got.Rune)
	}
	if got := s.String(); got != "    \n    \n #  " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenNegativeSizeIsEmpty(t *testing.T) {
	s := NewScreen(-4, -1)
	if s.Width() != 0 || s.Height() != 0 || s.String() != "" {
		t.Errorf("got %dx%d %q, expected an empty screen", s.Width(), s.Height(), s.String())
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawRect(NewRect(0, 0, 3, 2), Cell{Rune: '#'})

	s.Resize(4, 1)
	if got := s.String(); got != "### " {
		t.Errorf("after shrink+grow String() = %q, expected %q", got, "### ")
	}

	s.Resize(4, 1)
	if got := s.String(); got != "### " {
		t.Errorf("same-size resize changed content: %q", got)
	}
}

func TestScreenDrawRectClips(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawRect(NewRect(1, 1, 10, 10), Cell{Rune: '#'})

	if got := s.String(); got != "   \n ##\n ##" {
		t.Errorf("String() = %q", got)
	}
}
