package core

import "testing"

// CellCanvas clips with half-open rectangles: touching edges do not overlap.
func TestRectHalfOpenEdges(t *testing.T) {
	area := NewRect(0, 0, 4, 3)

	tests := []struct {
		name       string
		r          Rect
		intersects bool
	}{
		{"inside", NewRect(1, 1, 1, 1), true},
		{"covers", NewRect(-5, -5, 20, 20), true},
		{"left of area", NewRect(-2, 0, 2, 1), false},
		{"right edge", NewRect(4, 0, 1, 1), false},
		{"bottom edge", NewRect(0, 3, 1, 1), false},
		{"straddles right", NewRect(3, 2, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := area.Intersects(tc.r); got != tc.intersects {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.r, got, tc.intersects)
			}
		})
	}

	if !area.Contains(0, 0) || !area.Contains(3, 2) {
		t.Error("corners inside the area should be contained")
	}
	if area.Contains(4, 2) || area.Contains(3, 3) || area.Contains(-1, 0) {
		t.Error("points on or past the right/bottom edge should not be contained")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name              string
		val, lo, hi, want float64
	}{
		{"within", 5.5, 0, 10, 5.5},
		{"below", -5.5, 0, 10, 0},
		{"above", 15.5, 0, 10, 10},
		// A paddle wider than the field has a negative upper bound.
		{"inverted range prefers min", 3, 0, -20, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
				t.Errorf("ClampF(%g, %g, %g) = %g, expected %g", tc.val, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}

func TestClampIntHelpers(t *testing.T) {
	if Clamp(-1, 0, 9) != 0 || Clamp(12, 0, 9) != 9 || Clamp(4, 0, 9) != 4 {
		t.Error("Clamp should keep values within [0, 9]")
	}
	if Min(3, -2) != -2 || Max(3, -2) != 3 {
		t.Error("Min/Max picked the wrong value")
	}
}
