package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name             string
		w, h, ow, oh     int
		expectX, expectY int
	}{
		{"centred", 33, 17, 80, 24, 23, 3},
		{"exact fit", 80, 24, 80, 24, 0, 0},
		{"too large pins to corner", 100, 30, 80, 24, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredRect(tc.w, tc.h, tc.ow, tc.oh)
			if r.X != tc.expectX || r.Y != tc.expectY || r.W != tc.w || r.H != tc.h {
				t.Errorf("CenteredRect = %+v, expected origin (%d, %d)", r, tc.expectX, tc.expectY)
			}
		})
	}
}

func TestRectInsetAndFits(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}
	if got := NewRect(0, 0, 1, 1).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("over-inset should collapse to zero size, got %+v", got)
	}

	if !r.Fits(8, 4) || r.Fits(9, 4) || r.Fits(8, 5) {
		t.Error("Fits reports wrong result")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp on floats = %v, expected 1", got)
	}
}
