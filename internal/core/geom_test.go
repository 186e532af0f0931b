package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{name: "inside", r: NewRect(0, 0, 10, 10), x: 5, y: 5, expected: true},
		{name: "top-left corner", r: NewRect(0, 0, 10, 10), x: 0, y: 0, expected: true},
		{name: "right edge exclusive", r: NewRect(0, 0, 10, 10), x: 10, y: 5, expected: false},
		{name: "bottom edge exclusive", r: NewRect(0, 0, 10, 10), x: 5, y: 10, expected: false},
		{name: "outside negative", r: NewRect(2, 2, 4, 4), x: 1, y: 3, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max failed")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs failed")
	}
}
