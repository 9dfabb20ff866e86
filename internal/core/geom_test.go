package core

import "testing"

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "same center",
			a:        Circle{Center: Vec2{10, 10}, R: 5},
			b:        Circle{Center: Vec2{10, 10}, R: 1},
			expected: true,
		},
		{
			name:     "overlapping diagonally",
			a:        Circle{Center: Vec2{0, 0}, R: 5},
			b:        Circle{Center: Vec2{6, 6}, R: 5},
			expected: true,
		},
		{
			name:     "touching (no overlap)",
			a:        Circle{Center: Vec2{0, 0}, R: 5},
			b:        Circle{Center: Vec2{10, 0}, R: 5},
			expected: false,
		},
		{
			name:     "far apart",
			a:        Circle{Center: Vec2{0, 0}, R: 5},
			b:        Circle{Center: Vec2{100, 40}, R: 5},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestSpanOverlapsAndWithin(t *testing.T) {
	tests := []struct {
		name            string
		a, b            Span
		overlaps, inner bool
	}{
		{"disjoint", Span{0, 10}, Span{20, 30}, false, false},
		{"adjacent", Span{0, 10}, Span{10, 20}, false, false},
		{"partial", Span{0, 10}, Span{5, 20}, true, false},
		{"inside", Span{5, 8}, Span{0, 10}, true, true},
		{"equal", Span{0, 10}, Span{0, 10}, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.overlaps)
			}
			if got := tc.a.Within(tc.b); got != tc.inner {
				t.Errorf("Within() = %v, expected %v", got, tc.inner)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if got := v.Add(Vec2{1, 1}); got != (Vec2{4, 5}) {
		t.Errorf("Add() = %v, expected {4 5}", got)
	}
	if got := v.Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub() = %v, expected {2 3}", got)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
