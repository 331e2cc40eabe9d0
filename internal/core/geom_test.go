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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
}

func TestRectCenteredIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 80, 24), 20, 18, NewRect(30, 3, 20, 18)},
		{"odd remainder", NewRect(0, 0, 81, 25), 20, 18, NewRect(30, 3, 20, 18)},
		{"offset outer", NewRect(10, 5, 10, 10), 4, 2, NewRect(13, 9, 4, 2)},
		{"larger than outer", NewRect(0, 0, 10, 10), 14, 12, NewRect(-2, -1, 14, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.outer.CenteredIn(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredIn(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}
