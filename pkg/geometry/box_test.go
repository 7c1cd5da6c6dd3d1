package geometry

import "testing"

func TestNewBoxNormalizes(t *testing.T) {
	b := NewBox(NewPoint(5, 1), NewPoint(2, 8))

	if b.Min != (Point{X: 2, Y: 1}) {
		t.Errorf("Min not normalized: got %v", b.Min)
	}
	if b.Max != (Point{X: 5, Y: 8}) {
		t.Errorf("Max not normalized: got %v", b.Max)
	}
}

func TestBoxUnion(t *testing.T) {
	b1 := NewBox(NewPoint(0, 0), NewPoint(2, 2))
	b2 := NewBox(NewPoint(1, -1), NewPoint(4, 1))
	u := b1.Union(b2)

	expected := NewBox(NewPoint(0, -1), NewPoint(4, 2))
	if u != expected {
		t.Errorf("Union failed: expected %v, got %v", expected, u)
	}
}

func TestBoxUnionWithEmpty(t *testing.T) {
	b := NewBox(NewPoint(0, 0), NewPoint(1, 1))

	if EmptyBox().Union(b) != b {
		t.Error("empty union box should yield the box itself")
	}
	if b.Union(EmptyBox()) != b {
		t.Error("box union empty should yield the box itself")
	}
}

func TestBoxInside(t *testing.T) {
	outer := NewBox(NewPoint(0, 0), NewPoint(10, 10))

	tests := []struct {
		name     string
		box      Box
		expected bool
	}{
		{"fully inside", NewBox(NewPoint(2, 2), NewPoint(8, 8)), true},
		{"on boundary", NewBox(NewPoint(0, 0), NewPoint(10, 10)), true},
		{"straddling", NewBox(NewPoint(5, 5), NewPoint(15, 8)), false},
		{"outside", NewBox(NewPoint(20, 20), NewPoint(30, 30)), false},
	}

	for _, tt := range tests {
		if got := tt.box.Inside(outer); got != tt.expected {
			t.Errorf("%s: Inside = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestBoxTouches(t *testing.T) {
	b := NewBox(NewPoint(0, 0), NewPoint(10, 10))

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"overlapping", NewBox(NewPoint(5, 5), NewPoint(15, 15)), true},
		{"edge contact", NewBox(NewPoint(10, 0), NewPoint(20, 10)), true},
		{"corner contact", NewBox(NewPoint(10, 10), NewPoint(20, 20)), true},
		{"zero-area point hit", NewBoxAt(NewPoint(3, 3)), true},
		{"disjoint", NewBox(NewPoint(11, 11), NewPoint(20, 20)), false},
	}

	for _, tt := range tests {
		if got := b.Touches(tt.other); got != tt.expected {
			t.Errorf("%s: Touches = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestBoxMoved(t *testing.T) {
	b := NewBox(NewPoint(0, 0), NewPoint(2, 3))
	moved := b.Moved(NewVector(10, -5))

	expected := NewBox(NewPoint(10, -5), NewPoint(12, -2))
	if moved != expected {
		t.Errorf("Moved failed: expected %v, got %v", expected, moved)
	}
}

func TestBoxBottomLeft(t *testing.T) {
	b := NewBox(NewPoint(4, 9), NewPoint(1, 3))

	if b.BottomLeft() != NewPoint(1, 3) {
		t.Errorf("BottomLeft failed: got %v", b.BottomLeft())
	}
}
