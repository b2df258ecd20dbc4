package replex

import (
	"image/color"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"just inside top-left", 10.001, 20.001, true},
		{"top-left corner", 10, 20, false},
		{"bottom-right corner", 110, 70, false},
		{"left edge", 10, 40, false},
		{"right edge", 110, 40, false},
		{"top edge", 50, 20, false},
		{"bottom edge", 50, 70, false},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectContainsZeroSize(t *testing.T) {
	r := Rect{5, 5, 0, 0}
	if r.Contains(5, 5) {
		t.Error("zero-size rect should contain nothing")
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestColorRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint32
	}{
		{"opaque white", ColorWhite, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", ColorTransparent, 0, 0, 0, 0},
		{"half red", Color{1, 0, 0, 0.5}, 0x8000, 0, 0, 0x8000},
		{"clamped", Color{2, -1, 0, 1}, 0xffff, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c color.Color = tt.c
			r, g, b, a := c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{1, 2}
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 2}) {
		t.Errorf("Sub = %v, want {2 2}", got)
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventMouseLeave.String(); got != "MouseLeave" {
		t.Errorf("String() = %q, want MouseLeave", got)
	}
	if got := EventKind(200).String(); got != "Unknown" {
		t.Errorf("String() = %q, want Unknown", got)
	}
}
