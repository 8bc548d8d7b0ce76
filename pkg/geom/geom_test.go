package geom

import "testing"

func TestCollides(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 8}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"shared wall", Rect{X: 9, Y: 0, W: 6, H: 8}, false},
		{"abutting", Rect{X: 10, Y: 0, W: 6, H: 8}, false},
		{"two cell overlap", Rect{X: 8, Y: 0, W: 6, H: 8}, true},
		{"corner only", Rect{X: 9, Y: 7, W: 4, H: 4}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 3, H: 3}, false},
		{"contained", Rect{X: 2, Y: 2, W: 3, H: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Collides(tt.b, SharedWall); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
			if tt.want == false && a.OverlapsInset(tt.b, 1) {
				t.Errorf("interiors overlap for non-colliding rect %+v", tt.b)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 5, H: 5}
	b := Rect{X: 3, Y: 4, W: 5, H: 5}
	got := a.Intersect(b)
	want := Rect{X: 3, Y: 4, W: 2, H: 1}
	if got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}
	if !a.Intersect(Rect{X: 5, Y: 0, W: 2, H: 2}).Empty() {
		t.Error("touching rects should have an empty intersection")
	}
}

func TestAspect(t *testing.T) {
	if got := (Rect{W: 16, H: 4}).Aspect(); got != 4 {
		t.Errorf("Aspect() = %v, want 4", got)
	}
	if got := Aspect(3, 3); got != 1 {
		t.Errorf("Aspect(3,3) = %v, want 1", got)
	}
}

func TestSeamBetween(t *testing.T) {
	corridor := Rect{X: 10, Y: 10, W: 16, H: 4}

	t.Run("shared wall above", func(t *testing.T) {
		room := Rect{X: 10, Y: 4, W: 8, H: 7}
		s, ok := SeamBetween(corridor, room)
		if !ok {
			t.Fatal("expected seam")
		}
		if s.Axis != Horizontal {
			t.Errorf("Axis = %v, want horizontal", s.Axis)
		}
		want := Rect{X: 11, Y: 10, W: 6, H: 1}
		if s.Wall != want {
			t.Errorf("Wall = %+v, want %+v", s.Wall, want)
		}
		door, ok := s.Door(2)
		if !ok {
			t.Fatal("expected door")
		}
		if door != (Rect{X: 13, Y: 10, W: 2, H: 1}) {
			t.Errorf("Door = %+v", door)
		}
	})

	t.Run("abutting rings side by side", func(t *testing.T) {
		room := Rect{X: 26, Y: 9, W: 6, H: 6}
		s, ok := SeamBetween(corridor, room)
		if !ok {
			t.Fatal("expected seam")
		}
		if s.Axis != Vertical || s.Wall.W != 2 {
			t.Errorf("seam = %+v, want vertical two cells thick", s)
		}
		if s.Span() != 2 {
			t.Errorf("Span() = %d, want 2", s.Span())
		}
	})

	t.Run("apart", func(t *testing.T) {
		if _, ok := SeamBetween(corridor, Rect{X: 40, Y: 40, W: 5, H: 5}); ok {
			t.Error("distant rooms should not have a seam")
		}
	})

	t.Run("narrow span has no door", func(t *testing.T) {
		room := Rect{X: 25, Y: 3, W: 6, H: 8}
		s, ok := SeamBetween(corridor, room)
		if ok {
			if _, door := s.Door(2); door {
				t.Errorf("corner contact should not fit a door: %+v", s)
			}
		}
	})
}
