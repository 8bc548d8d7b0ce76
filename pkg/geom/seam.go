package geom

// Axis is the orientation of the wall between two rooms.
type Axis int

const (
	// Vertical walls separate rooms that sit side by side.
	Vertical Axis = iota
	// Horizontal walls separate rooms stacked on top of each other.
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Seam is the wall between two touching rooms.
type Seam struct {
	Axis Axis
	// Wall covers the wall cells between the two interiors along the shared span.
	// It is one cell thick for a shared wall line and two for abutting rings.
	Wall Rect
}

// Span returns the number of interior cells both rooms share along the seam.
func (s Seam) Span() int {
	if s.Axis == Vertical {
		return s.Wall.H
	}
	return s.Wall.W
}

// Door returns the part of the wall, width cells wide, centred on the span's midpoint.
// ok is false when the span is narrower than width.
func (s Seam) Door(width int) (Rect, bool) {
	span := s.Span()
	if width <= 0 || span < width {
		return Rect{}, false
	}
	off := (span - width) / 2
	if s.Axis == Vertical {
		return Rect{X: s.Wall.X, Y: s.Wall.Y + off, W: s.Wall.W, H: width}, true
	}
	return Rect{X: s.Wall.X + off, Y: s.Wall.Y, W: width, H: s.Wall.H}, true
}

// SeamBetween finds the wall separating two room rectangles (walls included).
// The rooms touch when their interiors are one or two cells apart on one axis
// and overlap on the other.
func SeamBetween(a, b Rect) (Seam, bool) {
	ia, ib := a.Inset(1), b.Inset(1)
	if ia.Empty() || ib.Empty() {
		return Seam{}, false
	}
	if ib.X < ia.X {
		ia, ib = ib, ia
	}
	if gap := ib.X - ia.Right(); gap >= 1 && gap <= 2 {
		lo, hi := max(ia.Y, ib.Y), min(ia.Bottom(), ib.Bottom())
		if hi > lo {
			return Seam{Axis: Vertical, Wall: Rect{X: ia.Right(), Y: lo, W: gap, H: hi - lo}}, true
		}
	}
	ia, ib = a.Inset(1), b.Inset(1)
	if ib.Y < ia.Y {
		ia, ib = ib, ia
	}
	if gap := ib.Y - ia.Bottom(); gap >= 1 && gap <= 2 {
		lo, hi := max(ia.X, ib.X), min(ia.Right(), ib.Right())
		if hi > lo {
			return Seam{Axis: Horizontal, Wall: Rect{X: lo, Y: ia.Bottom(), W: hi - lo, H: gap}}, true
		}
	}
	return Seam{}, false
}
