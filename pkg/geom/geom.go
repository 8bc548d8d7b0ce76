package geom

import "math"

// SharedWall is the overlap tolerated between two room rectangles: exactly the
// one wall line they may have in common.
const SharedWall = 1

// =============================================================================
// Point & Size
// =============================================================================

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Neighbors4 lists the orthogonal offsets in north, east, south, west order.
var Neighbors4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors8 lists all eight surrounding offsets, row by row.
var Neighbors8 = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Size is a width/height pair.
type Size struct {
	W int `json:"width" toml:"width"`
	H int `json:"height" toml:"height"`
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Swap returns the size rotated by a quarter turn.
func (s Size) Swap() Size { return Size{W: s.H, H: s.W} }

// Aspect returns the ratio of the longer side to the shorter side.
func (s Size) Aspect() float64 { return Aspect(s.W, s.H) }

// =============================================================================
// Rect
// =============================================================================

// Rect is a half-open integer rectangle covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// RectAt builds a rectangle of size s anchored at p.
func RectAt(p Point, s Size) Rect { return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H} }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Area returns W*H, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side. Negative n grows it.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Intersect returns the overlapping region, which is empty when r and o are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool { return !r.Intersect(o).Empty() }

// OverlapsInset reports whether r and o still overlap after both are shrunk by inset.
// An inset of 1 compares room interiors.
func (r Rect) OverlapsInset(o Rect, inset int) bool {
	return r.Inset(inset).Overlaps(o.Inset(inset))
}

// Collides reports whether r and o overlap by more than seam cells on both axes.
// With seam = [SharedWall], two rooms sharing a wall line do not collide.
func (r Rect) Collides(o Rect, seam int) bool {
	ix := r.Intersect(o)
	return ix.W > seam && ix.H > seam
}

// Center returns the integer centroid, rounded toward the top-left.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// CenterF returns the exact centroid.
func (r Rect) CenterF() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Aspect returns the ratio of the longer side to the shorter side (≥ 1).
func (r Rect) Aspect() float64 { return Aspect(r.W, r.H) }

// Cells calls fn for every cell of r, row by row.
func (r Rect) Cells(fn func(p Point)) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Centered returns a rectangle of size s centred inside r.
func (r Rect) Centered(s Size) Rect {
	return Rect{X: r.X + (r.W-s.W)/2, Y: r.Y + (r.H-s.H)/2, W: s.W, H: s.H}
}

// Aspect returns max(w,h)/min(w,h), or +Inf for a degenerate side.
func Aspect(w, h int) float64 {
	lo, hi := min(w, h), max(w, h)
	if lo <= 0 {
		return math.Inf(1)
	}
	return float64(hi) / float64(lo)
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan returns the taxicab distance between p and q.
func Manhattan(p, q Point) int { return Abs(p.X-q.X) + Abs(p.Y-q.Y) }
