package grid

import (
	"strings"

	"github.com/matzehuels/floorplan/pkg/geom"
)

// NoOwner marks cells that belong to no room.
const NoOwner = -1

// Grid is a width×height array of cells with per-cell room ownership.
//
// A Grid has a single writer; generators own their grid for the duration of
// one run. The zero value is not usable - use New.
type Grid struct {
	w, h  int
	cells []Cell
	owner []int
}

// New creates a grid filled with Background.
func New(w, h int) *Grid {
	g := &Grid{w: w, h: h, cells: make([]Cell, w*h), owner: make([]int, w*h)}
	for i := range g.owner {
		g.owner[i] = NoOwner
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() geom.Rect { return geom.Rect{W: g.w, H: g.h} }

// In reports whether p lies on the grid.
func (g *Grid) In(p geom.Point) bool { return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h }

func (g *Grid) idx(p geom.Point) int { return p.Y*g.w + p.X }

// At returns the cell at p; cells off the grid read as Background.
func (g *Grid) At(p geom.Point) Cell {
	if !g.In(p) {
		return Background
	}
	return g.cells[g.idx(p)]
}

// Owner returns the room index owning p, or NoOwner.
func (g *Grid) Owner(p geom.Point) int {
	if !g.In(p) {
		return NoOwner
	}
	return g.owner[g.idx(p)]
}

// Set promotes the cell at p to c. It returns false, leaving the grid
// untouched, when p is off the grid or the transition would demote the cell.
func (g *Grid) Set(p geom.Point, c Cell) bool {
	if !g.In(p) {
		return false
	}
	i := g.idx(p)
	if !g.cells[i].CanBecome(c) {
		return false
	}
	g.cells[i] = c
	return true
}

// SetOwned promotes the cell at p and assigns it to owner.
func (g *Grid) SetOwned(p geom.Point, c Cell, owner int) bool {
	if !g.Set(p, c) {
		return false
	}
	g.owner[g.idx(p)] = owner
	return true
}

// Count returns how many cells are in state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p geom.Point, c Cell, owner int)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			fn(geom.Point{X: x, Y: y}, g.cells[i], g.owner[i])
		}
	}
}

// FloorOf returns the floor cells owned by room in row-major order.
func (g *Grid) FloorOf(room int) []geom.Point {
	var out []geom.Point
	g.Each(func(p geom.Point, c Cell, owner int) {
		if owner == room && c == Floor {
			out = append(out, p)
		}
	})
	return out
}

// String renders the grid as text, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			b.WriteRune(g.cells[y*g.w+x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// =============================================================================
// Rasterizer & Wall Skinner
// =============================================================================

// PaintFloor fills the interior of room rectangle r with Floor owned by owner.
// Cells already promoted past Floor are left alone. It returns the number of
// cells painted.
func (g *Grid) PaintFloor(r geom.Rect, owner int) int {
	n := 0
	r.Inset(1).Intersect(g.Bounds()).Cells(func(p geom.Point) {
		if g.At(p) == Background && g.SetOwned(p, Floor, owner) {
			n++
		}
	})
	return n
}

// Rasterize paints every room's interior; room i owns its cells.
func Rasterize(g *Grid, rooms []geom.Rect) {
	for i, r := range rooms {
		g.PaintFloor(r, i)
	}
}

// SkinWalls promotes every Background cell that touches Floor (including
// diagonally) to Wall. Background cells with no floor neighbour stay
// Background. It returns the number of walls added.
func SkinWalls(g *Grid) int {
	var add []geom.Point
	g.Each(func(p geom.Point, c Cell, _ int) {
		if c != Background {
			return
		}
		for _, d := range geom.Neighbors8 {
			if g.At(p.Add(d)) == Floor {
				add = append(add, p)
				return
			}
		}
	})
	for _, p := range add {
		g.Set(p, Wall)
	}
	return len(add)
}

// Ring promotes the border cells of r to Wall. Cells already Door stay Door.
func (g *Grid) Ring(r geom.Rect) {
	r.Cells(func(p geom.Point) {
		if p.X == r.X || p.Y == r.Y || p.X == r.Right()-1 || p.Y == r.Bottom()-1 {
			g.Set(p, Wall)
		}
	})
}
