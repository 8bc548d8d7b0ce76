package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/floorplan/pkg/geom"
)

// BSP subdivides the whole canvas into one leaf per room and assigns rooms to
// leaves: the most important room gets the largest leaf. The largest leaf is
// split first, along the axis that keeps both halves closer to square, at a
// random position that leaves each half at least MinLeafSide on that axis.
// Sibling leaves share the wall line at the cut. Splitting stops when every
// room has a leaf or no leaf can be split; rooms without a leaf are dropped.
func (l *Layouter) BSP() Plan {
	l.reset()
	minSide := l.cfg.MinLeafSide
	leaves := []geom.Rect{l.canvas}

	for len(leaves) < len(l.g.Rooms) {
		idx := -1
		for i, lf := range leaves {
			if splittable(lf, minSide) && (idx < 0 || lf.Area() > leaves[idx].Area()) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		a, b := l.split(leaves[idx], minSide)
		leaves[idx] = a
		leaves = slices.Insert(leaves, idx+1, b)
	}

	slices.SortStableFunc(leaves, func(a, b geom.Rect) int {
		return cmp.Compare(b.Area(), a.Area())
	})

	rooms := make([]int, len(l.g.Rooms))
	for i := range rooms {
		rooms[i] = i
	}
	slices.SortStableFunc(rooms, func(a, b int) int {
		ia := l.cfg.Types.Lookup(l.g.Rooms[a].Type).Importance
		ib := l.cfg.Types.Lookup(l.g.Rooms[b].Type).Importance
		return cmp.Compare(ib, ia)
	})

	for k, i := range rooms {
		if k >= len(leaves) {
			break
		}
		l.place(i, leaves[k])
	}
	return l.finish(BSP, rooms[0])
}

func splittable(r geom.Rect, minSide int) bool {
	return r.W >= 2*minSide-1 || r.H >= 2*minSide-1
}

// split cuts r into two leaves sharing the wall line at the cut.
func (l *Layouter) split(r geom.Rect, minSide int) (geom.Rect, geom.Rect) {
	canV := r.W >= 2*minSide-1
	canH := r.H >= 2*minSide-1
	vertical := canV
	if canV && canH {
		vertical = geom.Aspect(r.W/2, r.H) <= geom.Aspect(r.W, r.H/2)
	}

	length := r.H
	if vertical {
		length = r.W
	}
	// Cut offset c is the shared line; halves are c+1 and length-c long.
	lo, hi := minSide-1, length-minSide
	c := lo + l.rng.IntN(hi-lo+1)

	if vertical {
		return geom.Rect{X: r.X, Y: r.Y, W: c + 1, H: r.H},
			geom.Rect{X: r.X + c, Y: r.Y, W: r.W - c, H: r.H}
	}
	return geom.Rect{X: r.X, Y: r.Y, W: r.W, H: c + 1},
		geom.Rect{X: r.X, Y: r.Y + c, W: r.W, H: r.H - c}
}
