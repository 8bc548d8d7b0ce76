package layout

import (
	"slices"

	"github.com/matzehuels/floorplan/pkg/geom"
)

// =============================================================================
// Spine
// =============================================================================

// Spine centres the anchor corridor and packs its neighbours along both long
// sides, alternating sides in connection order. Each side keeps a cursor so
// consecutive rooms share a wall line. Neighbours that overflow the corridor
// fall back to [Snap]; everything else grows from placed rooms.
func (l *Layouter) Spine(anchor int) Plan {
	l.reset()
	a := l.canvas.Centered(l.sizes[anchor])
	l.place(anchor, a)

	horizontal := a.W >= a.H
	var cursor [2]int
	if horizontal {
		cursor = [2]int{a.X, a.X}
	} else {
		cursor = [2]int{a.Y, a.Y}
	}

	for k, n := range l.adj[anchor] {
		if l.placed[n] {
			continue
		}
		side := k % 2
		s := l.sizes[n]

		var r geom.Rect
		var inSpan bool
		if horizontal {
			y := a.Y - s.H + 1
			if side == 1 {
				y = a.Bottom() - 1
			}
			r = geom.Rect{X: cursor[side], Y: y, W: s.W, H: s.H}
			inSpan = r.X <= a.Right()-min(l.minSeam, s.W)
		} else {
			x := a.X - s.W + 1
			if side == 1 {
				x = a.Right() - 1
			}
			r = geom.Rect{X: x, Y: cursor[side], W: s.W, H: s.H}
			inSpan = r.Y <= a.Bottom()-min(l.minSeam, s.H)
		}

		if inSpan && l.fits(r) {
			l.place(n, r)
			if horizontal {
				cursor[side] = r.Right() - 1
			} else {
				cursor[side] = r.Bottom() - 1
			}
			continue
		}
		l.snapTo(n, anchor)
	}

	l.grow(anchor)
	return l.finish(Spine, anchor)
}

// =============================================================================
// Hub
// =============================================================================

// hubSlots are tried in this order: the four side midpoints, then positions
// flush with a corner of the hub.
type hubSlot int

const (
	slotN hubSlot = iota
	slotE
	slotS
	slotW
	slotNE
	slotSE
	slotSW
	slotNW
	numSlots
)

func (h hubSlot) rect(a geom.Rect, s geom.Size) geom.Rect {
	r := geom.Rect{W: s.W, H: s.H}
	switch h {
	case slotN, slotS:
		r.X = a.X + (a.W-s.W)/2
	case slotE, slotW:
		r.Y = a.Y + (a.H-s.H)/2
	case slotNE:
		r.X, r.Y = a.Right()-s.W, a.Y-s.H+1
	case slotSE:
		r.X, r.Y = a.Right()-1, a.Bottom()-s.H
	case slotSW:
		r.X, r.Y = a.X, a.Bottom()-1
	case slotNW:
		r.X, r.Y = a.X-s.W+1, a.Y
	}
	switch h {
	case slotN:
		r.Y = a.Y - s.H + 1
	case slotS:
		r.Y = a.Bottom() - 1
	case slotE:
		r.X = a.Right() - 1
	case slotW:
		r.X = a.X - s.W + 1
	}
	return r
}

// Hub centres the anchor and places its neighbours on eight radial slots.
// The k-th neighbour starts its search at slot k so neighbours spread around
// the hub. Neighbours with no free slot fall back to [Snap].
func (l *Layouter) Hub(anchor int) Plan {
	l.reset()
	a := l.canvas.Centered(l.sizes[anchor])
	l.place(anchor, a)

	for k, n := range l.adj[anchor] {
		if l.placed[n] {
			continue
		}
		done := false
		for j := range numSlots {
			slot := (k + int(j)) % int(numSlots)
			r := hubSlot(slot).rect(a, l.sizes[n])
			if l.fits(r) {
				l.place(n, r)
				done = true
				break
			}
		}
		if !done {
			l.snapTo(n, anchor)
		}
	}

	l.grow(anchor)
	return l.finish(Hub, anchor)
}

// =============================================================================
// Cluster
// =============================================================================

// Cluster seeds the canvas centre with the anchor and attaches every other
// room, in breadth-first order, to a randomly chosen placed room it connects
// to. Rooms without a placed connection attach to any placed room.
func (l *Layouter) Cluster(anchor int) Plan {
	l.reset()
	l.place(anchor, l.canvas.Centered(l.sizes[anchor]))

	var pending []int
	for _, i := range l.bfsOrder(anchor)[1:] {
		if !l.attachRandom(i) {
			pending = append(pending, i)
		}
	}
	// Later rooms open new walls; retry once.
	for _, i := range pending {
		l.attachRandom(i)
	}
	return l.finish(Cluster, anchor)
}

func (l *Layouter) attachRandom(i int) bool {
	var linked, others []int
	for _, p := range l.order {
		if slices.Contains(l.adj[i], p) {
			linked = append(linked, p)
		} else {
			others = append(others, p)
		}
	}
	l.rng.Shuffle(len(linked), func(a, b int) { linked[a], linked[b] = linked[b], linked[a] })
	l.rng.Shuffle(len(others), func(a, b int) { others[a], others[b] = others[b], others[a] })
	for _, p := range append(linked, others...) {
		if l.snapTo(i, p) {
			return true
		}
	}
	return false
}
