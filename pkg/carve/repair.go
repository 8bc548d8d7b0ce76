package carve

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// Repair makes every placed room reachable from root.
//
// Reachability is a 4-neighbour flood fill over Floor and Door cells starting
// in the root room's interior. While some room is unreached, the first one
// is joined to the reached room whose centre is nearest by digging a two-cell
// wide L-shaped path between the two centres: Background becomes Floor and
// Wall becomes Door. Walls are re-skinned after every dig, and door cells
// dug through a room's wall ring are added to that room's door list.
//
// Repair returns the number of paths dug. A room that is still unreached
// after its path was dug is logged and given up on.
func Repair(g *grid.Grid, rects []geom.Rect, root int, doors DoorList, logger *log.Logger) int {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if root < 0 || root >= len(rects) || rects[root].Empty() {
		return 0
	}

	dug := 0
	tried := mapset.New[int]()
	for {
		reached := Reachable(g, rects[root])
		from := -1
		for i, r := range rects {
			if r.Empty() || roomReached(r, reached) || tried.Has(i) {
				continue
			}
			from = i
			break
		}
		if from < 0 {
			break
		}
		to := nearestReached(rects, from, reached)
		tried.Put(from)
		if to < 0 {
			continue
		}

		dig(g, rects, doors, rects[from].Center(), rects[to].Center())
		grid.SkinWalls(g)
		dug++
		logger.Debug("connectivity repaired", "room", from, "via", to)
	}

	// Report rooms that digging could not join.
	reached := Reachable(g, rects[root])
	for i, r := range rects {
		if !r.Empty() && !roomReached(r, reached) {
			logger.Warn("room unreachable", "room", i)
		}
	}
	return dug
}

// Reachable returns the passable cells 4-connected to the first passable
// cell inside r's interior.
func Reachable(g *grid.Grid, r geom.Rect) mapset.Set[geom.Point] {
	seen := mapset.New[geom.Point]()
	var queue []geom.Point
	r.Inset(1).Cells(func(p geom.Point) {
		if len(queue) == 0 && g.At(p).Passable() {
			queue = append(queue, p)
			seen.Put(p)
		}
	})
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range geom.Neighbors4 {
			q := p.Add(d)
			if seen.Has(q) || !g.At(q).Passable() {
				continue
			}
			seen.Put(q)
			queue = append(queue, q)
		}
	}
	return seen
}

// Connected reports whether every non-empty rectangle in rects has a
// passable interior cell reachable from root.
func Connected(g *grid.Grid, rects []geom.Rect, root int) bool {
	reached := Reachable(g, rects[root])
	for _, r := range rects {
		if !r.Empty() && !roomReached(r, reached) {
			return false
		}
	}
	return true
}

func roomReached(r geom.Rect, reached mapset.Set[geom.Point]) bool {
	found := false
	r.Inset(1).Cells(func(p geom.Point) {
		if !found && reached.Has(p) {
			found = true
		}
	})
	return found
}

func nearestReached(rects []geom.Rect, from int, reached mapset.Set[geom.Point]) int {
	best, dist := -1, 0
	c := rects[from].Center()
	for i, r := range rects {
		if i == from || r.Empty() || !roomReached(r, reached) {
			continue
		}
		if d := geom.Manhattan(c, r.Center()); best < 0 || d < dist {
			best, dist = i, d
		}
	}
	return best
}

// dig opens a two-wide path from a to b, horizontal leg first.
func dig(g *grid.Grid, rects []geom.Rect, doors DoorList, a, b geom.Point) {
	open := func(p geom.Point) {
		switch g.At(p) {
		case grid.Background:
			if g.In(p) {
				g.Set(p, grid.Floor)
			}
		case grid.Wall:
			g.Set(p, grid.Door)
			for i, r := range rects {
				if onRing(r, p) {
					doors.Add(i, p)
				}
			}
		}
	}
	// The second lane runs below or right of the first, or above/left at the edge.
	lane := func(p, off geom.Point) {
		open(p)
		q := p.Add(off)
		if !g.In(q) {
			q = geom.Point{X: p.X - off.X, Y: p.Y - off.Y}
		}
		open(q)
	}

	step := 1
	if b.X < a.X {
		step = -1
	}
	for x := a.X; x != b.X; x += step {
		lane(geom.Point{X: x, Y: a.Y}, geom.Point{Y: 1})
	}
	step = 1
	if b.Y < a.Y {
		step = -1
	}
	for y := a.Y; y != b.Y+step; y += step {
		lane(geom.Point{X: b.X, Y: y}, geom.Point{X: 1})
	}
}

func onRing(r geom.Rect, p geom.Point) bool {
	return !r.Empty() && r.Contains(p) && !r.Inset(1).Contains(p)
}
