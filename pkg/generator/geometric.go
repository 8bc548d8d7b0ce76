package generator

import (
	"github.com/matzehuels/floorplan/pkg/carve"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// hallHalfWidth is the distance from the major axis to the first row
// reserved for rooms on either side.
const hallHalfWidth = 2

// geometric lays rooms out symmetrically inside an elliptical hall.
//
// The first room sits at the centre of the canvas. The remaining rooms line
// both sides of the hull's major axis, moving outward from the centre room,
// with a door in the wall that faces the axis. With Mirror set they come in
// pairs placed at mirrored positions left and right of the centre.
type geometric struct{ cfg Config }

func (s *geometric) Generate(g *roomgraph.Graph) (*tilemap.TileMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := newBuild(s.cfg, StyleGeometric, g)
	b.strategy = "hull"
	b.root = 0

	// Work in axis space, where the major axis is horizontal.
	transpose := g.Height > g.Width
	w, h := g.Width, g.Height
	if transpose {
		w, h = h, w
	}
	sizes := make([]geom.Size, len(g.Rooms))
	for i, r := range g.Rooms {
		sz := s.cfg.Types.SizeOf(r)
		sz.W, sz.H = min(sz.W, g.Width), min(sz.H, g.Height)
		if transpose {
			sz = sz.Swap()
		}
		sizes[i] = sz
	}

	rects, facing := symmetricSlots(w, h, sizes, s.cfg.Mirror)
	canvas := geom.Rect{W: w, H: h}
	for i := range rects {
		if rects[i].Empty() || !canvas.ContainsRect(rects[i]) {
			rects[i] = geom.Rect{}
			s.cfg.Logger.Warn("room unplaceable", "room", g.Rooms[i].ID, "strategy", b.strategy)
			continue
		}
		if transpose {
			rects[i] = swapRect(rects[i])
			facing[i] = swapPoint(facing[i])
		}
	}
	b.rects = rects

	// Hall floor, then rooms claim their interiors and raise their rings.
	cx, cy := float64(g.Width)/2, float64(g.Height)/2
	ax, ay := float64(g.Width)/2-1, float64(g.Height)/2-1
	b.grid.Bounds().Cells(func(p geom.Point) {
		dx := (float64(p.X) + 0.5 - cx) / ax
		dy := (float64(p.Y) + 0.5 - cy) / ay
		if dx*dx+dy*dy <= 1 {
			b.grid.Set(p, grid.Floor)
		}
	})
	for i, r := range b.rects {
		if r.Empty() {
			continue
		}
		r.Inset(1).Cells(func(p geom.Point) { b.grid.SetOwned(p, grid.Floor, i) })
	}
	for _, r := range b.rects {
		if !r.Empty() {
			b.grid.Ring(r)
		}
	}
	grid.SkinWalls(b.grid)

	b.doors = b.axisDoors(facing)
	return b.finish(), nil
}

// symmetricSlots places rooms in axis space. It returns each room's
// rectangle and the outward normal of the wall facing the axis.
func symmetricSlots(w, h int, sizes []geom.Size, mirror bool) ([]geom.Rect, []geom.Point) {
	rects := make([]geom.Rect, len(sizes))
	facing := make([]geom.Point, len(sizes))
	if len(sizes) == 0 {
		return rects, facing
	}
	cy := h / 2

	centre := geom.Rect{W: w, H: h}.Centered(sizes[0])
	rects[0] = centre
	facing[0] = geom.Point{X: 1}

	// Cursors hold the next free wall column per quadrant:
	// 0 right-above, 1 right-below, 2 left-above, 3 left-below.
	right, left := centre.Right()-1, centre.X
	cursor := [4]int{right, right, left, left}

	slot := func(i, q int, x int) {
		sz := sizes[i]
		r := geom.Rect{W: sz.W, H: sz.H}
		if q < 2 {
			r.X = x
		} else {
			r.X = x - sz.W + 1
		}
		if q%2 == 0 {
			r.Y = cy - hallHalfWidth - sz.H + 1
			facing[i] = geom.Point{Y: 1}
		} else {
			r.Y = cy + hallHalfWidth
			facing[i] = geom.Point{Y: -1}
		}
		rects[i] = r
	}

	if mirror {
		side := 0
		for i := 1; i < len(sizes); i += 2 {
			j := i + 1
			qr, ql := side, side+2
			step := sizes[i].W
			if j < len(sizes) {
				step = max(step, sizes[j].W)
			}
			// Both rooms start at the same distance from the centre.
			d := max(cursor[qr]-right, left-cursor[ql])
			slot(i, qr, right+d)
			if j < len(sizes) {
				slot(j, ql, left-d)
			}
			cursor[qr] = right + d + step - 1
			cursor[ql] = left - d - step + 1
			side = 1 - side
		}
		return rects, facing
	}

	for i := 1; i < len(sizes); i++ {
		q := (i - 1) % 4
		slot(i, q, cursor[q])
		if q < 2 {
			cursor[q] += sizes[i].W - 1
		} else {
			cursor[q] -= sizes[i].W - 1
		}
	}
	return rects, facing
}

// axisDoors opens one door per room in the wall whose outward normal is
// facing, centred on that wall.
func (b *build) axisDoors(facing []geom.Point) carve.DoorList {
	doors := carve.NewDoorList(len(b.rects))
	for i, r := range b.rects {
		if r.Empty() {
			continue
		}
		in := r.Inset(1)
		var wall geom.Rect
		switch f := facing[i]; {
		case f.Y > 0:
			wall = geom.Rect{X: in.X, Y: r.Bottom() - 1, W: in.W, H: 1}
		case f.Y < 0:
			wall = geom.Rect{X: in.X, Y: r.Y, W: in.W, H: 1}
		case f.X > 0:
			wall = geom.Rect{X: r.Right() - 1, Y: in.Y, W: 1, H: in.H}
		default:
			wall = geom.Rect{X: r.X, Y: in.Y, W: 1, H: in.H}
		}
		width := min(b.cfg.DoorWidth, max(wall.W, wall.H))
		var door geom.Rect
		if wall.H == 1 {
			door = geom.Rect{X: wall.X + (wall.W-width)/2, Y: wall.Y, W: width, H: 1}
		} else {
			door = geom.Rect{X: wall.X, Y: wall.Y + (wall.H-width)/2, W: 1, H: width}
		}
		door.Cells(func(p geom.Point) {
			if b.grid.Set(p, grid.Door) {
				doors.Add(i, p)
			}
		})
	}
	return doors
}

func swapRect(r geom.Rect) geom.Rect { return geom.Rect{X: r.Y, Y: r.X, W: r.H, H: r.W} }

func swapPoint(p geom.Point) geom.Point { return geom.Point{X: p.Y, Y: p.X} }
