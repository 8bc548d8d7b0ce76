package grid

import "github.com/matzehuels/floorplan/pkg/geom"

// Zone classifies a room's floor cell for furniture placement.
type Zone int

const (
	// WallAdjacent cells have at least one orthogonal neighbour that is not
	// floor of the same room.
	WallAdjacent Zone = iota
	// Interior cells are surrounded by the room's own floor.
	Interior
)

func (z Zone) String() string {
	if z == Interior {
		return "interior"
	}
	return "wall"
}

// ZoneMap is the zone classification of one room's floor.
type ZoneMap struct {
	zones map[geom.Point]Zone
	wall  []geom.Point
	inner []geom.Point
}

// Zones classifies every floor cell owned by room.
func (g *Grid) Zones(room int) ZoneMap {
	zm := ZoneMap{zones: map[geom.Point]Zone{}}
	for _, p := range g.FloorOf(room) {
		z := Interior
		for _, d := range geom.Neighbors4 {
			q := p.Add(d)
			if g.At(q) != Floor || g.Owner(q) != room {
				z = WallAdjacent
				break
			}
		}
		zm.zones[p] = z
		if z == Interior {
			zm.inner = append(zm.inner, p)
		} else {
			zm.wall = append(zm.wall, p)
		}
	}
	return zm
}

// Of returns the zone of p and whether p is floor of the room.
func (zm ZoneMap) Of(p geom.Point) (Zone, bool) {
	z, ok := zm.zones[p]
	return z, ok
}

// Contains reports whether p is floor of the room.
func (zm ZoneMap) Contains(p geom.Point) bool {
	_, ok := zm.zones[p]
	return ok
}

// Cells returns the cells of zone z in row-major order. The slice is a copy.
func (zm ZoneMap) Cells(z Zone) []geom.Point {
	src := zm.wall
	if z == Interior {
		src = zm.inner
	}
	return append([]geom.Point(nil), src...)
}

// Len returns the number of classified floor cells.
func (zm ZoneMap) Len() int { return len(zm.zones) }
