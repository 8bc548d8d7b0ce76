package carve

import (
	"slices"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// DoorList holds the door cells of every room, indexed like the room list.
type DoorList [][]geom.Point

// NewDoorList returns an empty door list for n rooms.
func NewDoorList(n int) DoorList { return make(DoorList, n) }

// Add records p as a door cell of room. Duplicates are ignored.
func (d DoorList) Add(room int, p geom.Point) {
	if room < 0 || room >= len(d) || slices.Contains(d[room], p) {
		return
	}
	d[room] = append(d[room], p)
}

// Doors carves a width-wide door, centred on the shared span, between every
// pair of rooms in pairs whose rectangles touch. rects is indexed by room;
// an empty rectangle marks a room that was not placed. Pairs that do not
// touch, or whose shared span is narrower than width, are skipped.
func Doors(g *grid.Grid, rects []geom.Rect, pairs [][2]int, width int) DoorList {
	doors := NewDoorList(len(rects))
	for _, pr := range pairs {
		a, b := pr[0], pr[1]
		if rects[a].Empty() || rects[b].Empty() {
			continue
		}
		seam, ok := geom.SeamBetween(rects[a], rects[b])
		if !ok {
			continue
		}
		door, ok := seam.Door(width)
		if !ok {
			continue
		}
		door.Cells(func(p geom.Point) {
			if g.At(p) == grid.Wall {
				g.Set(p, grid.Door)
			}
			if g.At(p) == grid.Door {
				doors.Add(a, p)
				doors.Add(b, p)
			}
		})
	}
	return doors
}
