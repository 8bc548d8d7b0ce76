package layout

import (
	"math/rand/v2"

	"github.com/matzehuels/floorplan/pkg/geom"
)

// Snap searches for a position of a child room of size s that shares a wall
// line with parent, lies inside canvas and collides with none of placed.
//
// Every position along the four sides of parent whose shared edge is at
// least minSeam cells long is a candidate. When neither room is long enough
// for minSeam, the shorter of the two sides is required instead, down to one
// cell. Candidates are shuffled with rng and the first free one wins.
func Snap(parent geom.Rect, s geom.Size, placed []geom.Rect, canvas geom.Rect, minSeam int, rng *rand.Rand) (geom.Rect, bool) {
	cands := snapCandidates(parent, s, minSeam)
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, c := range cands {
		if free(c, placed, canvas) {
			return c, true
		}
	}
	return geom.Rect{}, false
}

func snapCandidates(parent geom.Rect, s geom.Size, minSeam int) []geom.Rect {
	var out []geom.Rect

	// North and south: the child's bottom or top row is the parent's edge row.
	seam := max(1, min(minSeam, parent.W, s.W))
	for x := parent.X - s.W + seam; x <= parent.Right()-seam; x++ {
		out = append(out,
			geom.Rect{X: x, Y: parent.Y - s.H + 1, W: s.W, H: s.H},
			geom.Rect{X: x, Y: parent.Bottom() - 1, W: s.W, H: s.H},
		)
	}

	// West and east.
	seam = max(1, min(minSeam, parent.H, s.H))
	for y := parent.Y - s.H + seam; y <= parent.Bottom()-seam; y++ {
		out = append(out,
			geom.Rect{X: parent.X - s.W + 1, Y: y, W: s.W, H: s.H},
			geom.Rect{X: parent.Right() - 1, Y: y, W: s.W, H: s.H},
		)
	}
	return out
}

func free(r geom.Rect, placed []geom.Rect, canvas geom.Rect) bool {
	if !canvas.ContainsRect(r) {
		return false
	}
	for _, p := range placed {
		if r.Collides(p, geom.SharedWall) {
			return false
		}
	}
	return true
}
