package furnish

import (
	"cmp"
	"io"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/boljen/go-bitmap"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// Rotations in search order.
var Rotations = [4]int{0, 90, 180, 270}

// facingCone is cos(60°): a facing item may point at most 60° away from its
// target's centre.
const facingCone = 0.5

// Placement is one placed furniture item.
type Placement struct {
	Type     string
	Sprite   string
	Rect     geom.Rect // rotated footprint; X,Y is the anchor
	Rotation int
}

// Direction returns the unit vector the item faces.
func Direction(rotation int) (float64, float64) {
	switch rotation {
	case 90:
		return -1, 0
	case 180:
		return 0, -1
	case 270:
		return 1, 0
	default:
		return 0, 1
	}
}

// Solver places furniture. It is not safe for concurrent use because it
// draws from a shared random source.
type Solver struct {
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger
}

// NewSolver creates a solver over rules. A nil logger discards output.
func NewSolver(rules Rules, rng *rand.Rand, logger *log.Logger) *Solver {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Solver{rules: rules, rng: rng, logger: logger}
}

// Order returns the requested items in placement order: items come after the
// items they face, then larger footprints first, then request order.
func (s *Solver) Order(items []string) []string {
	requested := make(map[string]bool, len(items))
	for _, it := range items {
		requested[it] = true
	}

	depth := func(typ string) int {
		d := 0
		seen := map[string]bool{typ: true}
		for t := s.rules.Lookup(typ).Faces; t != "" && requested[t] && !seen[t]; t = s.rules.Lookup(t).Faces {
			seen[t] = true
			d++
		}
		return d
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b string) int {
		if c := cmp.Compare(depth(a), depth(b)); c != 0 {
			return c
		}
		return cmp.Compare(s.rules.Lookup(b).Footprint.Area(), s.rules.Lookup(a).Footprint.Area())
	})
	return out
}

// Furnish places items in the room owning index room on g. doors are the
// room's door cells. Placements are returned in placement order.
func (s *Solver) Furnish(g *grid.Grid, room int, doors []geom.Point, items []string) []Placement {
	zones := g.Zones(room)
	if zones.Len() == 0 || len(items) == 0 {
		return nil
	}

	occupied := bitmap.New(g.Width() * g.Height())
	index := func(p geom.Point) int { return p.Y*g.Width() + p.X }

	blocked := make(map[geom.Point]bool)
	for _, d := range doors {
		blocked[d] = true
		for _, n := range geom.Neighbors4 {
			if q := d.Add(n); zones.Contains(q) {
				blocked[q] = true
			}
		}
	}

	var placed []Placement
	for _, typ := range s.Order(items) {
		rule := s.rules.Lookup(typ)
		target, hasTarget := firstOfType(placed, rule.Faces)

		p, ok := s.search(zones, rule, func(r geom.Rect, rot int) bool {
			fits := true
			r.Cells(func(c geom.Point) {
				switch {
				case !fits:
				case !zones.Contains(c), occupied.Get(index(c)):
					fits = false
				case rule.BlocksDoor && blocked[c]:
					fits = false
				}
			})
			if !fits {
				return false
			}
			return !hasTarget || faces(r, rot, target.Rect)
		})
		if !ok {
			s.logger.Debug("furniture dropped", "room", room, "item", typ)
			continue
		}
		p.Type, p.Sprite = typ, rule.Sprite
		p.Rect.Cells(func(c geom.Point) { occupied.Set(index(c), true) })
		placed = append(placed, p)
	}
	return placed
}

// search tries, per preferred zone, every zone cell in random order as the
// anchor and every rotation, returning the first accepted candidate.
func (s *Solver) search(zones grid.ZoneMap, rule Rule, accept func(geom.Rect, int) bool) (Placement, bool) {
	for _, z := range rule.Zones {
		cells := zones.Cells(z)
		s.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, c := range cells {
			for _, rot := range Rotations {
				size := rule.Footprint
				if rot == 90 || rot == 270 {
					size = size.Swap()
				}
				r := geom.RectAt(c, size)
				if accept(r, rot) {
					return Placement{Rect: r, Rotation: rot}, true
				}
			}
		}
	}
	return Placement{}, false
}

func firstOfType(placed []Placement, typ string) (Placement, bool) {
	if typ == "" {
		return Placement{}, false
	}
	for _, p := range placed {
		if p.Type == typ {
			return p, true
		}
	}
	return Placement{}, false
}

// faces reports whether an item at r with rotation rot points toward target.
func faces(r geom.Rect, rot int, target geom.Rect) bool {
	ax, ay := r.CenterF()
	bx, by := target.CenterF()
	dx, dy := bx-ax, by-ay
	n := math.Hypot(dx, dy)
	if n == 0 {
		return true
	}
	ux, uy := Direction(rot)
	return (ux*dx+uy*dy)/n >= facingCone
}
