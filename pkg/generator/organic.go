package generator

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// Cave automaton parameters.
const (
	caveFill       = 0.45
	caveSmoothing  = 5
	caveWallBirth  = 5 // a cell becomes rock with at least this many rock neighbours
	biomeFrequency = 0.08
)

// Cave floor sprites chosen by the biome noise.
var biomes = []struct {
	below  float64
	sprite string
}{
	{-0.35, "cave_dirt"},
	{0.35, "cave_stone"},
	{2, "cave_moss"},
}

// organic carves rooms into a cellular-automaton cave.
type organic struct{ cfg Config }

func (s *organic) Generate(g *roomgraph.Graph) (*tilemap.TileMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := newBuild(s.cfg, StyleOrganic, g)

	l := b.layouter()
	b.usePlan(l.Cluster(layout.Select(g, s.cfg.Types, "cluster").Anchor))

	// Rooms first, so their floor keeps its owner.
	for i, r := range b.rects {
		if !r.Empty() {
			b.grid.PaintFloor(r, i)
		}
	}

	rock := cave(g.Width, g.Height, b)
	b.grid.Each(func(p geom.Point, c grid.Cell, _ int) {
		if c == grid.Background && !rock[p.Y*g.Width+p.X] && !b.inRoom(p) {
			b.grid.Set(p, grid.Floor)
		}
	})
	grid.SkinWalls(b.grid)
	b.carveConnections()

	noise := opensimplex.New(int64(s.cfg.Seed))
	b.floor = func(p geom.Point) string {
		v := noise.Eval2(float64(p.X)*biomeFrequency, float64(p.Y)*biomeFrequency)
		for _, bm := range biomes {
			if v < bm.below {
				return bm.sprite
			}
		}
		return tilemap.SpriteFloor
	}
	return b.finish(), nil
}

// inRoom reports whether p lies in any placed room rectangle, walls included.
func (b *build) inRoom(p geom.Point) bool {
	for _, r := range b.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// cave returns a w×h rock mask grown by majority-rule smoothing from random
// fill. The border is always rock.
func cave(w, h int, b *build) []bool {
	rock := make([]bool, w*h)
	border := func(x, y int) bool { return x == 0 || y == 0 || x == w-1 || y == h-1 }
	for y := range h {
		for x := range w {
			rock[y*w+x] = border(x, y) || b.rng.Float64() < caveFill
		}
	}

	next := make([]bool, w*h)
	for range caveSmoothing {
		for y := range h {
			for x := range w {
				if border(x, y) {
					next[y*w+x] = true
					continue
				}
				n := 0
				for _, d := range geom.Neighbors8 {
					nx, ny := x+d.X, y+d.Y
					if nx < 0 || ny < 0 || nx >= w || ny >= h || rock[ny*w+nx] {
						n++
					}
				}
				next[y*w+x] = n >= caveWallBirth
			}
		}
		rock, next = next, rock
	}
	return rock
}
