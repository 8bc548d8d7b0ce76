package furnish

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// room builds a grid holding a single room r (walls included), owned by index 0.
func room(r geom.Rect, doors ...geom.Point) *grid.Grid {
	g := grid.New(r.Right(), r.Bottom())
	g.PaintFloor(r, 0)
	g.Ring(r)
	for _, d := range doors {
		g.Set(d, grid.Door)
	}
	return g
}

func newSolver(seed uint64) *Solver {
	return NewSolver(DefaultRules(), rand.New(rand.NewPCG(seed, seed^0xdeadbeef)), nil)
}

func TestOrder(t *testing.T) {
	tests := []struct {
		items []string
		want  []string
	}{
		{[]string{"tv", "sofa"}, []string{"sofa", "tv"}},
		{[]string{"chest", "table", "lamp"}, []string{"table", "chest", "lamp"}},
		{[]string{"armchair", "tv", "sofa"}, []string{"sofa", "tv", "armchair"}},
		{[]string{"tv", "chest"}, []string{"tv", "chest"}},
		{[]string{"chair", "chair", "table"}, []string{"table", "chair", "chair"}},
	}
	s := newSolver(1)
	for _, tt := range tests {
		if got := s.Order(tt.items); !slices.Equal(got, tt.want) {
			t.Errorf("Order(%v) = %v, want %v", tt.items, got, tt.want)
		}
	}
}

func TestBedAvoidsDoor(t *testing.T) {
	r := geom.Rect{W: 7, H: 7}
	door := geom.Point{X: 3, Y: 6}
	threshold := geom.Point{X: 3, Y: 5}

	for seed := range uint64(50) {
		g := room(r, door)
		got := newSolver(seed).Furnish(g, 0, []geom.Point{door}, []string{"bed", "chest"})
		if len(got) != 2 {
			t.Fatalf("seed %d: placed %d items, want 2", seed, len(got))
		}
		bed, chest := got[0], got[1]
		if bed.Type != "bed" {
			t.Fatalf("seed %d: first item = %s, want bed", seed, bed.Type)
		}
		if bed.Rect.Contains(door) || bed.Rect.Contains(threshold) {
			t.Errorf("seed %d: bed %v blocks the door", seed, bed.Rect)
		}
		if bed.Rect.Overlaps(chest.Rect) {
			t.Errorf("seed %d: chest %v overlaps bed %v", seed, chest.Rect, bed.Rect)
		}
		for _, p := range got {
			p.Rect.Cells(func(c geom.Point) {
				if g.At(c) != grid.Floor {
					t.Errorf("seed %d: %s covers %v cell %v", seed, p.Type, g.At(c), c)
				}
			})
		}
	}
}

func TestFacing(t *testing.T) {
	r := geom.Rect{W: 8, H: 8}
	for seed := range uint64(20) {
		got := newSolver(seed).Furnish(room(r), 0, nil, []string{"tv", "sofa"})
		if len(got) != 2 {
			t.Fatalf("seed %d: placed %d items, want 2", seed, len(got))
		}
		if got[0].Type != "sofa" {
			t.Errorf("seed %d: first placed = %s, want sofa", seed, got[0].Type)
		}
		tv, sofa := got[1], got[0]
		if !faces(tv.Rect, tv.Rotation, sofa.Rect) {
			t.Errorf("seed %d: tv %v rot %d does not face sofa %v", seed, tv.Rect, tv.Rotation, sofa.Rect)
		}
	}
}

func TestFaces(t *testing.T) {
	item := geom.Rect{X: 5, Y: 5, W: 1, H: 1}
	tests := []struct {
		rot    int
		target geom.Rect
		want   bool
	}{
		{0, geom.Rect{X: 5, Y: 9, W: 1, H: 1}, true},
		{0, geom.Rect{X: 5, Y: 1, W: 1, H: 1}, false},
		{90, geom.Rect{X: 1, Y: 5, W: 1, H: 1}, true},
		{180, geom.Rect{X: 5, Y: 1, W: 1, H: 1}, true},
		{270, geom.Rect{X: 9, Y: 5, W: 1, H: 1}, true},
		{270, geom.Rect{X: 9, Y: 9, W: 1, H: 1}, true},  // 45°
		{270, geom.Rect{X: 6, Y: 9, W: 1, H: 1}, false}, // ~76°
		{0, geom.Rect{X: 5, Y: 5, W: 1, H: 1}, true},    // coincident
		{0, geom.Rect{X: 22, Y: 15, W: 1, H: 1}, true},  // ~59.5°, inside ±60°
		{0, geom.Rect{X: 23, Y: 15, W: 1, H: 1}, false}, // ~60.9°
	}
	for _, tt := range tests {
		if got := faces(item, tt.rot, tt.target); got != tt.want {
			t.Errorf("faces(rot %d, %v) = %v, want %v", tt.rot, tt.target, got, tt.want)
		}
	}
}

func TestFacingSkippedWithoutTarget(t *testing.T) {
	r := geom.Rect{W: 8, H: 8}
	for seed := range uint64(10) {
		got := newSolver(seed).Furnish(room(r), 0, nil, []string{"tv"})
		if len(got) != 1 {
			t.Fatalf("seed %d: placed %d items, want 1", seed, len(got))
		}
		if got[0].Rotation != 0 {
			t.Errorf("seed %d: lone tv rotation = %d, want 0 (first rotation tried)", seed, got[0].Rotation)
		}
	}
}

func TestUnplaceableDropped(t *testing.T) {
	g := room(geom.Rect{W: 4, H: 4})
	got := newSolver(1).Furnish(g, 0, nil, []string{"chest", "chest", "chest", "chest", "chest"})
	if len(got) != 4 {
		t.Errorf("placed %d items on 4 floor cells, want 4", len(got))
	}
	for i, a := range got {
		for _, b := range got[i+1:] {
			if a.Rect.Overlaps(b.Rect) {
				t.Errorf("%s %v overlaps %s %v", a.Type, a.Rect, b.Type, b.Rect)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	r := geom.Rect{W: 9, H: 8}
	items := []string{"bed", "wardrobe", "desk", "chair", "plant"}
	a := newSolver(7).Furnish(room(r), 0, nil, items)
	b := newSolver(7).Furnish(room(r), 0, nil, items)
	if !slices.Equal(a, b) {
		t.Errorf("placements differ for the same seed:\n%v\n%v", a, b)
	}
}

func TestRulesOverride(t *testing.T) {
	rules := DefaultRules().With(Rules{"bed": {Footprint: geom.Size{W: 2, H: 3}, Sprite: "bed_double"}})
	if got := rules.Lookup("bed"); got.Footprint != (geom.Size{W: 2, H: 3}) || got.Sprite != "bed_double" {
		t.Errorf("Lookup(bed) = %+v", got)
	}
	if got := DefaultRules().Lookup("bed"); got.Footprint != (geom.Size{W: 1, H: 2}) {
		t.Errorf("default table modified: %+v", got)
	}
	if got := rules.Lookup("spaceship"); got.Footprint != (geom.Size{W: 1, H: 1}) || got.Sprite != "spaceship" {
		t.Errorf("Lookup(unknown) = %+v", got)
	}
}
