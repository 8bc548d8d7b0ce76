package layout

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

func room(id, typ string, conns ...string) roomgraph.Room {
	return roomgraph.Room{ID: id, Type: typ, Connections: conns}
}

func newLayouter(g *roomgraph.Graph, seed uint64) *Layouter {
	return New(g, Config{Rand: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))})
}

func assertNoOverlap(t *testing.T, p Plan) {
	t.Helper()
	for i, a := range p.Rooms {
		for _, b := range p.Rooms[i+1:] {
			if a.Rect.OverlapsInset(b.Rect, 1) {
				t.Errorf("rooms %d %v and %d %v overlap", a.Room, a.Rect, b.Room, b.Rect)
			}
		}
	}
}

func assertOnCanvas(t *testing.T, g *roomgraph.Graph, p Plan) {
	t.Helper()
	canvas := geom.Rect{W: g.Width, H: g.Height}
	for _, pl := range p.Rooms {
		if !canvas.ContainsRect(pl.Rect) {
			t.Errorf("room %d %v outside canvas", pl.Room, pl.Rect)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		rooms  []roomgraph.Room
		hint   string
		want   Strategy
		anchor int
	}{
		{
			name: "corridor with two links",
			rooms: []roomgraph.Room{
				room("a", "bedroom", "c"),
				room("c", "corridor", "a", "b"),
				room("b", "kitchen"),
			},
			want: Spine, anchor: 1,
		},
		{
			name: "elongated corridor alone",
			rooms: []roomgraph.Room{
				room("h", "hall"),
				room("b", "bedroom", "h"),
			},
			want: Spine, anchor: 0,
		},
		{
			name: "living room hub",
			rooms: []roomgraph.Room{
				room("k", "kitchen", "l"),
				room("l", "living", "k", "b"),
				room("b", "bedroom"),
			},
			want: Hub, anchor: 1,
		},
		{
			name: "hub with one link falls through",
			rooms: []roomgraph.Room{
				room("l", "lobby", "b"),
				room("b", "bedroom"),
			},
			want: Cluster, anchor: 0,
		},
		{
			name: "cluster on largest",
			rooms: []roomgraph.Room{
				room("s", "storage", "b"),
				room("b", "bedroom"),
				room("o", "office"),
			},
			want: Cluster, anchor: 1,
		},
		{
			name: "hint overrides",
			rooms: []roomgraph.Room{
				room("a", "bedroom", "c"),
				room("c", "corridor", "a", "b"),
				room("b", "kitchen"),
			},
			hint: "Compact cluster of rooms",
			want: Cluster, anchor: 1,
		},
		{
			name: "hint without keyword ignored",
			rooms: []roomgraph.Room{
				room("a", "bedroom", "c"),
				room("c", "corridor", "a", "b"),
				room("b", "kitchen"),
			},
			hint: "a small flat",
			want: Spine, anchor: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &roomgraph.Graph{Width: 40, Height: 40, Rooms: tt.rooms}
			got := Select(g, nil, tt.hint)
			if got.Strategy != tt.want || got.Anchor != tt.anchor {
				t.Errorf("Select() = %+v, want {%s %d}", got, tt.want, tt.anchor)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	canvas := geom.Rect{W: 40, H: 40}
	parent := geom.Rect{X: 15, Y: 15, W: 8, H: 8}
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		r, ok := Snap(parent, geom.Size{W: 6, H: 5}, []geom.Rect{parent}, canvas, 4, rng)
		if !ok {
			t.Fatal("Snap() found no position")
		}
		if r.Collides(parent, geom.SharedWall) {
			t.Errorf("Snap() = %v collides with parent", r)
		}
		seam, ok := geom.SeamBetween(parent, r)
		if !ok {
			t.Fatalf("Snap() = %v shares no wall with parent", r)
		}
		if seam.Span() < 2 {
			t.Errorf("seam span = %d, want >= 2", seam.Span())
		}
	}
}

func TestSnapNoRoom(t *testing.T) {
	canvas := geom.Rect{W: 10, H: 10}
	parent := geom.Rect{W: 10, H: 10}
	if r, ok := Snap(parent, geom.Size{W: 4, H: 4}, []geom.Rect{parent}, canvas, 4, rand.New(rand.NewPCG(1, 2))); ok {
		t.Errorf("Snap() = %v, want no position", r)
	}
}

func TestSpineOppositeSides(t *testing.T) {
	g := &roomgraph.Graph{Width: 40, Height: 40, Rooms: []roomgraph.Room{
		room("r1", "corridor", "r2", "r3"),
		room("r2", "bedroom", "r1"),
		room("r3", "kitchen", "r1"),
	}}
	c := Select(g, nil, "")
	if c.Strategy != Spine {
		t.Fatalf("strategy = %s, want spine", c.Strategy)
	}
	p := newLayouter(g, 42).Run(c)
	if len(p.Rooms) != 3 {
		t.Fatalf("placed %d rooms, want 3", len(p.Rooms))
	}
	r1, _ := p.Rect(0)
	r2, _ := p.Rect(1)
	r3, _ := p.Rect(2)

	if r2.Bottom()-1 != r1.Y {
		t.Errorf("r2 %v not on top wall of r1 %v", r2, r1)
	}
	if r3.Y != r1.Bottom()-1 {
		t.Errorf("r3 %v not on bottom wall of r1 %v", r3, r1)
	}
	for _, r := range []geom.Rect{r2, r3} {
		if s, ok := geom.SeamBetween(r1, r); !ok || s.Span() < DefaultDoorWidth {
			t.Errorf("room %v has no door-wide seam with corridor", r)
		}
	}
	assertNoOverlap(t, p)
}

func TestHubSlots(t *testing.T) {
	g := &roomgraph.Graph{Width: 50, Height: 50, Rooms: []roomgraph.Room{
		room("l", "living", "a", "b", "c", "d", "e"),
		room("a", "bedroom"),
		room("b", "kitchen"),
		room("c", "bathroom"),
		room("d", "office"),
		room("e", "storage"),
	}}
	p := newLayouter(g, 7).Run(Select(g, nil, ""))
	if p.Strategy != Hub {
		t.Fatalf("strategy = %s, want hub", p.Strategy)
	}
	if len(p.Dropped) != 0 {
		t.Fatalf("dropped %v", p.Dropped)
	}
	// The fifth neighbour finds every slot taken and attaches elsewhere.
	hub, _ := p.Rect(0)
	for i := 1; i <= 4; i++ {
		r, _ := p.Rect(i)
		if _, ok := geom.SeamBetween(hub, r); !ok {
			t.Errorf("room %d %v does not touch hub %v", i, r, hub)
		}
	}
	assertNoOverlap(t, p)
}

func TestClusterManyRooms(t *testing.T) {
	types := []string{"bedroom", "office", "study", "bathroom", "storage"}
	g := &roomgraph.Graph{Width: 60, Height: 60}
	for i := range 20 {
		r := room(fmt.Sprintf("r%d", i), types[i%len(types)])
		if i > 0 {
			r.Connections = []string{fmt.Sprintf("r%d", (i-1)/2)}
		}
		g.Rooms = append(g.Rooms, r)
	}

	c := Select(g, nil, "")
	if c.Strategy != Cluster {
		t.Fatalf("strategy = %s, want cluster", c.Strategy)
	}
	p := newLayouter(g, 42).Run(c)
	if len(p.Rooms) != 20 {
		t.Errorf("placed %d rooms, want 20 (dropped %v)", len(p.Rooms), p.Dropped)
	}
	assertNoOverlap(t, p)
	assertOnCanvas(t, g, p)
}

func TestDeterministic(t *testing.T) {
	g := &roomgraph.Graph{Width: 50, Height: 50, Rooms: []roomgraph.Room{
		room("a", "bedroom", "b", "c"),
		room("b", "office", "d"),
		room("c", "kitchen"),
		room("d", "bathroom"),
		room("e", "storage", "a"),
	}}
	for _, s := range []Strategy{Cluster, BSP} {
		p1 := newLayouter(g, 99).Run(Choice{Strategy: s})
		p2 := newLayouter(g, 99).Run(Choice{Strategy: s})
		if fmt.Sprint(p1) != fmt.Sprint(p2) {
			t.Errorf("%s: plans differ for the same seed:\n%v\n%v", s, p1, p2)
		}
	}
}

func TestUnplaceableRoomDropped(t *testing.T) {
	big := 40
	g := &roomgraph.Graph{Width: 40, Height: 40, Rooms: []roomgraph.Room{
		{ID: "a", Type: "bedroom", Width: &big, Height: &big},
		room("b", "closet", "a"),
	}}
	p := newLayouter(g, 1).Run(Choice{Strategy: Cluster, Anchor: 0})
	if len(p.Dropped) != 1 || p.Dropped[0] != 1 {
		t.Errorf("Dropped = %v, want [1]", p.Dropped)
	}
}

func TestBSP(t *testing.T) {
	g := &roomgraph.Graph{Width: 40, Height: 40, Rooms: []roomgraph.Room{
		room("c", "closet"),
		room("b", "bedroom"),
		room("l", "living"),
		room("k", "kitchen"),
		room("s", "storage"),
		room("o", "office"),
	}}
	p := newLayouter(g, 3).BSP()
	if len(p.Rooms) != len(g.Rooms) {
		t.Fatalf("placed %d rooms, want %d", len(p.Rooms), len(g.Rooms))
	}
	if p.Anchor != 2 {
		t.Errorf("Anchor = %d, want living room", p.Anchor)
	}
	assertNoOverlap(t, p)
	assertOnCanvas(t, g, p)

	living, _ := p.Rect(2)
	total := 0
	for _, pl := range p.Rooms {
		total += pl.Rect.Area()
		if pl.Rect.Area() > living.Area() {
			t.Errorf("room %d leaf %v larger than living room leaf %v", pl.Room, pl.Rect, living)
		}
		if pl.Rect.W < DefaultMinLeafSide || pl.Rect.H < DefaultMinLeafSide {
			t.Errorf("leaf %v below minimum side", pl.Rect)
		}
	}
	if total < 40*40 {
		t.Errorf("leaves cover %d cells, want the whole canvas", total)
	}
}

func TestBSPDropsWhenCanvasExhausted(t *testing.T) {
	g := &roomgraph.Graph{Width: 9, Height: 5}
	for i := range 4 {
		g.Rooms = append(g.Rooms, room(fmt.Sprintf("r%d", i), "closet"))
	}
	p := newLayouter(g, 3).BSP()
	if len(p.Rooms) != 2 || len(p.Dropped) != 2 {
		t.Errorf("placed %d dropped %d, want 2 and 2", len(p.Rooms), len(p.Dropped))
	}
}
