package layout

import (
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

// Strategy names a layout algorithm.
type Strategy string

// Layout strategies.
const (
	Spine   Strategy = "spine"
	Hub     Strategy = "hub"
	Cluster Strategy = "cluster"
	BSP     Strategy = "bsp"
)

// DefaultDoorWidth is the door width used when Config leaves it unset.
const DefaultDoorWidth = 2

// DefaultMinLeafSide is the smallest BSP leaf side, walls included.
const DefaultMinLeafSide = 5

// Config configures a Layouter.
type Config struct {
	Types       roomgraph.Types
	DoorWidth   int
	MinLeafSide int
	Rand        *rand.Rand
	Logger      *log.Logger
}

// Placed is a room bound to a rectangle.
type Placed struct {
	Room int       // index into the graph's rooms
	Rect geom.Rect // walls included
}

// Plan is the output of a layout run.
type Plan struct {
	Strategy Strategy
	Anchor   int      // room index of the layout root
	Rooms    []Placed // sorted by room index
	Dropped  []int    // rooms that could not be placed, ascending
}

// Rect returns the rectangle of room i, if it was placed.
func (p Plan) Rect(i int) (geom.Rect, bool) {
	for _, pl := range p.Rooms {
		if pl.Room == i {
			return pl.Rect, true
		}
	}
	return geom.Rect{}, false
}

// Layouter runs layout strategies over one room graph.
// It is not safe for concurrent use; create one per generation.
type Layouter struct {
	g       *roomgraph.Graph
	cfg     Config
	canvas  geom.Rect
	adj     [][]int
	sizes   []geom.Size
	rng     *rand.Rand
	logger  *log.Logger
	minSeam int

	rects  []geom.Rect
	placed []bool
	order  []int // placement order
}

// New prepares a Layouter for g.
func New(g *roomgraph.Graph, cfg Config) *Layouter {
	if cfg.Types == nil {
		cfg.Types = roomgraph.DefaultTypes()
	}
	if cfg.DoorWidth <= 0 {
		cfg.DoorWidth = DefaultDoorWidth
	}
	if cfg.MinLeafSide <= 0 {
		cfg.MinLeafSide = DefaultMinLeafSide
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(1, 2))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	canvas := geom.Rect{W: g.Width, H: g.Height}
	sizes := make([]geom.Size, len(g.Rooms))
	for i, r := range g.Rooms {
		s := cfg.Types.SizeOf(r)
		s.W = min(s.W, canvas.W)
		s.H = min(s.H, canvas.H)
		sizes[i] = s
	}

	return &Layouter{
		g:       g,
		cfg:     cfg,
		canvas:  canvas,
		adj:     g.Adjacency(),
		sizes:   sizes,
		rng:     cfg.Rand,
		logger:  cfg.Logger,
		minSeam: cfg.DoorWidth + 2,
	}
}

// Run executes the chosen strategy.
func (l *Layouter) Run(c Choice) Plan {
	switch c.Strategy {
	case Spine:
		return l.Spine(c.Anchor)
	case Hub:
		return l.Hub(c.Anchor)
	case BSP:
		return l.BSP()
	default:
		return l.Cluster(c.Anchor)
	}
}

// Size returns the rectangle size used for room i.
func (l *Layouter) Size(i int) geom.Size { return l.sizes[i] }

// =============================================================================
// Shared placement state
// =============================================================================

func (l *Layouter) reset() {
	l.rects = make([]geom.Rect, len(l.g.Rooms))
	l.placed = make([]bool, len(l.g.Rooms))
	l.order = l.order[:0]
}

func (l *Layouter) place(i int, r geom.Rect) {
	l.rects[i] = r
	l.placed[i] = true
	l.order = append(l.order, i)
}

// placedRects returns the rectangles placed so far, in placement order.
func (l *Layouter) placedRects() []geom.Rect {
	out := make([]geom.Rect, 0, len(l.order))
	for _, i := range l.order {
		out = append(out, l.rects[i])
	}
	return out
}

// fits reports whether r lies on the canvas and collides with no placed room.
func (l *Layouter) fits(r geom.Rect) bool {
	return free(r, l.placedRects(), l.canvas)
}

// snapTo tries to attach room i to parent p.
func (l *Layouter) snapTo(i, p int) bool {
	r, ok := Snap(l.rects[p], l.sizes[i], l.placedRects(), l.canvas, l.minSeam, l.rng)
	if ok {
		l.place(i, r)
	}
	return ok
}

// bfsOrder lists rooms breadth-first from root over connections, followed by
// rooms unreachable from root in input order.
func (l *Layouter) bfsOrder(root int) []int {
	seen := make([]bool, len(l.g.Rooms))
	order := []int{root}
	seen[root] = true
	for q := 0; q < len(order); q++ {
		for _, n := range l.adj[order[q]] {
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}
	for i := range l.g.Rooms {
		if !seen[i] {
			order = append(order, i)
		}
	}
	return order
}

// grow attaches unplaced rooms to placed connected rooms in breadth order,
// repeating until a pass makes no progress. Rooms with no placed connected
// room are then tried against every placed room.
func (l *Layouter) grow(root int) {
	order := l.bfsOrder(root)
	for progress := true; progress; {
		progress = false
		for _, i := range order {
			if l.placed[i] {
				continue
			}
			for _, p := range l.adj[i] {
				if l.placed[p] && l.snapTo(i, p) {
					progress = true
					break
				}
			}
		}
	}
	for _, i := range order {
		if l.placed[i] {
			continue
		}
		for _, p := range slices.Clone(l.order) {
			if l.snapTo(i, p) {
				break
			}
		}
	}
}

// finish turns the placement state into a Plan, logging rooms left out.
func (l *Layouter) finish(s Strategy, anchor int) Plan {
	plan := Plan{Strategy: s, Anchor: anchor}
	for i := range l.g.Rooms {
		if l.placed[i] {
			plan.Rooms = append(plan.Rooms, Placed{Room: i, Rect: l.rects[i]})
			continue
		}
		plan.Dropped = append(plan.Dropped, i)
		l.logger.Warn("room unplaceable", "room", l.g.Rooms[i].ID, "strategy", s)
	}
	l.logger.Debug("layout complete", "strategy", s, "placed", len(plan.Rooms), "dropped", len(plan.Dropped))
	return plan
}
