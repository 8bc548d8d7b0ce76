package generator

import (
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/carve"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/furnish"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// Style names.
const (
	StyleStructured = "structured"
	StyleBSP        = "bsp"
	StyleOrganic    = "organic"
	StyleGeometric  = "geometric"
)

// DefaultStyle is used when no style is given.
const DefaultStyle = StyleStructured

// Styles lists every supported style.
var Styles = []string{StyleStructured, StyleBSP, StyleOrganic, StyleGeometric}

// Generator produces a tile map from a room graph.
type Generator interface {
	Generate(g *roomgraph.Graph) (*tilemap.TileMap, error)
}

// Config holds the parameters shared by all styles.
type Config struct {
	Seed      uint64
	DoorWidth int
	// Hint selects a growth strategy for the structured style. Empty uses
	// the graph's description.
	Hint string
	// Mirror places geometric rooms in left/right mirrored pairs.
	Mirror bool
	Types  roomgraph.Types
	Rules  furnish.Rules
	Logger *log.Logger
}

func (c *Config) setDefaults() {
	if c.DoorWidth <= 0 {
		c.DoorWidth = layout.DefaultDoorWidth
	}
	if c.Types == nil {
		c.Types = roomgraph.DefaultTypes()
	}
	if c.Rules == nil {
		c.Rules = furnish.DefaultRules()
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// New returns the generator for style. An empty style selects [DefaultStyle].
func New(style string, cfg Config) (Generator, error) {
	cfg.setDefaults()
	switch strings.ToLower(style) {
	case "", StyleStructured:
		return &structured{cfg: cfg}, nil
	case StyleBSP:
		return &bsp{cfg: cfg}, nil
	case StyleOrganic:
		return &organic{cfg: cfg}, nil
	case StyleGeometric:
		return &geometric{cfg: cfg}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want one of %s)", style, strings.Join(Styles, ", "))
}

// ValidStyle reports whether style names a generator.
func ValidStyle(style string) bool {
	return style == "" || slices.Contains(Styles, strings.ToLower(style))
}

// newRand returns the per-run random source for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// =============================================================================
// Shared assembly
// =============================================================================

// build carries one run's state through the shared back half of the pipeline.
type build struct {
	cfg      Config
	style    string
	strategy string
	graph    *roomgraph.Graph
	grid     *grid.Grid
	rects    []geom.Rect // indexed by room; empty when not placed
	doors    carve.DoorList
	root     int
	rng      *rand.Rand
	// floor picks the sprite for unowned floor cells.
	floor func(p geom.Point) string
}

func newBuild(cfg Config, style string, g *roomgraph.Graph) *build {
	return &build{
		cfg:   cfg,
		style: style,
		graph: g,
		grid:  grid.New(g.Width, g.Height),
		rects: make([]geom.Rect, len(g.Rooms)),
		rng:   newRand(cfg.Seed),
	}
}

// usePlan copies a layout plan's rectangles.
func (b *build) usePlan(p layout.Plan) {
	b.strategy = string(p.Strategy)
	b.root = p.Anchor
	for _, pl := range p.Rooms {
		b.rects[pl.Room] = pl.Rect
	}
}

// finish repairs connectivity, furnishes every placed room and assembles
// the tile map.
func (b *build) finish() *tilemap.TileMap {
	logger := b.cfg.Logger
	if b.doors == nil {
		b.doors = carve.NewDoorList(len(b.rects))
	}
	if n := carve.Repair(b.grid, b.rects, b.root, b.doors, logger); n > 0 {
		logger.Debug("dug connecting paths", "count", n)
	}

	solver := furnish.NewSolver(b.cfg.Rules, b.rng, logger)
	m := tilemap.FromGrid(b.grid, b.floorSprite)

	for i, r := range b.rects {
		if r.Empty() {
			continue
		}
		room := b.graph.Rooms[i]
		placements := solver.Furnish(b.grid, i, b.doors[i], room.Furniture)
		m.AddRoom(tilemap.NewRoom(room.ID, room.DisplayName(), room.Type, r, b.doors[i]), placements)
	}
	m.Finish()

	m.Style, m.Strategy, m.Seed = b.style, b.strategy, b.cfg.Seed
	if b.root < len(b.rects) && !b.rects[b.root].Empty() {
		m.Root = b.graph.Rooms[b.root].ID
	}
	return m
}

func (b *build) floorSprite(p geom.Point, owner int) string {
	if owner != grid.NoOwner {
		if f := b.cfg.Types.Lookup(b.graph.Rooms[owner].Type).Floor; f != "" {
			return f
		}
		return tilemap.SpriteFloor
	}
	if b.floor != nil {
		return b.floor(p)
	}
	return tilemap.SpriteFloor
}

// carveConnections opens doors for every connected pair that touches.
func (b *build) carveConnections() {
	b.doors = carve.Doors(b.grid, b.rects, b.graph.Pairs(), b.cfg.DoorWidth)
}

// paintRooms rasterizes every placed room and skins walls.
func (b *build) paintRooms() {
	for i, r := range b.rects {
		if !r.Empty() {
			b.grid.PaintFloor(r, i)
		}
	}
	grid.SkinWalls(b.grid)
}

func (b *build) layouter() *layout.Layouter {
	return layout.New(b.graph, layout.Config{
		Types:     b.cfg.Types,
		DoorWidth: b.cfg.DoorWidth,
		Rand:      b.rng,
		Logger:    b.cfg.Logger,
	})
}
