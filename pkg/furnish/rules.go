package furnish

import (
	"maps"

	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// Rule describes how one furniture type may be placed.
type Rule struct {
	// Footprint is the unrotated size in cells.
	Footprint geom.Size
	// Zones lists the preferred zones, best first. Empty means wall-adjacent
	// then interior.
	Zones []grid.Zone
	// BlocksDoor keeps the item off door cells and doorway thresholds.
	BlocksDoor bool
	// Faces names the furniture type this item must point toward.
	Faces string
	// Sprite is the tile sprite key. Empty means the type name.
	Sprite string
}

// Rules maps furniture types to placement rules. Treat it as immutable once
// handed to a Solver.
type Rules map[string]Rule

var (
	wallFirst  = []grid.Zone{grid.WallAdjacent, grid.Interior}
	wallOnly   = []grid.Zone{grid.WallAdjacent}
	centreLike = []grid.Zone{grid.Interior, grid.WallAdjacent}
)

// DefaultRules returns the built-in furniture table. Each call returns a new
// map, so callers may extend it before building a Solver.
func DefaultRules() Rules {
	return Rules{
		"bed":        {Footprint: geom.Size{W: 1, H: 2}, Zones: wallOnly, BlocksDoor: true},
		"nightstand": {Footprint: geom.Size{W: 1, H: 1}, Zones: wallOnly, Faces: "bed"},
		"wardrobe":   {Footprint: geom.Size{W: 2, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"chest":      {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst},
		"sofa":       {Footprint: geom.Size{W: 2, H: 1}, Zones: wallFirst, BlocksDoor: true},
		"tv":         {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst, Faces: "sofa"},
		"armchair":   {Footprint: geom.Size{W: 1, H: 1}, Zones: centreLike, Faces: "tv"},
		"table":      {Footprint: geom.Size{W: 2, H: 2}, Zones: centreLike},
		"chair":      {Footprint: geom.Size{W: 1, H: 1}, Zones: centreLike, Faces: "table"},
		"desk":       {Footprint: geom.Size{W: 2, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"bookshelf":  {Footprint: geom.Size{W: 2, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"stove":      {Footprint: geom.Size{W: 1, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"fridge":     {Footprint: geom.Size{W: 1, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"sink":       {Footprint: geom.Size{W: 1, H: 1}, Zones: wallOnly},
		"counter":    {Footprint: geom.Size{W: 2, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"toilet":     {Footprint: geom.Size{W: 1, H: 1}, Zones: wallOnly, BlocksDoor: true},
		"bathtub":    {Footprint: geom.Size{W: 1, H: 2}, Zones: wallOnly, BlocksDoor: true},
		"rug":        {Footprint: geom.Size{W: 2, H: 2}, Zones: centreLike},
		"plant":      {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst},
		"lamp":       {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst},
		"crate":      {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst, BlocksDoor: true},
		"barrel":     {Footprint: geom.Size{W: 1, H: 1}, Zones: wallFirst, BlocksDoor: true},
		"shelf":      {Footprint: geom.Size{W: 2, H: 1}, Zones: wallOnly, BlocksDoor: true},
	}
}

// Lookup returns the rule for typ. Unknown types get a 1×1 rule that prefers
// walls and uses typ as its sprite.
func (r Rules) Lookup(typ string) Rule {
	rule, ok := r[typ]
	if !ok {
		rule = Rule{Footprint: geom.Size{W: 1, H: 1}}
	}
	if len(rule.Zones) == 0 {
		rule.Zones = wallFirst
	}
	if rule.Footprint.W <= 0 || rule.Footprint.H <= 0 {
		rule.Footprint = geom.Size{W: 1, H: 1}
	}
	if rule.Sprite == "" {
		rule.Sprite = typ
	}
	return rule
}

// With returns a copy of r with overrides applied on top.
func (r Rules) With(overrides Rules) Rules {
	out := maps.Clone(r)
	if out == nil {
		out = Rules{}
	}
	maps.Copy(out, overrides)
	return out
}
