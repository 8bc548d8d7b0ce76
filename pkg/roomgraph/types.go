package roomgraph

import (
	"maps"
	"strings"

	"github.com/matzehuels/floorplan/pkg/geom"
)

// MinRoomSide is the smallest side a room rectangle may have: a wall on
// each end and one floor cell between them.
const MinRoomSide = 3

// DefaultTypeKey is the entry used for types missing from a table.
const DefaultTypeKey = "default"

// TypeInfo describes how rooms of one semantic type are laid out and drawn.
type TypeInfo struct {
	// Size is the default rectangle, walls included.
	Size geom.Size `toml:"size"`
	// Importance orders rooms in the BSP layout; higher goes to larger lots.
	Importance int `toml:"importance"`
	// Floor is the sprite key painted on the room's floor cells.
	Floor string `toml:"floor"`
}

// Types is an immutable lookup table of room types. Treat values returned by
// [DefaultTypes] and themes as read-only; use [Types.With] to derive variants.
type Types map[string]TypeInfo

// DefaultTypes returns the built-in room type table.
func DefaultTypes() Types {
	return Types{
		"corridor": {Size: geom.Size{W: 16, H: 4}, Importance: 9, Floor: "floor_stone"},
		"hall":     {Size: geom.Size{W: 14, H: 4}, Importance: 9, Floor: "floor_stone"},
		"passage":  {Size: geom.Size{W: 12, H: 4}, Importance: 8, Floor: "floor_stone"},
		"living":   {Size: geom.Size{W: 10, H: 9}, Importance: 10, Floor: "floor_wood"},
		"lobby":    {Size: geom.Size{W: 10, H: 10}, Importance: 10, Floor: "floor_marble"},
		"foyer":    {Size: geom.Size{W: 8, H: 8}, Importance: 9, Floor: "floor_marble"},
		"common":   {Size: geom.Size{W: 10, H: 9}, Importance: 10, Floor: "floor_wood"},
		"kitchen":  {Size: geom.Size{W: 7, H: 7}, Importance: 8, Floor: "floor_tile"},
		"dining":   {Size: geom.Size{W: 8, H: 7}, Importance: 7, Floor: "floor_wood"},
		"bedroom":  {Size: geom.Size{W: 8, H: 7}, Importance: 6, Floor: "floor_carpet"},
		"office":   {Size: geom.Size{W: 7, H: 6}, Importance: 5, Floor: "floor_wood"},
		"study":    {Size: geom.Size{W: 6, H: 6}, Importance: 5, Floor: "floor_wood"},
		"bathroom": {Size: geom.Size{W: 5, H: 5}, Importance: 4, Floor: "floor_tile"},
		"storage":  {Size: geom.Size{W: 5, H: 5}, Importance: 2, Floor: "floor_stone"},
		"closet":   {Size: geom.Size{W: 4, H: 4}, Importance: 1, Floor: "floor_stone"},

		DefaultTypeKey: {Size: geom.Size{W: 6, H: 6}, Importance: 3, Floor: "floor"},
	}
}

// Lookup returns the entry for typ. Matching is case-insensitive; an exact
// key wins, then the first key contained in typ in sorted key order, then
// the default entry.
func (t Types) Lookup(typ string) TypeInfo {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if info, ok := t[typ]; ok {
		return info
	}
	best := ""
	for k := range t {
		if k == DefaultTypeKey || !strings.Contains(typ, k) {
			continue
		}
		if best == "" || len(k) > len(best) || (len(k) == len(best) && k < best) {
			best = k
		}
	}
	if best != "" {
		return t[best]
	}
	if info, ok := t[DefaultTypeKey]; ok {
		return info
	}
	return TypeInfo{Size: geom.Size{W: 6, H: 6}, Importance: 3, Floor: "floor"}
}

// SizeOf returns the rectangle size for r: explicit dimensions first, the
// type table otherwise, never smaller than [MinRoomSide].
func (t Types) SizeOf(r Room) geom.Size {
	s := t.Lookup(r.Type).Size
	if r.Width != nil {
		s.W = *r.Width
	}
	if r.Height != nil {
		s.H = *r.Height
	}
	s.W = max(s.W, MinRoomSide)
	s.H = max(s.H, MinRoomSide)
	return s
}

// With returns a copy of t with overrides applied on top.
func (t Types) With(overrides Types) Types {
	out := maps.Clone(t)
	if out == nil {
		out = Types{}
	}
	for k, v := range overrides {
		out[strings.ToLower(k)] = v
	}
	return out
}
