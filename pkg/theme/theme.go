// Package theme loads TOML theme files that retune room types and furniture.
//
// A theme overrides entries of the built-in tables; everything it does not
// mention keeps its default. Within an entry, omitted fields inherit from the
// default entry of the same name.
//
//	name = "dungeon"
//
//	[rooms.corridor]
//	width = 18
//	height = 4
//	floor = "floor_cobble"
//
//	[furniture.bed]
//	width = 1
//	height = 2
//	zones = ["wall"]
//	blocks_door = true
//	sprite = "bed_straw"
package theme

import (
	"bytes"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/furnish"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

// RoomSpec overrides one room type.
type RoomSpec struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Importance *int   `toml:"importance"`
	Floor      string `toml:"floor"`
}

// FurnitureSpec overrides one furniture rule.
type FurnitureSpec struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Zones      []string `toml:"zones"`
	BlocksDoor *bool    `toml:"blocks_door"`
	Faces      *string  `toml:"faces"`
	Sprite     string   `toml:"sprite"`
}

// Theme is a decoded theme file.
type Theme struct {
	Name      string                   `toml:"name"`
	Rooms     map[string]RoomSpec      `toml:"rooms"`
	Furniture map[string]FurnitureSpec `toml:"furniture"`

	// Hash is the content hash of the source, for cache keys.
	Hash string `toml:"-"`
}

// Default returns the empty theme: built-in tables only.
func Default() *Theme { return &Theme{Name: "default"} }

// Load reads and validates the theme file at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "theme %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&t)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidTheme, "unknown theme key %q", undecoded[0].String())
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.Hash = cache.Hash(data)[:16]
	return &t, nil
}

// Validate checks dimensions and zone names.
func (t *Theme) Validate() error {
	for name, r := range t.Rooms {
		if r.Width < 0 || r.Height < 0 || (r.Width > 0 && r.Width < roomgraph.MinRoomSide) || (r.Height > 0 && r.Height < roomgraph.MinRoomSide) {
			return errors.New(errors.ErrCodeInvalidTheme, "room type %q: sides must be at least %d", name, roomgraph.MinRoomSide)
		}
	}
	for name, f := range t.Furniture {
		if f.Width < 0 || f.Height < 0 {
			return errors.New(errors.ErrCodeInvalidTheme, "furniture %q: negative footprint", name)
		}
		for _, z := range f.Zones {
			if _, ok := parseZone(z); !ok {
				return errors.New(errors.ErrCodeInvalidTheme, "furniture %q: unknown zone %q (want wall or interior)", name, z)
			}
		}
	}
	return nil
}

// Types returns the default room types with the theme applied.
func (t *Theme) Types() roomgraph.Types {
	base := roomgraph.DefaultTypes()
	over := roomgraph.Types{}
	for name, r := range t.Rooms {
		name = strings.ToLower(name)
		info, ok := base[name]
		if !ok {
			info = base.Lookup(roomgraph.DefaultTypeKey)
		}
		if r.Width > 0 {
			info.Size.W = r.Width
		}
		if r.Height > 0 {
			info.Size.H = r.Height
		}
		if r.Importance != nil {
			info.Importance = *r.Importance
		}
		if r.Floor != "" {
			info.Floor = r.Floor
		}
		over[name] = info
	}
	return base.With(over)
}

// Rules returns the default furniture rules with the theme applied.
func (t *Theme) Rules() furnish.Rules {
	base := furnish.DefaultRules()
	over := furnish.Rules{}
	for name, f := range t.Furniture {
		rule, ok := base[name]
		if !ok {
			rule = furnish.Rule{Footprint: geom.Size{W: 1, H: 1}}
		}
		if f.Width > 0 {
			rule.Footprint.W = f.Width
		}
		if f.Height > 0 {
			rule.Footprint.H = f.Height
		}
		if len(f.Zones) > 0 {
			rule.Zones = nil
			for _, z := range f.Zones {
				zone, _ := parseZone(z)
				rule.Zones = append(rule.Zones, zone)
			}
		}
		if f.BlocksDoor != nil {
			rule.BlocksDoor = *f.BlocksDoor
		}
		if f.Faces != nil {
			rule.Faces = *f.Faces
		}
		if f.Sprite != "" {
			rule.Sprite = f.Sprite
		}
		over[name] = rule
	}
	return base.With(over)
}

func parseZone(s string) (grid.Zone, bool) {
	switch strings.ToLower(s) {
	case "wall", "wall_adjacent":
		return grid.WallAdjacent, true
	case "interior", "center", "centre":
		return grid.Interior, true
	}
	return 0, false
}
