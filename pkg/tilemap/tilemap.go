package tilemap

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/furnish"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

// Layer groups tiles for drawing order.
type Layer string

// Tile layers, bottom to top.
const (
	LayerFloor     Layer = "floor"
	LayerWall      Layer = "wall"
	LayerFurniture Layer = "furniture"
)

func (l Layer) rank() int {
	switch l {
	case LayerFloor:
		return 0
	case LayerWall:
		return 1
	default:
		return 2
	}
}

// Sprite keys used for structural cells.
const (
	SpriteFloor = "floor"
	SpriteWall  = "wall"
	SpriteDoor  = "door"
)

// Tile is one sprite on the map. Rotation is set for furniture only.
type Tile struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Sprite   string `json:"sprite"`
	Rotation *int   `json:"rotation,omitempty"`
	Layer    Layer  `json:"layer"`
}

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Furniture is a placed item inside a room.
type Furniture struct {
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Rotation int    `json:"rotation"`
}

// Room describes one placed room. Bounds include the wall ring.
type Room struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      string      `json:"type"`
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Doors     []Point     `json:"doors"`
	Furniture []Furniture `json:"furniture,omitempty"`
}

// Bounds returns the room rectangle.
func (r Room) Bounds() geom.Rect { return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height} }

// TileMap is a generated floor plan.
type TileMap struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Tiles    []Tile `json:"tiles"`
	Rooms    []Room `json:"rooms"`
	Root     string `json:"root,omitempty"` // id of the room connectivity was grown from
	Style    string `json:"style,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Seed     uint64 `json:"seed,omitempty"`
}

// FromGrid emits a floor tile for every Floor and Door cell and a wall tile
// for every Wall cell. floorSprite picks the sprite for a floor cell from its
// position and owner, which is [grid.NoOwner] outside rooms; nil uses
// [SpriteFloor].
func FromGrid(g *grid.Grid, floorSprite func(p geom.Point, owner int) string) *TileMap {
	m := &TileMap{Width: g.Width(), Height: g.Height(), Rooms: []Room{}}
	g.Each(func(p geom.Point, c grid.Cell, owner int) {
		switch c {
		case grid.Floor:
			s := SpriteFloor
			if floorSprite != nil {
				s = floorSprite(p, owner)
			}
			m.Tiles = append(m.Tiles, Tile{X: p.X, Y: p.Y, Sprite: s, Layer: LayerFloor})
		case grid.Door:
			m.Tiles = append(m.Tiles, Tile{X: p.X, Y: p.Y, Sprite: SpriteDoor, Layer: LayerFloor})
		case grid.Wall:
			m.Tiles = append(m.Tiles, Tile{X: p.X, Y: p.Y, Sprite: SpriteWall, Layer: LayerWall})
		}
	})
	return m
}

// NewRoom builds room metadata from a rectangle and its door cells.
func NewRoom(id, name, typ string, r geom.Rect, doors []geom.Point) Room {
	out := Room{ID: id, Name: name, Type: typ, X: r.X, Y: r.Y, Width: r.W, Height: r.H, Doors: []Point{}}
	for _, d := range doors {
		out.Doors = append(out.Doors, Point{X: d.X, Y: d.Y})
	}
	slices.SortFunc(out.Doors, comparePoints)
	return out
}

// AddRoom appends a room and a furniture tile at the anchor of each of its
// placements.
func (m *TileMap) AddRoom(r Room, placements []furnish.Placement) {
	for _, p := range placements {
		rot := p.Rotation
		r.Furniture = append(r.Furniture, Furniture{
			Type: p.Type, X: p.Rect.X, Y: p.Rect.Y, Width: p.Rect.W, Height: p.Rect.H, Rotation: rot,
		})
		m.Tiles = append(m.Tiles, Tile{X: p.Rect.X, Y: p.Rect.Y, Sprite: p.Sprite, Rotation: &rot, Layer: LayerFurniture})
	}
	m.Rooms = append(m.Rooms, r)
}

// Finish puts tiles into canonical order.
func (m *TileMap) Finish() {
	slices.SortStableFunc(m.Tiles, func(a, b Tile) int {
		if c := cmp.Compare(a.Layer.rank(), b.Layer.rank()); c != 0 {
			return c
		}
		return comparePoints(Point{X: a.X, Y: a.Y}, Point{X: b.X, Y: b.Y})
	})
}

// Room returns the room with the given id.
func (m *TileMap) Room(id string) (Room, bool) {
	for _, r := range m.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// Count returns the number of tiles on layer l.
func (m *TileMap) Count(l Layer) int {
	n := 0
	for _, t := range m.Tiles {
		if t.Layer == l {
			n++
		}
	}
	return n
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Marshal encodes m as indented JSON.
func Marshal(m *TileMap) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// Read decodes a tile map previously written by [Marshal].
func Read(r io.Reader) (*TileMap, error) {
	var m TileMap
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode tile map")
	}
	return &m, nil
}
