package tilemap

import (
	"bytes"
	"testing"

	"github.com/matzehuels/floorplan/pkg/furnish"
	"github.com/matzehuels/floorplan/pkg/geom"
	"github.com/matzehuels/floorplan/pkg/grid"
)

func TestFromGrid(t *testing.T) {
	g := grid.New(6, 5)
	r := geom.Rect{W: 5, H: 5}
	g.PaintFloor(r, 0)
	g.Ring(r)
	g.Set(geom.Point{X: 2, Y: 4}, grid.Door)

	m := FromGrid(g, func(_ geom.Point, owner int) string {
		if owner == 0 {
			return "floor_wood"
		}
		return SpriteFloor
	})
	m.AddRoom(NewRoom("a", "A", "bedroom", r, []geom.Point{{X: 2, Y: 4}}), []furnish.Placement{
		{Type: "bed", Sprite: "bed", Rect: geom.Rect{X: 1, Y: 1, W: 1, H: 2}, Rotation: 90},
	})
	m.Finish()

	if got := m.Count(LayerFloor); got != 10 {
		t.Errorf("floor tiles = %d, want 10 (9 floor + 1 door)", got)
	}
	if got := m.Count(LayerWall); got != 15 {
		t.Errorf("wall tiles = %d, want 15", got)
	}
	if got := m.Count(LayerFurniture); got != 1 {
		t.Errorf("furniture tiles = %d, want 1", got)
	}

	last := m.Tiles[len(m.Tiles)-1]
	if last.Layer != LayerFurniture || last.Rotation == nil || *last.Rotation != 90 {
		t.Errorf("last tile = %+v, want rotated furniture", last)
	}
	if m.Tiles[0].Sprite != "floor_wood" || m.Tiles[0].X != 1 || m.Tiles[0].Y != 1 {
		t.Errorf("first tile = %+v, want floor_wood at 1,1", m.Tiles[0])
	}

	room, ok := m.Room("a")
	if !ok {
		t.Fatal("room a missing")
	}
	if len(room.Doors) != 1 || room.Doors[0] != (Point{X: 2, Y: 4}) {
		t.Errorf("doors = %v", room.Doors)
	}
	if len(room.Furniture) != 1 || room.Furniture[0].Height != 2 {
		t.Errorf("furniture = %+v", room.Furniture)
	}
}

func TestFinishOrder(t *testing.T) {
	m := &TileMap{Tiles: []Tile{
		{X: 3, Y: 0, Layer: LayerWall},
		{X: 1, Y: 2, Layer: LayerFloor},
		{X: 0, Y: 0, Layer: LayerFurniture},
		{X: 0, Y: 2, Layer: LayerFloor},
		{X: 5, Y: 1, Layer: LayerFloor},
	}}
	m.Finish()

	want := []Tile{
		{X: 5, Y: 1, Layer: LayerFloor},
		{X: 0, Y: 2, Layer: LayerFloor},
		{X: 1, Y: 2, Layer: LayerFloor},
		{X: 3, Y: 0, Layer: LayerWall},
		{X: 0, Y: 0, Layer: LayerFurniture},
	}
	for i := range want {
		if m.Tiles[i] != want[i] {
			t.Errorf("Tiles[%d] = %+v, want %+v", i, m.Tiles[i], want[i])
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	rot := 180
	m := &TileMap{
		Width: 40, Height: 40,
		Tiles: []Tile{{X: 1, Y: 1, Sprite: "floor", Layer: LayerFloor}, {X: 2, Y: 2, Sprite: "tv", Rotation: &rot, Layer: LayerFurniture}},
		Rooms: []Room{{ID: "a", Type: "living", Width: 10, Height: 9, Doors: []Point{}}},
		Style: "structured", Seed: 42,
	}
	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if bytes.Contains(data, []byte(`"rotation": 0`)) {
		t.Error("floor tile carries a rotation")
	}

	got, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	again, _ := Marshal(got)
	if !bytes.Equal(data, again) {
		t.Errorf("re-marshalled output differs:\n%s\n%s", data, again)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("{"))); err == nil {
		t.Error("Read() accepted truncated JSON")
	}
}
