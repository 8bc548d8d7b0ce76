package sink

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// smallMap is a 4x3 room with one door and a chest.
func smallMap() *tilemap.TileMap {
	m := &tilemap.TileMap{Width: 5, Height: 3}
	for y := range 3 {
		for x := range 4 {
			if x == 0 || y == 0 || x == 3 || y == 2 {
				m.Tiles = append(m.Tiles, tilemap.Tile{X: x, Y: y, Sprite: tilemap.SpriteWall, Layer: tilemap.LayerWall})
			} else {
				m.Tiles = append(m.Tiles, tilemap.Tile{X: x, Y: y, Sprite: tilemap.SpriteFloor, Layer: tilemap.LayerFloor})
			}
		}
	}
	m.Tiles[3] = tilemap.Tile{X: 3, Y: 0, Sprite: tilemap.SpriteDoor, Layer: tilemap.LayerFloor}
	m.Rooms = []tilemap.Room{{
		ID: "store", Name: "Store", Type: "storage", X: 0, Y: 0, Width: 4, Height: 3,
		Doors:     []tilemap.Point{{X: 3, Y: 0}},
		Furniture: []tilemap.Furniture{{Type: "chest", X: 1, Y: 1, Width: 1, Height: 1}},
	}}
	return m
}

func TestRenderText(t *testing.T) {
	got := RenderText(smallMap())
	want := "###+\n#C.#\n####\n"
	if got != want {
		t.Errorf("RenderText =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderTextLegend(t *testing.T) {
	got := RenderText(smallMap(), WithLegend())
	if !strings.Contains(got, "store") || !strings.Contains(got, "1 doors, 1 items") {
		t.Errorf("legend missing room line:\n%s", got)
	}
}

func TestGlyphs(t *testing.T) {
	g := Glyphs(smallMap())
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, GlyphWall},
		{3, 0, GlyphDoor},
		{2, 1, GlyphFloor},
		{1, 1, 'C'},
		{4, 1, GlyphEmpty},
	}
	for _, tt := range tests {
		if got := g[tt.y][tt.x]; got != tt.want {
			t.Errorf("Glyphs[%d][%d] = %q, want %q", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestFurnitureGlyph(t *testing.T) {
	tests := map[string]rune{"bed": 'B', "tv": 'T', "": '?'}
	for typ, want := range tests {
		if got := furnitureGlyph(typ); got != want {
			t.Errorf("furnitureGlyph(%q) = %q, want %q", typ, got, want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(smallMap(), WithScale(4))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 12 {
		t.Fatalf("bounds = %v, want 20x12", b)
	}

	same := func(x, y int, want interface{ RGBA() (r, g, b, a uint32) }) bool {
		r1, g1, b1, a1 := img.At(x, y).RGBA()
		r2, g2, b2, a2 := want.RGBA()
		return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
	}
	if !same(2, 2, colornames.Dimgray) {
		t.Errorf("wall pixel = %v, want dimgray", img.At(2, 2))
	}
	if !same(14, 2, colornames.Saddlebrown) {
		t.Errorf("door pixel = %v, want saddlebrown", img.At(14, 2))
	}
	if !same(10, 6, colornames.Linen) {
		t.Errorf("floor pixel = %v, want linen", img.At(10, 6))
	}
	if !same(6, 6, colornames.Steelblue) {
		t.Errorf("furniture pixel = %v, want steelblue", img.At(6, 6))
	}
}

func TestRenderPNGEmpty(t *testing.T) {
	if _, err := RenderPNG(&tilemap.TileMap{}); err == nil {
		t.Error("RenderPNG(empty) should fail")
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(smallMap())
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	m, err := tilemap.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(m.Rooms) != 1 || m.Rooms[0].ID != "store" {
		t.Errorf("rooms = %+v, want one store", m.Rooms)
	}
}
