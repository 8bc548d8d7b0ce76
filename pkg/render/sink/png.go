package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// DefaultScale is the PNG cell size in pixels.
const DefaultScale = 8

// Palette colours PNG cells.
type Palette struct {
	Background color.Color
	Floor      color.Color
	Cave       color.Color
	Wall       color.Color
	Door       color.Color
	Furniture  color.Color
	Label      color.Color
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Background: colornames.Black,
		Floor:      colornames.Linen,
		Cave:       colornames.Tan,
		Wall:       colornames.Dimgray,
		Door:       colornames.Saddlebrown,
		Furniture:  colornames.Steelblue,
		Label:      colornames.Black,
	}
}

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale   int
	labels  bool
	palette Palette
}

// WithScale sets the cell size in pixels.
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithLabels draws room names at room centres.
func WithLabels() PNGOption { return func(r *pngRenderer) { r.labels = true } }

// WithPalette replaces the default colours.
func WithPalette(p Palette) PNGOption { return func(r *pngRenderer) { r.palette = p } }

// RenderPNG rasterizes the tile map.
func RenderPNG(m *tilemap.TileMap, opts ...PNGOption) ([]byte, error) {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return nil, fmt.Errorf("empty tile map")
	}
	r := pngRenderer{scale: DefaultScale, palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&r)
	}

	s := float64(r.scale)
	dc := gg.NewContext(m.Width*r.scale, m.Height*r.scale)
	dc.SetColor(r.palette.Background)
	dc.Clear()

	cell := func(x, y int, c color.Color) {
		dc.SetColor(c)
		dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
		dc.Fill()
	}
	for _, t := range m.Tiles {
		switch {
		case t.Layer == tilemap.LayerWall:
			cell(t.X, t.Y, r.palette.Wall)
		case t.Sprite == tilemap.SpriteDoor:
			cell(t.X, t.Y, r.palette.Door)
		case t.Layer == tilemap.LayerFloor && strings.HasPrefix(t.Sprite, "cave"):
			cell(t.X, t.Y, r.palette.Cave)
		case t.Layer == tilemap.LayerFloor:
			cell(t.X, t.Y, r.palette.Floor)
		}
	}

	// Furniture is drawn from room metadata so multi-cell items show their
	// full footprint.
	pad := s / 8
	for _, room := range m.Rooms {
		for _, f := range room.Furniture {
			dc.SetColor(r.palette.Furniture)
			dc.DrawRectangle(float64(f.X)*s+pad, float64(f.Y)*s+pad, float64(f.Width)*s-2*pad, float64(f.Height)*s-2*pad)
			dc.Fill()
		}
	}

	if r.labels {
		dc.SetColor(r.palette.Label)
		for _, room := range m.Rooms {
			cx := (float64(room.X) + float64(room.Width)/2) * s
			cy := (float64(room.Y) + float64(room.Height)/2) * s
			dc.DrawStringAnchored(room.Name, cx, cy, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
