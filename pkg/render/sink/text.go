package sink

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// Glyphs for structural cells.
const (
	GlyphEmpty = ' '
	GlyphFloor = '.'
	GlyphWall  = '#'
	GlyphDoor  = '+'
)

var (
	styleWall      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleFloor     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleDoor      = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleFurniture = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleLegend    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	color  bool
	legend bool
}

// WithColor styles glyphs with ANSI colours.
func WithColor() TextOption { return func(r *textRenderer) { r.color = true } }

// WithLegend appends one line per room after the map.
func WithLegend() TextOption { return func(r *textRenderer) { r.legend = true } }

// Glyphs returns the character grid for m, indexed [y][x].
func Glyphs(m *tilemap.TileMap) [][]rune {
	rows := make([][]rune, m.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(string(GlyphEmpty), m.Width))
	}
	set := func(x, y int, c rune) {
		if x >= 0 && y >= 0 && x < m.Width && y < m.Height {
			rows[y][x] = c
		}
	}
	for _, t := range m.Tiles {
		switch {
		case t.Layer == tilemap.LayerWall:
			set(t.X, t.Y, GlyphWall)
		case t.Layer == tilemap.LayerFloor && t.Sprite == tilemap.SpriteDoor:
			set(t.X, t.Y, GlyphDoor)
		case t.Layer == tilemap.LayerFloor:
			set(t.X, t.Y, GlyphFloor)
		}
	}
	for _, room := range m.Rooms {
		for _, f := range room.Furniture {
			c := furnitureGlyph(f.Type)
			for dy := range f.Height {
				for dx := range f.Width {
					set(f.X+dx, f.Y+dy, c)
				}
			}
		}
	}
	return rows
}

func furnitureGlyph(typ string) rune {
	for _, c := range typ {
		return unicode.ToUpper(c)
	}
	return '?'
}

// RenderText draws the tile map as text, one line per row.
func RenderText(m *tilemap.TileMap, opts ...TextOption) string {
	var r textRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var b strings.Builder
	for _, row := range Glyphs(m) {
		line := strings.TrimRight(string(row), string(GlyphEmpty))
		if r.color {
			line = colorize([]rune(line))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if r.legend {
		for _, room := range m.Rooms {
			line := fmt.Sprintf("%-12s %-10s %dx%d at (%d,%d), %d doors, %d items",
				room.ID, room.Type, room.Width, room.Height, room.X, room.Y, len(room.Doors), len(room.Furniture))
			if r.color {
				line = styleLegend.Render(line)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// colorize styles runs of glyphs that share a style.
func colorize(row []rune) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && glyphClass(row[j]) == glyphClass(row[i]) {
			j++
		}
		run := string(row[i:j])
		switch glyphClass(row[i]) {
		case GlyphWall:
			run = styleWall.Render(run)
		case GlyphFloor:
			run = styleFloor.Render(run)
		case GlyphDoor:
			run = styleDoor.Render(run)
		case 'F':
			run = styleFurniture.Render(run)
		}
		b.WriteString(run)
		i = j
	}
	return b.String()
}

func glyphClass(c rune) rune {
	switch c {
	case GlyphEmpty, GlyphFloor, GlyphWall, GlyphDoor:
		return c
	}
	return 'F'
}
