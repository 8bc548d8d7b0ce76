package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

// Options configures room graph diagrams.
type Options struct {
	// Detailed adds the room type, explicit size and furniture count to labels.
	// When false, only the display name is shown.
	Detailed bool

	// Dropped lists room IDs the generator could not place. They are drawn
	// dashed and grey.
	Dropped []string
}

// ToDOT converts a room graph to Graphviz DOT. Connections are undirected
// and each pair is emitted once.
func ToDOT(g *roomgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, r := range g.Rooms {
		attrs := fmtAttrs(r, fmtLabel(r, opts.Detailed), slices.Contains(opts.Dropped, r.ID))
		fmt.Fprintf(&buf, "  %q [%s];\n", r.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range g.Pairs() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", g.Rooms[p[0]].ID, g.Rooms[p[1]].ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(r roomgraph.Room, detailed bool) string {
	if !detailed {
		return r.DisplayName()
	}

	parts := []string{"type: " + r.Type}
	if r.Width != nil && r.Height != nil {
		parts = append(parts, fmt.Sprintf("size: %dx%d", *r.Width, *r.Height))
	}
	if len(r.Furniture) > 0 {
		parts = append(parts, fmt.Sprintf("furniture: %d", len(r.Furniture)))
	}
	return r.DisplayName() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(r roomgraph.Room, label string, dropped bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if dropped {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
