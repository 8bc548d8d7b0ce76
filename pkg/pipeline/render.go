package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/render/nodelink"
	"github.com/matzehuels/floorplan/pkg/render/sink"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, m *tilemap.TileMap, g *roomgraph.Graph, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, m, g, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, m *tilemap.TileMap, g *roomgraph.Graph, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(m)
		case FormatText:
			data = []byte(sink.RenderText(m, sink.WithLegend()))
		case FormatPNG:
			pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
			if opts.Labels {
				pngOpts = append(pngOpts, sink.WithLabels())
			}
			data, err = sink.RenderPNG(m, pngOpts...)
		case FormatSVG:
			dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true, Dropped: Dropped(g, m)})
			data, err = nodelink.RenderSVG(ctx, dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// Dropped returns the IDs of rooms in g that m does not contain, in graph
// order.
func Dropped(g *roomgraph.Graph, m *tilemap.TileMap) []string {
	var out []string
	for _, r := range g.Rooms {
		if _, ok := m.Room(r.ID); !ok {
			out = append(out, r.ID)
		}
	}
	return out
}
