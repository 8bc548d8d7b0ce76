// Package sink renders generated tile maps into output formats.
//
// # Overview
//
// A "sink" turns a [tilemap.TileMap] into bytes. This package provides:
//
//   - JSON: the canonical tile map document
//   - Text: a character preview, optionally coloured for terminals
//   - PNG: a raster preview drawn with gg
//
// # Text Output
//
// [RenderText] draws one character per cell:
//
//	#  wall
//	.  floor
//	+  door
//	B  furniture (first letter of the item type)
//
// Colour is off by default so the output is stable in files and tests:
//
//	txt := sink.RenderText(m, sink.WithColor(), sink.WithLegend())
//
// # PNG Output
//
// [RenderPNG] paints each cell as a square of scale pixels. Room names are
// drawn at room centres with [WithLabels].
//
//	png, err := sink.RenderPNG(m, sink.WithScale(12), sink.WithLabels())
//
// [tilemap.TileMap]: github.com/matzehuels/floorplan/pkg/tilemap.TileMap
package sink
