// Package pkg provides the core libraries for Floorplan tile map generation.
//
// # Overview
//
// Floorplan turns a room graph (rooms, their sizes and which rooms must share
// a door) into a furnished tile map for 2D games. The pkg directory is
// organized into four main areas:
//
//  1. Input - [roomgraph] parses and validates room graphs, [theme] loads
//     TOML overrides for room and furniture tables.
//  2. Synthesis - [layout] places rectangles, [grid] rasterizes them,
//     [carve] builds walls and doors, [furnish] places items and
//     [generator] ties the stages together per style.
//  3. Output - [tilemap] is the result document, [render/sink] draws it as
//     text or PNG and [render/nodelink] draws the input graph.
//  4. Orchestration - [pipeline] runs generate and render with [cache],
//     [observability] exposes hooks and [errors] carries error codes.
//
// # Architecture
//
//	room graph JSON
//	       ↓
//	 [roomgraph] (validate)
//	       ↓
//	 [layout] → [grid] → [carve] → [furnish]
//	       ↓
//	 [tilemap]
//	       ↓
//	 JSON/TXT/PNG/SVG
//
// # Quick Start
//
//	g, _ := roomgraph.ReadFile("house.json")
//	res, _ := pipeline.NewRunner(cache.NewNullCache(), nil, nil).
//	    Execute(ctx, g, pipeline.Options{Style: "bsp", Seed: 7, Formats: []string{"txt"}})
//	fmt.Print(string(res.Artifacts["txt"]))
//
// Generation is deterministic: the same graph, style, seed and theme always
// produce the same tile map.
//
// [roomgraph]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/roomgraph
// [theme]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/theme
// [layout]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/layout
// [grid]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/grid
// [carve]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/carve
// [furnish]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/furnish
// [generator]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/generator
// [tilemap]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/tilemap
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/floorplan/pkg/errors
package pkg
