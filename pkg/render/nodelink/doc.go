// Package nodelink renders room graphs as node-link diagrams.
//
// Rooms appear as boxes and connections as undirected edges, laid out by
// Graphviz's neato engine. The diagram shows the input topology, which is
// useful next to a generated plan when a room was dropped or a door had to be
// dug by connectivity repair.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Rendering runs in-process through [github.com/goccy/go-graphviz].
package nodelink
