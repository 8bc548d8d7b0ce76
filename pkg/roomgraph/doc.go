// Package roomgraph defines the abstract input to floor plan generation.
//
// A [Graph] lists rooms with a semantic type, the rooms they should connect
// to, and the furniture they should contain, together with the canvas size
// the plan must fit in:
//
//	{
//	  "width": 40, "height": 40,
//	  "rooms": [
//	    {"id": "r1", "type": "corridor", "connections": ["r2", "r3"]},
//	    {"id": "r2", "type": "bedroom", "connections": ["r1"], "furniture": ["bed", "chest"]},
//	    {"id": "r3", "type": "kitchen", "connections": ["r1"]}
//	  ]
//	}
//
// Graphs are produced by an external authoring source. [Graph.Validate]
// rejects malformed graphs before any layout work starts; nothing downstream
// re-checks the input.
//
// # Room Types
//
// Rooms without explicit dimensions take them from a [Types] table keyed by
// type name. The table also carries the semantic importance used by the BSP
// layout and the floor sprite used in the output. [DefaultTypes] returns the
// built-in table; themes may override it.
package roomgraph
