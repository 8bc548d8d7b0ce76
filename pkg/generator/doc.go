// Package generator turns a room graph into a finished tile map.
//
// Every style implements [Generator]. [New] selects the implementation by
// style name:
//
//   - structured: strategy selection, spine/hub/cluster growth, door carving
//   - bsp: lot subdivision of the whole canvas
//   - organic: a cellular-automaton cave with rooms carved in as fixed blocks
//   - geometric: a symmetric hall inside an elliptical hull
//
// All styles share the back half of the pipeline: connectivity repair,
// furniture placement and tile map assembly.
//
// # Determinism and concurrency
//
// Each Generate call builds its own grid and its own random source seeded
// from [Config.Seed], so the same graph and seed always produce the same
// tile map, and one Generator may serve concurrent calls.
package generator
