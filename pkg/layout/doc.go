// Package layout places room rectangles on the canvas.
//
// Given a validated room graph it produces a [Plan]: one rectangle per room
// that could be placed, with no two interiors overlapping. Rectangles include
// the wall ring, and rooms that share a wall overlap by exactly one line.
//
// # Strategies
//
// [Select] inspects the graph and picks one of three adjacency-growth
// strategies, each anchored on a specific room:
//
//   - Spine: a corridor centred on the canvas with its neighbours packed
//     along both long sides
//   - Hub: a central room with neighbours on eight radial slots
//   - Cluster: organic growth from the largest room, the universal fallback
//
// Rooms that do not fit their strategy's preferred position attach to an
// already placed room through [Snap], a perimeter scan for a free position
// sharing a wall with the parent. A room that cannot be attached anywhere is
// logged and left out of the plan; layout never fails.
//
// [Layouter.BSP] is the alternative lot-subdivision layout: the canvas is cut
// into leaves and rooms are assigned to leaves by importance.
//
// # Determinism
//
// All random choices go through the *rand.Rand handed to [New], so a fixed
// seed reproduces the same plan.
package layout
