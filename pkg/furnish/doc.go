// Package furnish places requested furniture inside rooms.
//
// The [Solver] is built once per generation from an immutable [Rules] table
// and the generation's random source. For every room it classifies the floor
// into zones, orders the requested items and searches for the first position
// and rotation that satisfies every constraint:
//
//   - the footprint lies entirely on the room's own floor
//   - it does not overlap furniture already placed in the room
//   - door-blocking items keep clear of door cells and their thresholds
//   - items with a facing target point toward it within a 60° cone
//
// Items that fit nowhere are dropped and logged at debug level. Placement
// never fails.
//
// # Rotation
//
// Rotation is measured in degrees: 0 faces +y (south), 90 faces -x (west),
// 180 faces -y (north) and 270 faces +x (east). Rotations of 90 and 270 swap
// the footprint's width and height.
package furnish
