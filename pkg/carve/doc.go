// Package carve opens doors between rooms and repairs connectivity.
//
// [Doors] carves a door through the wall of every connected pair of rooms
// whose rectangles touch along a long enough seam. [Repair] then guarantees
// that every room can be reached from the root room over Floor and Door
// cells, digging corridors where the layout left a room cut off.
//
// Both operations only promote cells (Background to Floor, Wall to Door), so
// the grid's promotion model holds throughout.
package carve
