// Package geom provides the integer geometry shared by every floorplan stage.
//
// All coordinates are tile cells on a canvas whose origin is the top-left
// corner, with x growing to the right and y growing downward.
//
// # Rectangles
//
// A [Rect] placed for a room includes the room's wall ring. Its interior,
// obtained with [Rect.Inset], is the floor area. Two rooms may share a wall
// line, which shows up as a one-cell overlap of their rectangles; anything
// deeper is a collision:
//
//	a := geom.Rect{X: 0, Y: 0, W: 10, H: 8}
//	b := geom.Rect{X: 9, Y: 0, W: 6, H: 8}   // shares a's east wall
//	a.Collides(b, geom.SharedWall)            // false
//	a.Inset(1).Overlaps(b.Inset(1))           // false - interiors are disjoint
//
// # Seams
//
// [Seam] describes how two touching rectangles meet: the axis of the wall
// between them, the wall cells separating their interiors, and the span of
// interior cells both rooms can reach through that wall. Door carving and
// snap search are both expressed in terms of seams.
package geom
