// Package grid holds the cell grid that floor plans are drawn on.
//
// Every cell is one of four states ([Background], [Floor], [Wall], [Door]),
// modelled as a closed set: [Cell] has no exported fields, so no other state
// can be constructed. Cells only ever promote:
//
//	Background → Floor → Wall → Door
//
// and [Grid.Set] refuses any transition that would move a cell backwards.
// Each floor cell also records which room owns it, or [NoOwner] for floor
// that belongs to no room (dug corridors, cave floor, the hall of a hull).
//
// The package also contains the stages that operate purely on cells: the
// rasterizer ([Rasterize]), the wall skinner ([SkinWalls]) and the zone
// classifier ([Grid.Zones]).
package grid
