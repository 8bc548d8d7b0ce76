// Package tilemap defines the generated floor plan as handed to consumers.
//
// A [TileMap] lists one tile per non-background cell and one per furniture
// item, plus per-room metadata: bounds, door cells and furniture. Tiles are
// kept in a canonical order (floor layer, wall layer, furniture layer; then
// row, then column) so the same input and seed always marshal to the same
// bytes.
//
// [FromGrid] converts a finished cell grid into floor and wall tiles;
// generators then attach rooms with [TileMap.AddRoom] and call
// [TileMap.Finish] before returning.
package tilemap
