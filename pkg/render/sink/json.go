package sink

import (
	"fmt"

	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// RenderJSON encodes the tile map as indented JSON.
func RenderJSON(m *tilemap.TileMap) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil tile map")
	}
	return tilemap.Marshal(m)
}
