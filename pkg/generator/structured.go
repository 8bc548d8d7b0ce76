package generator

import (
	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// structured grows rooms from an anchor with the strategy picked by
// [layout.Select].
type structured struct{ cfg Config }

func (s *structured) Generate(g *roomgraph.Graph) (*tilemap.TileMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := newBuild(s.cfg, StyleStructured, g)

	hint := s.cfg.Hint
	if hint == "" {
		hint = g.Description
	}
	choice := layout.Select(g, s.cfg.Types, hint)
	s.cfg.Logger.Debug("strategy selected", "strategy", choice.Strategy, "anchor", g.Rooms[choice.Anchor].ID)

	b.usePlan(b.layouter().Run(choice))
	b.paintRooms()
	b.carveConnections()
	return b.finish(), nil
}

// bsp subdivides the canvas into one lot per room.
type bsp struct{ cfg Config }

func (s *bsp) Generate(g *roomgraph.Graph) (*tilemap.TileMap, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := newBuild(s.cfg, StyleBSP, g)
	b.usePlan(b.layouter().BSP())
	b.paintRooms()
	b.carveConnections()
	return b.finish(), nil
}
