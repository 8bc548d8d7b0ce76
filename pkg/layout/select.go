package layout

import (
	"strings"

	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

// Words that mark a room as a corridor or as a hub candidate.
var (
	corridorWords = []string{"corridor", "hall", "passage"}
	hubWords      = []string{"living", "common", "lobby", "foyer"}
)

// Choice is a strategy together with the room it is anchored on.
type Choice struct {
	Strategy Strategy
	Anchor   int
}

// Select picks a growth strategy for g. The rules are tried in order:
//
//  1. Spine on the first corridor-like room that connects to more than one
//     room or is more than twice as long as it is wide.
//  2. Hub on the first living-like room with at least two connections.
//  3. Cluster on the room with the largest default area.
//
// A hint naming "spine", "hub" or "cluster" overrides the rules; the anchor
// is then the first room fitting that strategy, or the largest room.
func Select(g *roomgraph.Graph, types roomgraph.Types, hint string) Choice {
	if types == nil {
		types = roomgraph.DefaultTypes()
	}
	adj := g.Adjacency()

	spine := -1
	hub := -1
	for i, r := range g.Rooms {
		if spine < 0 && r.Matches(corridorWords...) &&
			(len(adj[i]) > 1 || types.SizeOf(r).Aspect() > 2) {
			spine = i
		}
		if hub < 0 && r.Matches(hubWords...) && len(adj[i]) >= 2 {
			hub = i
		}
	}
	largest := largestRoom(g, types)

	if s, ok := hinted(hint); ok {
		anchor := largest
		switch {
		case s == Spine && spine >= 0:
			anchor = spine
		case s == Hub && hub >= 0:
			anchor = hub
		}
		return Choice{Strategy: s, Anchor: anchor}
	}

	switch {
	case spine >= 0:
		return Choice{Strategy: Spine, Anchor: spine}
	case hub >= 0:
		return Choice{Strategy: Hub, Anchor: hub}
	default:
		return Choice{Strategy: Cluster, Anchor: largest}
	}
}

// largestRoom returns the room with the largest area; ties keep the first.
func largestRoom(g *roomgraph.Graph, types roomgraph.Types) int {
	best, area := 0, -1
	for i, r := range g.Rooms {
		if a := types.SizeOf(r).Area(); a > area {
			best, area = i, a
		}
	}
	return best
}

func hinted(hint string) (Strategy, bool) {
	h := strings.ToLower(hint)
	for _, s := range []Strategy{Spine, Hub, Cluster} {
		if strings.Contains(h, string(s)) {
			return s, true
		}
	}
	return "", false
}
