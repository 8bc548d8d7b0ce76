package roomgraph

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/floorplan/pkg/errors"
)

// Room is one node of the input graph. It is never modified after decoding.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Type        string   `json:"type"`
	Connections []string `json:"connections,omitempty"`
	Furniture   []string `json:"furniture,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Height      *int     `json:"height,omitempty"`
}

// DisplayName returns Name if set, otherwise the ID.
func (r Room) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Matches reports whether the room's type or name contains any of words,
// ignoring case.
func (r Room) Matches(words ...string) bool {
	typ, name := strings.ToLower(r.Type), strings.ToLower(r.Name)
	for _, w := range words {
		if strings.Contains(typ, w) || (name != "" && strings.Contains(name, w)) {
			return true
		}
	}
	return false
}

// Graph is the room graph handed to a generator.
type Graph struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Rooms       []Room `json:"rooms"`
	Description string `json:"description,omitempty"`
}

// Validate rejects graphs the engine cannot lay out. It checks the canvas
// range, room identifiers, uniqueness, connection targets and explicit
// dimensions, and reports the first problem found.
func (g *Graph) Validate() error {
	if err := errors.ValidateCanvas(g.Width, g.Height); err != nil {
		return err
	}
	if len(g.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "room graph has no rooms")
	}

	seen := make(map[string]bool, len(g.Rooms))
	for i, r := range g.Rooms {
		if err := errors.ValidateRoomID(r.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRoom, err, "room %d", i)
		}
		if seen[r.ID] {
			return errors.New(errors.ErrCodeDuplicateRoom, "duplicate room id %q", r.ID)
		}
		seen[r.ID] = true
		if strings.TrimSpace(r.Type) == "" {
			return errors.New(errors.ErrCodeInvalidRoom, "room %q: type is required", r.ID)
		}
		if err := errors.ValidateDimension(r.ID, "width", r.Width); err != nil {
			return err
		}
		if err := errors.ValidateDimension(r.ID, "height", r.Height); err != nil {
			return err
		}
	}

	for _, r := range g.Rooms {
		for _, c := range r.Connections {
			if c == r.ID {
				return errors.New(errors.ErrCodeInvalidRoom, "room %q connects to itself", r.ID)
			}
			if !seen[c] {
				return errors.New(errors.ErrCodeUnknownConnection, "room %q connects to unknown room %q", r.ID, c)
			}
		}
	}
	return nil
}

// Index maps room IDs to their position in Rooms.
func (g *Graph) Index() map[string]int {
	idx := make(map[string]int, len(g.Rooms))
	for i, r := range g.Rooms {
		idx[r.ID] = i
	}
	return idx
}

// Adjacency returns the undirected connection lists by room index.
// A connection declared on either side counts for both. Neighbours keep the
// order in which they were first declared and contain no duplicates.
func (g *Graph) Adjacency() [][]int {
	idx := g.Index()
	adj := make([][]int, len(g.Rooms))
	seen := make([]map[int]bool, len(g.Rooms))
	for i := range seen {
		seen[i] = map[int]bool{}
	}
	link := func(a, b int) {
		if a == b || seen[a][b] {
			return
		}
		seen[a][b] = true
		adj[a] = append(adj[a], b)
	}
	for i, r := range g.Rooms {
		for _, c := range r.Connections {
			j, ok := idx[c]
			if !ok {
				continue
			}
			link(i, j)
			link(j, i)
		}
	}
	return adj
}

// Pairs returns every connected pair once, lower index first, in declaration order.
func (g *Graph) Pairs() [][2]int {
	var out [][2]int
	for i, ns := range g.Adjacency() {
		for _, j := range ns {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// =============================================================================
// Serialization
// =============================================================================

// Read decodes and validates a room graph.
func Read(r io.Reader) (*Graph, error) {
	var g Graph
	dec := json.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode room graph")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReadFile decodes and validates the room graph stored at path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "room graph %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Marshal encodes g in its canonical form. Used for cache keys, so the output
// only depends on the graph's content.
func Marshal(g *Graph) ([]byte, error) {
	return json.Marshal(g)
}
