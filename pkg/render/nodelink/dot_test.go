package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/roomgraph"
)

func testGraph() *roomgraph.Graph {
	w, h := 6, 5
	return &roomgraph.Graph{
		Width:  40,
		Height: 40,
		Rooms: []roomgraph.Room{
			{ID: "hall", Type: "hallway", Connections: []string{"kitchen", "bed"}},
			{ID: "kitchen", Name: "Kitchen", Type: "kitchen", Connections: []string{"hall"}, Furniture: []string{"table", "chair"}},
			{ID: "bed", Type: "bedroom", Width: &w, Height: &h},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	tests := []struct {
		name string
		want string
	}{
		{"undirected header", "graph G {"},
		{"display name label", `"kitchen" [label="Kitchen"]`},
		{"id label", `"hall" [label="hall"]`},
		{"edge", `"hall" -- "kitchen";`},
		{"second edge", `"hall" -- "bed";`},
	}
	for _, tt := range tests {
		if !strings.Contains(dot, tt.want) {
			t.Errorf("%s: DOT missing %q\n%s", tt.name, tt.want, dot)
		}
	}
	if n := strings.Count(dot, " -- "); n != 2 {
		t.Errorf("edge count = %d, want 2", n)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Detailed: true, Dropped: []string{"bed"}})

	for _, want := range []string{"type: bedroom", "size: 6x5", "furniture: 2", "dashed"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Count(dot, "dashed") != 1 {
		t.Errorf("only the dropped room should be dashed\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	if !strings.Contains(got, `viewBox="0 0 100.50 200.00"`) || !strings.Contains(got, `width="100"`) {
		t.Errorf("normalizeViewBox = %s", got)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := string(normalizeViewBox(plain)); got != string(plain) {
		t.Errorf("normalizeViewBox without viewBox = %s, want unchanged", got)
	}
}
