package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/floorplan/pkg/pipeline"
)

func newTestPreview(t *testing.T) previewModel {
	t.Helper()
	g, err := pipeline.ParseFile("testdata/apartment.json")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	f := defaultGenerateFlags()
	opts, err := f.options()
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}
	return newPreviewModel(context.Background(), g, opts)
}

// step feeds msg to the model and runs any returned command once.
func step(t *testing.T, m previewModel, msg tea.Msg) previewModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(previewModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			if _, ok := out.(generatedMsg); ok {
				next, _ = m.Update(out)
				m = next.(previewModel)
			}
		}
	}
	return m
}

func TestPreviewInitGenerates(t *testing.T) {
	m := newTestPreview(t)
	msg := m.Init()()
	next, _ := m.Update(msg)
	m = next.(previewModel)

	if m.busy {
		t.Error("busy after generation finished")
	}
	if m.err != nil {
		t.Fatalf("generation error: %v", m.err)
	}
	if m.tilemap == nil {
		t.Fatal("no tile map after generation")
	}
	if !strings.Contains(m.View(), "Seed") {
		t.Error("View() missing stats table")
	}
}

func TestPreviewSeedKeys(t *testing.T) {
	m := newTestPreview(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.opts.Seed != pipeline.DefaultSeed+1 {
		t.Errorf("seed after n = %d, want %d", m.opts.Seed, pipeline.DefaultSeed+1)
	}
	if m.tilemap == nil || m.tilemap.Seed != m.opts.Seed {
		t.Error("tile map not regenerated for new seed")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.opts.Seed != pipeline.DefaultSeed {
		t.Errorf("seed after left = %d, want %d", m.opts.Seed, pipeline.DefaultSeed)
	}

	m.opts.Seed = 1
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if m.opts.Seed != 1 {
		t.Errorf("seed below 1 = %d, want 1", m.opts.Seed)
	}
}

func TestPreviewStyleCycle(t *testing.T) {
	m := newTestPreview(t)
	seen := map[string]bool{m.opts.Style: true}
	for range len(pipeline.ValidStyles) {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
		seen[m.opts.Style] = true
	}
	if m.opts.Style != pipeline.DefaultStyle {
		t.Errorf("style after full cycle = %q, want %q", m.opts.Style, pipeline.DefaultStyle)
	}
	if len(seen) != len(pipeline.ValidStyles) {
		t.Errorf("visited %d styles, want %d", len(seen), len(pipeline.ValidStyles))
	}
}

func TestPreviewIgnoresStaleResult(t *testing.T) {
	m := newTestPreview(t)
	stale := generatedMsg{style: m.opts.Style, seed: m.opts.Seed + 7}
	next, _ := m.Update(stale)
	m = next.(previewModel)
	if !m.busy {
		t.Error("stale result cleared busy flag")
	}
}

func TestPreviewQuit(t *testing.T) {
	m := newTestPreview(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
