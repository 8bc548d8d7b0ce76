package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/generator"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/render/sink"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

var previewHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	flags := defaultGenerateFlags()

	cmd := &cobra.Command{
		Use:   "preview [graph.json]",
		Short: "Browse seeds and styles for a room graph in the terminal",
		Long: `Browse seeds and styles for a room graph in the terminal.

Keys:
  n, →   next seed
  p, ←   previous seed
  s      cycle generator style
  q      quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			g, err := pipeline.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			p := tea.NewProgram(newPreviewModel(cmd.Context(), g, opts), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(previewModel); ok {
				printNextStep("Write this plan", fmt.Sprintf("%s generate %s --style %s --seed %d",
					appName, args[0], fm.opts.Style, fm.opts.Seed))
			}
			return nil
		},
	}

	addGenerateFlags(cmd, &flags)
	return cmd
}

// generatedMsg carries one finished generation back to the model.
type generatedMsg struct {
	style   string
	seed    uint64
	tilemap *tilemap.TileMap
	elapsed time.Duration
	err     error
}

// previewModel is the bubbletea model for the seed browser.
type previewModel struct {
	ctx     context.Context
	graph   *roomgraph.Graph
	opts    pipeline.Options
	tilemap *tilemap.TileMap
	elapsed time.Duration
	err     error
	busy    bool
}

func newPreviewModel(ctx context.Context, g *roomgraph.Graph, opts pipeline.Options) previewModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return previewModel{ctx: ctx, graph: g, opts: opts, busy: true}
}

func (m previewModel) Init() tea.Cmd {
	return m.generate()
}

// generate runs the pipeline for the current style and seed.
func (m previewModel) generate() tea.Cmd {
	ctx, g, opts := m.ctx, m.graph, m.opts
	return func() tea.Msg {
		start := time.Now()
		tm, err := pipeline.Generate(ctx, g, opts)
		return generatedMsg{style: opts.Style, seed: opts.Seed, tilemap: tm, elapsed: time.Since(start), err: err}
	}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "right", "l":
			m.opts.Seed++
		case "p", "left", "h":
			if m.opts.Seed <= 1 {
				return m, nil
			}
			m.opts.Seed--
		case "s":
			m.opts.Style = nextStyle(m.opts.Style)
		default:
			return m, nil
		}
		m.busy = true
		return m, m.generate()
	case generatedMsg:
		if msg.style != m.opts.Style || msg.seed != m.opts.Seed {
			return m, nil
		}
		m.busy = false
		m.tilemap, m.elapsed, m.err = msg.tilemap, msg.elapsed, msg.err
	}
	return m, nil
}

func nextStyle(current string) string {
	for i, s := range generator.Styles {
		if s == current {
			return generator.Styles[(i+1)%len(generator.Styles)]
		}
	}
	return generator.DefaultStyle
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Floorplan Preview"))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("n/→ next seed  p/← previous seed  s style  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
		b.WriteString("\n")
	case m.tilemap != nil:
		b.WriteString(sink.RenderText(m.tilemap, sink.WithColor()))
		b.WriteString("\n")
	}

	b.WriteString(m.statsTable())
	b.WriteString("\n")
	if m.tilemap != nil {
		if dropped := pipeline.Dropped(m.graph, m.tilemap); len(dropped) > 0 {
			b.WriteString(StyleWarning.Render("dropped: " + strings.Join(dropped, ", ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m previewModel) statsTable() string {
	status := "ready"
	if m.busy {
		status = "generating"
	}
	rows := [][]string{
		{"Style", m.opts.Style},
		{"Seed", fmt.Sprintf("%d", m.opts.Seed)},
		{"Status", status},
	}
	if m.tilemap != nil && m.err == nil {
		furniture := 0
		for _, r := range m.tilemap.Rooms {
			furniture += len(r.Furniture)
		}
		rows = append(rows,
			[]string{"Strategy", m.tilemap.Strategy},
			[]string{"Rooms", fmt.Sprintf("%d/%d", len(m.tilemap.Rooms), len(m.graph.Rooms))},
			[]string{"Tiles", fmt.Sprintf("%d", len(m.tilemap.Tiles))},
			[]string{"Furniture", fmt.Sprintf("%d", furniture)},
			[]string{"Time", m.elapsed.Round(time.Millisecond).String()},
		)
	}

	keyStyle := lipgloss.NewStyle().Foreground(colorGray)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
		})
	return t.Render()
}
