package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/render/nodelink"
)

// graphCommand creates the graph command for room graph diagrams.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output   string
		detailed bool
		dotOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "graph [graph.json]",
		Short: "Draw the room graph as a node-link diagram",
		Long: `Draw the room graph as a node-link diagram.

Rooms become boxes and connections become edges. The diagram is rendered to
SVG with Graphviz, or printed as DOT source with --dot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := pipeline.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			dot := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})
			if dotOnly {
				if output == "" {
					output = "-"
				}
				return writeFile(output, []byte(dot))
			}

			svg, err := nodelink.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return fmt.Errorf("render graph: %w", err)
			}
			if output == "" {
				output = basePath("", args[0]) + "_graph." + pipeline.FormatSVG
			}
			return writeFile(output, svg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file; "-" writes to stdout`)
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include room type, size and furniture count")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "print DOT source instead of SVG")

	return cmd
}
