package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
)

func defaultGenerateFlags() generateFlags {
	return generateFlags{
		style:     pipeline.DefaultStyle,
		seed:      pipeline.DefaultSeed,
		doorWidth: pipeline.DefaultDoorWidth,
		budget:    pipeline.DefaultBudget.Seconds(),
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		refresh    bool
		scale      int
		labels     bool
	)
	flags := defaultGenerateFlags()

	cmd := &cobra.Command{
		Use:   "generate [graph.json]",
		Short: "Generate a tile map from a room graph",
		Long: `Generate a tile map from a room graph.

The room graph is read from the given file, or from standard input when the
argument is "-". Each requested format is written next to the input (or to
the --output base path):

  json  the tile map document
  txt   a character preview with a room legend
  png   a raster preview
  svg   a diagram of the input room graph

Generation is deterministic: the same graph, style and seed always produce
the same map. Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(formatsStr)
			opts.Scale = scale
			opts.Labels = labels
			opts.Refresh = refresh
			opts.Logger = c.Logger
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	addGenerateFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (single format) or base path; "-" writes to stdout`)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), txt, png, svg (comma-separated)")
	cmd.Flags().IntVar(&scale, "scale", pipeline.DefaultScale, "PNG cell size in pixels")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw room names on the PNG")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even if cached")
	registerFormatCompletion(cmd)

	return cmd
}

// runGenerate loads the graph, runs the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	prog := newProgress(c.Logger)

	g, err := pipeline.ParseFile(input)
	if err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s plan...", opts.Style))
	spinner.Start()

	result, err := runner.Execute(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(result.Artifacts, opts.Formats, input, output); err != nil {
		return err
	}

	if output != "-" {
		printStats(result.Stats, result.CacheInfo.GenerateHit)
		if dropped := pipeline.Dropped(g, result.TileMap); len(dropped) > 0 {
			printWarning("Dropped %d room(s): %v", len(dropped), dropped)
		}
	}
	prog.done("Generation complete")
	return nil
}

// writeArtifacts writes each rendered format. A single format goes to output
// verbatim; several formats share the base path derived from output or input.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	if len(formats) == 1 && output != "" {
		return writeFile(output, artifacts[formats[0]])
	}
	if output == "-" {
		return fmt.Errorf("stdout takes a single format, got %d", len(formats))
	}
	base := basePath(output, input)
	for _, format := range formats {
		if err := writeFile(base+"."+format, artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "-" {
		printFile(path)
	}
	return nil
}
