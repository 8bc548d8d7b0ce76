package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Floorplan turns room graphs into furnished tile maps",
		Long: `Floorplan is a CLI tool that lays out a graph of rooms on a grid, carves walls
and doors, repairs connectivity and places furniture, producing a tile map
for 2D games.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// addGenerateFlags registers the generation flags shared by generate, preview and serve.
func addGenerateFlags(cmd *cobra.Command, f *generateFlags) {
	cmd.Flags().StringVar(&f.style, "style", f.style, "generator style: structured (default), bsp, organic, geometric")
	cmd.Flags().Uint64Var(&f.seed, "seed", f.seed, "random seed")
	cmd.Flags().IntVar(&f.doorWidth, "door-width", f.doorWidth, "door width in cells")
	cmd.Flags().StringVar(&f.hint, "hint", "", "force a growth strategy: spine, hub, cluster")
	cmd.Flags().BoolVar(&f.mirror, "mirror", false, "mirror rooms left/right (geometric)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme file (TOML) overriding room and furniture tables")
	cmd.Flags().Float64Var(&f.budget, "budget", f.budget, "generation time budget in seconds")
	registerGenerateCompletions(cmd)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
