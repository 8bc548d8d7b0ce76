package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [graph.json...]",
		Short: "Check room graphs without generating",
		Long: `Check room graphs without generating.

Each file is decoded and validated: canvas size, room identifiers, duplicate
rooms, connection targets and explicit dimensions. The first problem in each
file is reported with its error code.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				g, err := pipeline.ParseFile(path)
				if err != nil {
					failed++
					printError("%s: %s %s", path, errors.GetCode(err), errors.UserMessage(err))
					continue
				}
				printSuccess("%s", path)
				printDetail("%dx%d canvas, %d rooms, %d connections", g.Width, g.Height, len(g.Rooms), len(g.Pairs()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d graph(s) invalid", failed, len(args))
			}
			return nil
		},
	}
}
