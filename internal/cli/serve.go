package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/internal/api"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)
	flags := defaultGenerateFlags()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API over HTTP",
		Long: `Serve the generation API over HTTP.

Routes:
  GET  /healthz
  POST /v1/generate?style=&seed=&format=
  POST /v1/validate

Generated maps are cached in the local cache directory, or in Redis when
--redis is given (for example redis://localhost:6379/0). Query parameters
override --style and --seed per request; --theme, --door-width and --budget
apply to every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := flags.options()
			if err != nil {
				return err
			}

			store, err := newServerCache(ctx, redisURL, noCache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			var keyer cache.Keyer
			if opts.Theme != nil && opts.Theme.Hash != "" {
				keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), "theme:"+opts.Theme.Hash+":")
			}
			runner := pipeline.NewRunner(store, keyer, c.Logger)
			defer runner.Close()

			srv := api.New(runner, api.Config{
				Budget:    opts.Budget,
				Theme:     opts.Theme,
				DoorWidth: opts.DoorWidth,
				Logger:    c.Logger,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}

	addGenerateFlags(cmd, &flags)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
