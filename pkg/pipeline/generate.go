package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/generator"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// Generate builds a tile map for g within opts.Budget.
//
// The generator runs on its own goroutine. If the budget or ctx expires
// first, Generate returns immediately and the eventual result is dropped.
func Generate(ctx context.Context, g *roomgraph.Graph, opts Options) (*tilemap.TileMap, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, err
	}
	gen, err := generator.New(opts.Style, opts.GeneratorConfig())
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Style, len(g.Rooms))
	start := time.Now()

	m, err := runBounded(ctx, opts.Budget, func() (*tilemap.TileMap, error) {
		return gen.Generate(g)
	})

	placed := 0
	if m != nil {
		placed = len(m.Rooms)
	}
	hooks.OnGenerateComplete(ctx, opts.Style, placed, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if placed < len(g.Rooms) {
		opts.Logger.Warn("rooms dropped", "placed", placed, "requested", len(g.Rooms))
	}
	return m, nil
}

type generated struct {
	m   *tilemap.TileMap
	err error
}

func runBounded(ctx context.Context, budget time.Duration, fn func() (*tilemap.TileMap, error)) (*tilemap.TileMap, error) {
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	done := make(chan generated, 1)
	go func() {
		m, err := fn()
		done <- generated{m, err}
	}()

	select {
	case r := <-done:
		return r.m, r.err
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "generation exceeded %s", budget)
		}
		return nil, ctx.Err()
	}
}
