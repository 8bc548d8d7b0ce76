package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "floorplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newServerCache returns a Redis cache when url is set, else the local
// file cache.
func newServerCache(ctx context.Context, url string, noCache bool) (cache.Cache, error) {
	if url == "" {
		return newCache(noCache)
	}
	return cache.NewRedisCache(ctx, url)
}

// =============================================================================
// Paths
// =============================================================================

// envCacheDir overrides the cache location outright.
const envCacheDir = "FLOORPLAN_CACHE_DIR"

// cacheDir resolves where tile maps and artifacts are cached: $FLOORPLAN_CACHE_DIR,
// then $XDG_CACHE_HOME/floorplan, then ~/.cache/floorplan. A relative
// XDG_CACHE_HOME is ignored, as the XDG base directory rules require.
func cacheDir() (string, error) {
	if dir := os.Getenv(envCacheDir); dir != "" {
		return filepath.Clean(dir), nil
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// generateFlags are the generation options shared by several commands.
type generateFlags struct {
	style     string
	seed      uint64
	doorWidth int
	hint      string
	mirror    bool
	theme     string
	budget    float64 // seconds
}

func (f *generateFlags) options() (pipeline.Options, error) {
	opts := pipeline.Options{
		Style:     f.style,
		Seed:      f.seed,
		DoorWidth: f.doorWidth,
		Hint:      f.hint,
		Mirror:    f.mirror,
	}
	if f.budget > 0 {
		opts.Budget = secondsToDuration(f.budget)
	}
	if f.theme != "" {
		t, err := theme.Load(f.theme)
		if err != nil {
			return opts, err
		}
		opts.Theme = t
	}
	return opts, opts.ValidateForGenerate()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.png, .json, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "floorplan"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
