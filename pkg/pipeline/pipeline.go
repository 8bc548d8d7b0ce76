// Package pipeline provides the generation pipeline shared by the CLI and the
// HTTP API.
//
// This package wraps the floor-plan generators with option defaults, a time
// budget, caching and output rendering, so every entry point behaves the same.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Decode and validate a room graph document
//  2. Generate: Run the selected generator to produce a tile map
//  3. Render: Encode the tile map as JSON, text or PNG, or draw the room
//     graph as SVG
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	g, err := pipeline.ParseFile("apartment.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, g, pipeline.Options{
//	    Style:   "bsp",
//	    Seed:    7,
//	    Formats: []string{"json", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// # Budget
//
// Generation itself cannot be interrupted. [Generate] runs it on its own
// goroutine and returns a TIMEOUT error once [Options.Budget] elapses; the
// late result is discarded.
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/generator"
	"github.com/matzehuels/floorplan/pkg/render/sink"
	"github.com/matzehuels/floorplan/pkg/roomgraph"
	"github.com/matzehuels/floorplan/pkg/theme"
	"github.com/matzehuels/floorplan/pkg/tilemap"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultDoorWidth is the default number of cells per door.
	DefaultDoorWidth = 2

	// MaxDoorWidth bounds the door width. Wider doors no longer fit the
	// smallest rooms.
	MaxDoorWidth = 4

	// DefaultBudget bounds a single generation.
	DefaultBudget = 10 * time.Second

	// DefaultScale is the default PNG cell size in pixels.
	DefaultScale = sink.DefaultScale

	// MaxScale bounds the PNG cell size.
	MaxScale = 64
)

// DefaultStyle is the default generator style.
const DefaultStyle = generator.DefaultStyle

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatText = "txt"
	FormatPNG  = "png"
	FormatSVG  = "svg" // room graph diagram
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatText: true,
	FormatPNG:  true,
	FormatSVG:  true,
}

// ValidStyles is the set of supported generator styles.
var ValidStyles = map[string]bool{
	generator.StyleStructured: true,
	generator.StyleBSP:        true,
	generator.StyleOrganic:    true,
	generator.StyleGeometric:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Style     string `json:"style,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
	DoorWidth int    `json:"door_width,omitempty"`
	Hint      string `json:"hint,omitempty"` // spine, hub or cluster; overrides selection
	Mirror    bool   `json:"mirror,omitempty"`
	Refresh   bool   `json:"refresh,omitempty"` // bypass cached tile maps

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   int      `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Budget time.Duration `json:"-"`
	Theme  *theme.Theme  `json:"-"`
	Logger *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the input room graph.
	Graph *roomgraph.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// TileMap is the generated floor plan.
	TileMap *tilemap.TileMap

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rooms        int
	Placed       int
	Tiles        int
	Furniture    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenerateHit bool // Whether the tile map came from cache
	RenderHit   bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, txt, png, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)",
			style, strings.Join(generator.Styles, ", "))
	}
	return nil
}

// ValidateDoorWidth checks that a door width is in range.
func ValidateDoorWidth(w int) error {
	if w < 1 || w > MaxDoorWidth {
		return errors.New(errors.ErrCodeInvalidInput, "door width %d out of range [1, %d]", w, MaxDoorWidth)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for generation.
func (o *Options) SetGenerateDefaults() {
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	o.Style = strings.ToLower(o.Style)
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.DoorWidth == 0 {
		o.DoorWidth = DefaultDoorWidth
	}
	if o.Budget == 0 {
		o.Budget = DefaultBudget
	}
	if o.Theme == nil {
		o.Theme = theme.Default()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForGenerate validates and sets defaults for generation.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateDoorWidth(o.DoorWidth); err != nil {
		return err
	}
	if o.Budget < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "budget must be positive, got %s", o.Budget)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Scale < 1 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %d out of range [1, %d]", o.Scale, MaxScale)
	}
	return ValidateFormats(o.Formats)
}

// GeneratorConfig returns the generator configuration for these options.
// Theme tables are merged over the built-in defaults.
func (o *Options) GeneratorConfig() generator.Config {
	cfg := generator.Config{
		Seed:      o.Seed,
		DoorWidth: o.DoorWidth,
		Hint:      o.Hint,
		Mirror:    o.Mirror,
		Logger:    o.Logger,
	}
	if o.Theme != nil {
		cfg.Types = o.Theme.Types()
		cfg.Rules = o.Theme.Rules()
	}
	return cfg
}

// TileMapKeyOpts returns cache key options for generation.
func (o *Options) TileMapKeyOpts() cache.TileMapKeyOpts {
	opts := cache.TileMapKeyOpts{
		Style:     o.Style,
		Seed:      o.Seed,
		DoorWidth: o.DoorWidth,
		Hint:      o.Hint,
		Mirror:    o.Mirror,
	}
	if o.Theme != nil {
		opts.Theme = o.Theme.Hash
	}
	return opts
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		opts.Scale = o.Scale
		opts.Labels = o.Labels
	}
	return opts
}

// HasFormat reports whether format was requested.
func (o *Options) HasFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}
