// Package cli implements the floorplan command-line interface.
//
// This package provides commands for generating tile maps from room graphs,
// validating graphs, previewing seeds interactively, drawing the room graph,
// serving the HTTP API and managing the local cache. The CLI is built using
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Produce a tile map (JSON, text, PNG) from a room graph
//   - validate: Check room graphs and report coded errors
//   - preview: Browse seeds and styles in the terminal
//   - graph: Render the room graph as an SVG diagram
//   - serve: Run the HTTP API, optionally backed by Redis
//   - cache: Manage the local cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the generator's per-room warnings, and --quiet (-q) to log only warnings.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Generation complete (231ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
