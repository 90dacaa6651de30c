// Package slog provides log/slog decorators for tutorials services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/tutorials"
)

// Ensure LoggingRenderer implements tutorials.Renderer.
var _ tutorials.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   tutorials.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next tutorials.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(markdown string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render markdown",
			"in", len(markdown),
			"out", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(markdown)
}
