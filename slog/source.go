package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tutorials"
)

// Ensure LoggingSourceReader implements tutorials.SourceReader.
var _ tutorials.SourceReader = (*LoggingSourceReader)(nil)

// LoggingSourceReader wraps a SourceReader with logging.
type LoggingSourceReader struct {
	next   tutorials.SourceReader
	logger *slog.Logger
}

// NewLoggingSourceReader creates a new LoggingSourceReader.
func NewLoggingSourceReader(next tutorials.SourceReader, logger *slog.Logger) *LoggingSourceReader {
	return &LoggingSourceReader{next: next, logger: logger}
}

// ReadSources delegates to the wrapped reader and logs the operation.
func (r *LoggingSourceReader) ReadSources(ctx context.Context) (sources []*tutorials.Source, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read sources",
			"count", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSources(ctx)
}
