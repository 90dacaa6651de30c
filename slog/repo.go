package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tutorials"
)

// Ensure LoggingRepoService implements tutorials.RepoService.
var _ tutorials.RepoService = (*LoggingRepoService)(nil)

// LoggingRepoService wraps a RepoService with logging.
type LoggingRepoService struct {
	next   tutorials.RepoService
	logger *slog.Logger
}

// NewLoggingRepoService creates a new LoggingRepoService.
func NewLoggingRepoService(next tutorials.RepoService, logger *slog.Logger) *LoggingRepoService {
	return &LoggingRepoService{next: next, logger: logger}
}

// FindRepo delegates to the wrapped service and logs the operation.
func (s *LoggingRepoService) FindRepo(ctx context.Context, owner, name string) (stats *tutorials.RepoStats, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find repo",
			"repo", owner+"/"+name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRepo(ctx, owner, name)
}
