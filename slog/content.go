package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/limegreen-studio/studio"
)

// Ensure LoggingContentStore implements studio.ContentStore.
var _ studio.ContentStore = (*LoggingContentStore)(nil)

// LoggingContentStore wraps a ContentStore with logging.
type LoggingContentStore struct {
	next   studio.ContentStore
	logger *slog.Logger
}

// NewLoggingContentStore creates a new LoggingContentStore.
func NewLoggingContentStore(next studio.ContentStore, logger *slog.Logger) *LoggingContentStore {
	return &LoggingContentStore{next: next, logger: logger}
}

// Solutions delegates to the wrapped store and logs the load.
func (s *LoggingContentStore) Solutions(ctx context.Context) (solutions []*studio.Solution, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load solutions",
			"count", len(solutions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Solutions(ctx)
}

// Blogs delegates to the wrapped store and logs the load.
func (s *LoggingContentStore) Blogs(ctx context.Context) (blogs []*studio.Blog, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load blogs",
			"count", len(blogs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Blogs(ctx)
}
