package slog

import (
	"context"
	"log/slog"

	"github.com/limegreen-studio/studio"
)

// Ensure LoggingOutputWriter implements studio.OutputWriter.
var _ studio.OutputWriter = (*LoggingOutputWriter)(nil)

// LoggingOutputWriter wraps an OutputWriter, logging every file it changes.
type LoggingOutputWriter struct {
	next   studio.OutputWriter
	logger *slog.Logger
}

// NewLoggingOutputWriter creates a new LoggingOutputWriter.
func NewLoggingOutputWriter(next studio.OutputWriter, logger *slog.Logger) *LoggingOutputWriter {
	return &LoggingOutputWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer. Unchanged files are logged at
// debug level.
func (w *LoggingOutputWriter) WriteFile(ctx context.Context, path string, data []byte) (changed bool, err error) {
	defer func() {
		switch {
		case err != nil:
			w.logger.Error("write output", "path", path, "err", err)
		case changed:
			w.logger.Info("write output", "path", path, "bytes", len(data))
		default:
			w.logger.Debug("output unchanged", "path", path)
		}
	}()
	return w.next.WriteFile(ctx, path, data)
}
