package mock

import (
	"context"

	"github.com/limegreen-studio/studio"
)

var _ studio.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of studio.OutputWriter.
type OutputWriter struct {
	WriteFileFn func(ctx context.Context, path string, data []byte) (bool, error)
}

func (w *OutputWriter) WriteFile(ctx context.Context, path string, data []byte) (bool, error) {
	return w.WriteFileFn(ctx, path, data)
}
