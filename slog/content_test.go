package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/mock"
	studioslog "github.com/limegreen-studio/studio/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingContentStore(t *testing.T) {
	t.Parallel()

	t.Run("logs solution loads", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ContentStore{
			SolutionsFn: func(context.Context) ([]*studio.Solution, error) {
				return []*studio.Solution{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}, nil
			},
		}

		store := studioslog.NewLoggingContentStore(inner, debugLogger(&buf))
		solutions, err := store.Solutions(context.Background())

		require.NoError(t, err)
		assert.Len(t, solutions, 3)
		assert.Contains(t, buf.String(), `msg="load solutions"`)
		assert.Contains(t, buf.String(), "count=3")
	})

	t.Run("logs blog load failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ContentStore{
			BlogsFn: func(context.Context) ([]*studio.Blog, error) {
				return nil, &studio.ContentLoadError{Source: "content/blogs", Err: errors.New("permission denied")}
			},
		}

		store := studioslog.NewLoggingContentStore(inner, debugLogger(&buf))
		_, err := store.Blogs(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), `msg="load blogs"`)
		assert.Contains(t, buf.String(), "count=0")
		assert.Contains(t, buf.String(), "permission denied")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ContentStore{
			BlogsFn: func(context.Context) ([]*studio.Blog, error) { return nil, nil },
		}

		store := studioslog.NewLoggingContentStore(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := store.Blogs(context.Background())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingOutputWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("logs changed files", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OutputWriter{
			WriteFileFn: func(context.Context, string, []byte) (bool, error) { return true, nil },
		}

		w := studioslog.NewLoggingOutputWriter(inner, debugLogger(&buf))
		changed, err := w.WriteFile(context.Background(), "sitemap.xml", []byte("<urlset/>"))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Contains(t, buf.String(), "path=sitemap.xml")
		assert.Contains(t, buf.String(), "bytes=9")
	})

	t.Run("logs unchanged files at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OutputWriter{
			WriteFileFn: func(context.Context, string, []byte) (bool, error) { return false, nil },
		}

		w := studioslog.NewLoggingOutputWriter(inner, debugLogger(&buf))
		_, err := w.WriteFile(context.Background(), "robots.txt", nil)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), `msg="output unchanged"`)
	})

	t.Run("logs write errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OutputWriter{
			WriteFileFn: func(context.Context, string, []byte) (bool, error) {
				return false, errors.New("disk full")
			},
		}

		w := studioslog.NewLoggingOutputWriter(inner, debugLogger(&buf))
		_, err := w.WriteFile(context.Background(), "index.json", []byte("{}"))

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), `err="disk full"`)
	})
}
