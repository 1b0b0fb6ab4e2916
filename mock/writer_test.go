package mock_test

import (
	"context"
	"testing"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputWriter_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFileFn", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		w := &mock.OutputWriter{
			WriteFileFn: func(_ context.Context, path string, data []byte) (bool, error) {
				gotPath = path
				gotData = data
				return true, nil
			},
		}

		changed, err := w.WriteFile(context.Background(), "robots.txt", []byte("User-agent: *"))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "robots.txt", gotPath)
		assert.Equal(t, []byte("User-agent: *"), gotData)
	})
}

func TestContentStore_Solutions(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SolutionsFn", func(t *testing.T) {
		t.Parallel()

		want := []*studio.Solution{{Slug: "saas-development"}}
		s := &mock.ContentStore{
			SolutionsFn: func(context.Context) ([]*studio.Solution, error) { return want, nil },
		}

		got, err := s.Solutions(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
