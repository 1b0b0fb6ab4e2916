package mock

import (
	"context"

	"github.com/limegreen-studio/studio"
)

var _ studio.ContentStore = (*ContentStore)(nil)

// ContentStore is a mock implementation of studio.ContentStore.
type ContentStore struct {
	SolutionsFn func(ctx context.Context) ([]*studio.Solution, error)
	BlogsFn     func(ctx context.Context) ([]*studio.Blog, error)
}

func (s *ContentStore) Solutions(ctx context.Context) ([]*studio.Solution, error) {
	return s.SolutionsFn(ctx)
}

func (s *ContentStore) Blogs(ctx context.Context) ([]*studio.Blog, error) {
	return s.BlogsFn(ctx)
}

var _ studio.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of studio.Renderer.
type Renderer struct {
	RenderFn func(source string) (string, error)
}

func (r *Renderer) Render(source string) (string, error) {
	return r.RenderFn(source)
}

var _ studio.AnchorVerifier = (*AnchorVerifier)(nil)

// AnchorVerifier is a mock implementation of studio.AnchorVerifier.
type AnchorVerifier struct {
	VerifyAnchorsFn func(html string, toc []studio.TOCEntry) error
}

func (v *AnchorVerifier) VerifyAnchors(html string, toc []studio.TOCEntry) error {
	return v.VerifyAnchorsFn(html, toc)
}
