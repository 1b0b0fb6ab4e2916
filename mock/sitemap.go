package mock

import (
	"context"

	"github.com/limegreen-studio/studio"
)

var _ studio.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of studio.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ studio.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder is a mock implementation of studio.SitemapEncoder.
type SitemapEncoder struct {
	EncodeSitemapFn func(entries []studio.SitemapEntry) ([]byte, error)
}

func (e *SitemapEncoder) EncodeSitemap(entries []studio.SitemapEntry) ([]byte, error) {
	return e.EncodeSitemapFn(entries)
}
