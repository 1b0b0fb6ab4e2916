// Package http reads the sitemaps a deployed site publishes.
package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/limegreen-studio/studio"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for a single HTTP request.
const DefaultTimeout = 10 * time.Second

// Ensure SitemapService implements studio.SitemapService.
var _ studio.SitemapService = (*SitemapService)(nil)

// errNotFound marks a sitemap location that does not exist.
var errNotFound = errors.New("not found")

// SitemapService discovers URLs from website sitemaps via HTTP.
type SitemapService struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a SitemapService.
type Option func(*SitemapService)

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(s *SitemapService) {
		s.client = client
	}
}

// WithRateLimit caps requests per second against the audited site.
// Zero or negative disables limiting.
func WithRateLimit(rps float64) Option {
	return func(s *SitemapService) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewSitemapService creates a new SitemapService.
func NewSitemapService(opts ...Option) *SitemapService {
	s := &SitemapService{
		client: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs finds all page URLs from a site's sitemaps, in sitemap order
// without duplicates. Returns an empty slice (not nil) if the site publishes
// no sitemap.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, studio.Errorf(studio.EINVALID, "invalid base URL %q", baseURL)
	}
	base.Path = ""
	base.RawQuery = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		found, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if errors.Is(err, errNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// findSitemapURLs reads Sitemap: directives from robots.txt and falls back
// to /sitemap.xml when there are none.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err != nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	return []string{fallback.String()}, nil
}

func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetch(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "sitemap") {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			sitemaps = append(sitemaps, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches a urlset or sitemapindex document. Indexes are
// followed recursively; each sitemap is read at most once.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		var urls []string
		for _, loc := range locs(root, "sitemap") {
			found, err := s.processSitemap(ctx, loc, seen)
			if errors.Is(err, errNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			urls = append(urls, found...)
		}
		return urls, nil
	case "urlset":
		return locs(root, "url"), nil
	default:
		return nil, fmt.Errorf("sitemap %s: unexpected root element <%s>", sitemapURL, root.Tag)
	}
}

// locs returns the non-empty <loc> values of the named child elements.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// fetch GETs a URL and returns the body of a 200 response.
// A 404 yields errNotFound.
func (s *SitemapService) fetch(ctx context.Context, target string) (io.ReadCloser, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", target, errNotFound)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
}
