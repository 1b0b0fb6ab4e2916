package studio

import (
	"context"
	"time"
)

// ChangeFrequency hints how often a page changes.
type ChangeFrequency string

// Change frequencies used by the site.
const (
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
)

// SitemapEntry is a route listed in the site index.
type SitemapEntry struct {
	URL             string          `json:"url"`
	LastModified    time.Time       `json:"lastModified"`
	ChangeFrequency ChangeFrequency `json:"changeFrequency"`
	Priority        float64         `json:"priority"`
}

// SitemapEncoder renders sitemap entries as a sitemaps.org urlset document.
type SitemapEncoder interface {
	EncodeSitemap(entries []SitemapEntry) ([]byte, error)
}

// SitemapService discovers URLs from a deployed site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs listed by a site's sitemaps.
	// It first checks robots.txt for sitemap directives, then falls back
	// to /sitemap.xml. Sitemap indexes are resolved recursively.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// RouteDiff compares locally generated routes with a deployed sitemap.
type RouteDiff struct {
	// Missing routes are generated locally but absent from the deployment.
	Missing []string `json:"missing"`

	// Stale routes are deployed but no longer generated.
	Stale []string `json:"stale"`
}

// InSync reports whether both route sets match.
func (d RouteDiff) InSync() bool {
	return len(d.Missing) == 0 && len(d.Stale) == 0
}

// DiffRoutes compares local sitemap entries against deployed URLs.
// Both lists in the result keep their input order.
func DiffRoutes(local []SitemapEntry, deployed []string) RouteDiff {
	localSet := make(map[string]bool, len(local))
	for _, e := range local {
		localSet[e.URL] = true
	}
	deployedSet := make(map[string]bool, len(deployed))
	for _, u := range deployed {
		deployedSet[u] = true
	}

	var diff RouteDiff
	for _, e := range local {
		if !deployedSet[e.URL] {
			diff.Missing = append(diff.Missing, e.URL)
		}
	}
	for _, u := range deployed {
		if !localSet[u] {
			diff.Stale = append(diff.Stale, u)
		}
	}
	return diff
}
