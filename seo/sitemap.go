package seo

import (
	"time"

	"github.com/limegreen-studio/studio"
)

// StaticRoute is a page that does not come from a content record.
type StaticRoute struct {
	Path            string
	ChangeFrequency studio.ChangeFrequency
	Priority        float64
}

// StaticRoutes lists the hand-written pages of the site.
var StaticRoutes = []StaticRoute{
	{Path: "", ChangeFrequency: studio.ChangeWeekly, Priority: 1.0},
	{Path: studio.BlogsPath, ChangeFrequency: studio.ChangeWeekly, Priority: 0.8},
	{Path: studio.CaseStudiesPath, ChangeFrequency: studio.ChangeWeekly, Priority: 0.8},
	{Path: "/mvp-development", ChangeFrequency: studio.ChangeMonthly, Priority: 0.9},
	{Path: "/about", ChangeFrequency: studio.ChangeMonthly, Priority: 0.7},
	{Path: "/privacy", ChangeFrequency: studio.ChangeMonthly, Priority: 0.5},
	{Path: "/terms", ChangeFrequency: studio.ChangeMonthly, Priority: 0.5},
}

// Route priorities of content pages.
const (
	SolutionPriority = 0.9
	BlogPriority     = 0.7
)

// Sitemap lists every route of the site: static pages, then one entry per
// solution, then one per blog post. Blog entries carry the post date as
// their modification time; all others use now.
func Sitemap(site studio.Site, solutions []*studio.Solution, blogs []*studio.Blog, now time.Time) []studio.SitemapEntry {
	entries := make([]studio.SitemapEntry, 0, len(StaticRoutes)+len(solutions)+len(blogs))

	for _, r := range StaticRoutes {
		entries = append(entries, studio.SitemapEntry{
			URL:             site.URL(r.Path),
			LastModified:    now,
			ChangeFrequency: r.ChangeFrequency,
			Priority:        r.Priority,
		})
	}

	for _, s := range solutions {
		entries = append(entries, studio.SitemapEntry{
			URL:             site.URL(studio.SolutionPath(s.Slug)),
			LastModified:    now,
			ChangeFrequency: studio.ChangeMonthly,
			Priority:        SolutionPriority,
		})
	}

	for _, b := range blogs {
		entries = append(entries, studio.SitemapEntry{
			URL:             site.URL(studio.BlogPath(b.Slug)),
			LastModified:    b.Date,
			ChangeFrequency: studio.ChangeMonthly,
			Priority:        BlogPriority,
		})
	}

	return entries
}

// RobotsTxt returns the robots.txt of the site.
func RobotsTxt(site studio.Site) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + site.URL("/sitemap.xml") + "\n"
}
