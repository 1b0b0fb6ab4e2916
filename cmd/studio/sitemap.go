package main

import (
	"fmt"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/seo"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	if c.Robots {
		fmt.Fprint(deps.Stdout, seo.RobotsTxt(deps.Site))
		return nil
	}

	entries, err := localRoutes(deps, deps.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	data, err := deps.Sitemap.EncodeSitemap(entries)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

// localRoutes lists the sitemap entries of the local content for site.
func localRoutes(deps *Dependencies, site studio.Site) ([]studio.SitemapEntry, error) {
	solutions, err := deps.Content.Solutions(deps.Ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := deps.Content.Blogs(deps.Ctx)
	if err != nil {
		return nil, err
	}
	return seo.Sitemap(site, solutions, studio.SortByDateDescending(blogs), deps.Now()), nil
}
