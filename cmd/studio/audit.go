package main

import (
	"fmt"
	"strings"

	"github.com/limegreen-studio/studio"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	site := deps.Site
	if c.URL != "" {
		site.BaseURL = strings.TrimSuffix(c.URL, "/")
		if err := site.Validate(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
			return err
		}
	}

	local, err := localRoutes(deps, site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	deployed, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	diff := studio.DiffRoutes(local, deployed)
	if diff.InSync() {
		fmt.Fprintf(deps.Stdout, "%s is in sync (%d routes)\n", site.BaseURL, len(local))
		return nil
	}

	for _, u := range diff.Missing {
		fmt.Fprintf(deps.Stdout, "missing  %s\n", u)
	}
	for _, u := range diff.Stale {
		fmt.Fprintf(deps.Stdout, "stale    %s\n", u)
	}

	err = studio.Errorf(studio.EINVALID, "deployed sitemap out of sync: %d missing, %d stale", len(diff.Missing), len(diff.Stale))
	fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
	return err
}
