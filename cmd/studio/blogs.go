package main

import (
	"fmt"
	"time"

	"github.com/limegreen-studio/studio"
)

// Run executes the blogs command.
func (c *BlogsCmd) Run(deps *Dependencies) error {
	blogs, err := deps.Content.Blogs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	sorted := studio.SortByDateDescending(blogs)

	if c.Tags {
		fmt.Fprintln(deps.Stdout, studio.TagAll)
		for _, tag := range studio.DistinctTags(sorted) {
			fmt.Fprintln(deps.Stdout, tag)
		}
		return nil
	}

	filtered := studio.FilterByTag(sorted, c.Tag)
	if len(filtered) == 0 {
		fmt.Fprintf(deps.Stdout, "No posts tagged %q.\n", c.Tag)
		return nil
	}

	for _, b := range filtered {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", b.Date.Format(time.DateOnly), b.Slug, b.Title)
	}
	return nil
}
