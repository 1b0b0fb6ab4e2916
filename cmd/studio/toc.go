package main

import (
	"fmt"
	"strings"

	"github.com/limegreen-studio/studio"
)

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	blogs, err := deps.Content.Blogs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	b, ok := studio.FindBySlug(blogs, c.Slug)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: blog %q not found. Use 'studio blogs' to see available posts.\n", c.Slug)
		return studio.Errorf(studio.ENOTFOUND, "blog %q not found", c.Slug)
	}

	for entry := range studio.TOC(b.Body) {
		indent := strings.Repeat("  ", entry.Level-2)
		fmt.Fprintf(deps.Stdout, "%s- %s (#%s)\n", indent, entry.Text, entry.ID)
	}
	return nil
}
