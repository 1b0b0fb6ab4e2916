package main

import (
	"fmt"

	"github.com/limegreen-studio/studio"
)

// Run executes the solutions command.
func (c *SolutionsCmd) Run(deps *Dependencies) error {
	solutions, err := deps.Content.Solutions(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	if c.Slug == "" {
		tiers := studio.GroupByTier(solutions, deps.Site.Tier1)
		printTier(deps, "Tier 1", tiers.Tier1)
		printTier(deps, "Tier 2", tiers.Tier2)
		return nil
	}

	s, ok := studio.FindBySlug(solutions, c.Slug)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: solution %q not found. Use 'studio solutions' to see available solutions.\n", c.Slug)
		return studio.Errorf(studio.ENOTFOUND, "solution %q not found", c.Slug)
	}

	blogs, err := deps.Content.Blogs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n  %s\n  %s\n", s.Name, s.Title, deps.Site.URL(studio.SolutionPath(s.Slug)))

	if related := studio.RelatedSolutions(solutions, s.Slug); len(related) > 0 {
		fmt.Fprintln(deps.Stdout, "\nRelated solutions:")
		for _, r := range related {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", r.Slug, r.Name)
		}
	}

	if studies := studio.CaseStudies(solutions, blogs, s.Slug); len(studies) > 0 {
		fmt.Fprintln(deps.Stdout, "\nCase studies:")
		for _, b := range studies {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", b.Slug, b.Title)
		}
	}

	return nil
}

func printTier(deps *Dependencies, title string, solutions []*studio.Solution) {
	if len(solutions) == 0 {
		return
	}
	fmt.Fprintf(deps.Stdout, "%s:\n", title)
	for _, s := range solutions {
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", s.Slug, s.Name)
	}
}
