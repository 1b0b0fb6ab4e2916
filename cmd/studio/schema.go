package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/seo"
)

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	var objs []seo.Object
	var metadata *seo.Metadata

	switch c.Kind {
	case "site":
		objs = []seo.Object{seo.Organization(deps.Site), seo.WebSite(deps.Site)}
	case "solution":
		solutions, err := deps.Content.Solutions(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
			return err
		}
		s, ok := studio.FindBySlug(solutions, c.Slug)
		if !ok {
			metadata = seo.SolutionMetadata(deps.Site, nil)
			break
		}
		objs = seo.SolutionPage(deps.Site, s)
		metadata = seo.SolutionMetadata(deps.Site, s)
	case "blog":
		blogs, err := deps.Content.Blogs(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
			return err
		}
		b, ok := studio.FindBySlug(blogs, c.Slug)
		if !ok {
			metadata = seo.BlogMetadata(deps.Site, nil)
			break
		}
		objs = seo.BlogPage(deps.Site, b)
		metadata = seo.BlogMetadata(deps.Site, b)
	}

	if c.Metadata {
		if metadata == nil {
			err := studio.Errorf(studio.EINVALID, "no page metadata for kind %q", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", studio.ErrorMessage(err))
			return err
		}
		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(metadata, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(out))
		return nil
	}

	if objs == nil {
		fmt.Fprintf(deps.Stderr, "error: %s %q not found\n", c.Kind, c.Slug)
		return studio.Errorf(studio.ENOTFOUND, "%s %q not found", c.Kind, c.Slug)
	}

	serialized, err := seo.SerializeAll(objs)
	if err != nil {
		return err
	}
	for _, s := range serialized {
		fmt.Fprintln(deps.Stdout, s)
	}
	return nil
}
