package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Site     studio.Site
	Content  studio.ContentStore
	Renderer studio.Renderer
	Sitemap  studio.SitemapEncoder
	Sitemaps studio.SitemapService
	Builder  *build.Builder
	Now      func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `short:"r" default:"." env:"STUDIO_ROOT" help:"Content root directory"`
	Config  string `short:"c" env:"STUDIO_CONFIG" help:"Site settings file (default: <root>/studio.toml)"`
	BaseURL string `name:"base-url" env:"STUDIO_BASE_URL" help:"Override the site base URL"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build     BuildCmd     `cmd:"" help:"Render all pages into the output directory"`
	Solutions SolutionsCmd `cmd:"" help:"List solutions or show one solution"`
	Blogs     BlogsCmd     `cmd:"" help:"List blog posts, newest first"`
	TOC       TOCCmd       `cmd:"" name:"toc" help:"Print the table of contents of a blog post"`
	Schema    SchemaCmd    `cmd:"" help:"Print the structured data or metadata of a page"`
	Sitemap   SitemapCmd   `cmd:"" help:"Print the sitemap or robots.txt"`
	Audit     AuditCmd     `cmd:"" help:"Compare local routes with the deployed sitemap"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Out         string `short:"o" default:"out" env:"STUDIO_OUT" help:"Output directory"`
	Concurrency int    `short:"j" default:"8" help:"Pages rendered at once"`
}

// SolutionsCmd is the "solutions" subcommand.
type SolutionsCmd struct {
	Slug string `arg:"" optional:"" help:"Solution slug"`
}

// BlogsCmd is the "blogs" subcommand.
type BlogsCmd struct {
	Tag  string `short:"t" default:"all" help:"Only list posts with this tag"`
	Tags bool   `help:"List tags instead of posts"`
}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct {
	Slug string `arg:"" help:"Blog post slug"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct {
	Kind     string `arg:"" enum:"site,solution,blog" help:"Page kind: site, solution or blog"`
	Slug     string `arg:"" optional:"" help:"Solution or blog slug"`
	Metadata bool   `short:"m" help:"Print page metadata instead of structured data"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Robots bool `help:"Print robots.txt instead"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL string  `arg:"" optional:"" help:"Deployed site URL (default: site base URL)"`
	RPS float64 `default:"2" help:"Requests per second against the deployed site"`
}
