package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/build"
	"github.com/limegreen-studio/studio/etree"
	"github.com/limegreen-studio/studio/fs"
	"github.com/limegreen-studio/studio/goldmark"
	"github.com/limegreen-studio/studio/goquery"
	"github.com/limegreen-studio/studio/htmltomarkdown"
	studiohttp "github.com/limegreen-studio/studio/http"
	studioslog "github.com/limegreen-studio/studio/slog"
	"github.com/limegreen-studio/studio/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now returns the build time. Set before calling Run().
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("studio"),
		kong.Description("Build and audit the Lime Green Studios content layer."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'studio --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	site, err := loadSite(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", studio.ErrorMessage(err))
		return err
	}

	converter := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(site.BaseURL))
	content := fs.NewContentStore(cli.Root, fs.WithConverter(converter))

	deps.Logger = logger
	deps.Site = site
	deps.Content = studioslog.NewLoggingContentStore(content, logger)
	deps.Renderer = goldmark.NewRenderer()
	deps.Sitemap = etree.NewEncoder()

	switch strings.Fields(kongCtx.Command())[0] {
	case "build":
		output := fs.NewWriter(cli.Build.Out)
		deps.Builder = &build.Builder{
			Site:        site,
			Content:     deps.Content,
			Renderer:    deps.Renderer,
			Verifier:    goquery.NewVerifier(),
			Sitemap:     deps.Sitemap,
			Output:      studioslog.NewLoggingOutputWriter(output, logger),
			Concurrency: cli.Build.Concurrency,
			Now:         m.Now,
		}
	case "audit":
		sitemaps := studiohttp.NewSitemapService(studiohttp.WithRateLimit(cli.Audit.RPS))
		deps.Sitemaps = studioslog.NewLoggingSitemapService(sitemaps, logger)
	}

	return kongCtx.Run(deps)
}

// loadSite reads the site settings and applies flag overrides.
// Without an explicit --config, a missing <root>/studio.toml is not an error.
func loadSite(cli *CLI) (studio.Site, error) {
	var site studio.Site
	var err error
	if cli.Config != "" {
		site, err = toml.LoadSite(cli.Config)
	} else {
		site, err = toml.LoadSiteIfExists(filepath.Join(cli.Root, toml.DefaultPath))
	}
	if err != nil {
		return studio.Site{}, err
	}

	if cli.BaseURL != "" {
		site.BaseURL = cli.BaseURL
		if err := site.Validate(); err != nil {
			return studio.Site{}, err
		}
	}
	return site, nil
}
