package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/limegreen-studio/studio/cmd/studio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"build", "solutions", "blogs", "toc", "schema", "sitemap", "audit"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range allCommands {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		for _, cmd := range allCommands {
			assert.Contains(t, stdout.String(), cmd)
		}
	})

	t.Run("fails without a command", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("builds a content root end to end", func(t *testing.T) {
		t.Parallel()

		root := newContentRoot(t)
		out := filepath.Join(t.TempDir(), "out")

		m := main.NewMain()
		m.Now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"build", "--root", root, "--out", out}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "Build ")
		assert.Contains(t, stdout.String(), "complete")

		for _, path := range []string{
			"index.json",
			"sitemap.xml",
			"robots.txt",
			"solutions/saas-development.json",
			"blogs/fintech-mvp.json",
			"blogs/legacy-post.json",
			"blogs/tags/fintech.json",
			"manifest.json",
		} {
			assert.FileExists(t, filepath.Join(out, path))
		}

		page, err := os.ReadFile(filepath.Join(out, "blogs", "fintech-mvp.json"))
		require.NoError(t, err)
		assert.Contains(t, string(page), `id=\"the-problem\"`)
		assert.Contains(t, string(page), `"id": "the-problem"`)

		sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
		require.NoError(t, err)
		assert.Contains(t, string(sitemap), "<loc>https://staging.limegreen.studio/solutions/saas-development</loc>")
	})

	t.Run("reports unchanged files on rebuild", func(t *testing.T) {
		t.Parallel()

		root := newContentRoot(t)
		out := filepath.Join(t.TempDir(), "out")
		m := main.NewMain()
		m.Now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
		args := []string{"build", "--root", root, "--out", out}

		require.NoError(t, m.Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))

		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(context.Background(), args, stdout, &bytes.Buffer{}))

		// index.json carries a fresh build id every time
		assert.Contains(t, stdout.String(), "1 written")
	})

	t.Run("lists blog posts from the content root", func(t *testing.T) {
		t.Parallel()

		root := newContentRoot(t)
		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"blogs", "--root", root, "--tag", "fintech"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "2024-06-01  fintech-mvp  Building a Fintech MVP\n", stdout.String())
	})

	t.Run("applies the base URL override", func(t *testing.T) {
		t.Parallel()

		root := newContentRoot(t)
		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"sitemap", "--robots", "--root", root, "--base-url", "https://preview.limegreen.studio"},
			stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Sitemap: https://preview.limegreen.studio/sitemap.xml")
	})

	t.Run("fails on an invalid config file", func(t *testing.T) {
		t.Parallel()

		root := newContentRoot(t)
		config := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(config, []byte(`unknown_key = 1`), 0644))
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"solutions", "--root", root, "--config", config}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unknown_key")
	})

	t.Run("fails when the content root is missing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"solutions", "--root", filepath.Join(t.TempDir(), "missing")}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: load ")
	})
}

// newContentRoot writes a small content tree with a site settings file.
func newContentRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := map[string]string{
		"studio.toml": `base_url = "https://staging.limegreen.studio"
tier1 = ["saas-development"]
`,
		"data/solutions.json": `[
  {
    "slug": "saas-development",
    "name": "SaaS Development",
    "title": "SaaS Development Agency",
    "faqs": [{"question": "How long?", "answer": "Four weeks."}],
    "relatedSolutions": ["erp-development"],
    "caseStudies": ["fintech-mvp"]
  },
  {"slug": "erp-development", "name": "ERP Development", "title": "ERP Development Agency"}
]`,
		"content/blogs/fintech-mvp.mdx": `---
title: Building a Fintech MVP
description: Four weeks to launch.
date: 2024-06-01
tags: [fintech, mvp]
---

# Building a Fintech MVP

## The Problem

Banks are slow.

## Our Approach

Ship weekly.
`,
		"content/blogs/legacy-post.html": `---
title: Legacy Post
date: 2023-02-01
tags: [mvp]
---
<h2>Old Heading</h2><p>From the <a href="/about">old site</a>.</p>`,
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}
