package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"github.com/limegreen-studio/studio"
	"gopkg.in/yaml.v3"
)

// Content source locations relative to the content root.
const (
	SolutionsFile = "data/solutions.json"
	BlogsDir      = "content/blogs"
)

// Ensure ContentStore implements studio.ContentStore at compile time.
var _ studio.ContentStore = (*ContentStore)(nil)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// yamlFrontMatter parses "---" delimited YAML front-matter.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// ContentStore reads solutions and blog posts from a content root directory.
// Nothing is cached; every call reads the files again.
type ContentStore struct {
	root      string
	converter studio.Converter
}

// Option configures a ContentStore.
type Option func(*ContentStore)

// WithConverter enables HTML blog posts, converted to markdown on load.
func WithConverter(c studio.Converter) Option {
	return func(s *ContentStore) {
		s.converter = c
	}
}

// NewContentStore creates a new ContentStore rooted at root.
func NewContentStore(root string, opts ...Option) *ContentStore {
	s := &ContentStore{root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solutions reads data/solutions.json, a JSON array of solution records.
func (s *ContentStore) Solutions(ctx context.Context) ([]*studio.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.root, SolutionsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &studio.ContentLoadError{Source: path, Err: err}
	}

	var solutions []*studio.Solution
	if err := json.Unmarshal(data, &solutions); err != nil {
		return nil, &studio.ContentLoadError{Source: path, Err: fmt.Errorf("decode solutions: %w", err)}
	}

	seen := make(map[string]bool, len(solutions))
	for i, sol := range solutions {
		if sol == nil {
			return nil, &studio.ContentLoadError{Source: path, Err: studio.Errorf(studio.EINVALID, "solution %d is null", i)}
		}
		if err := sol.Validate(); err != nil {
			return nil, &studio.ContentLoadError{Source: path, Err: err}
		}
		if seen[sol.Slug] {
			return nil, &studio.ContentLoadError{Source: path, Err: studio.Errorf(studio.EINVALID, "duplicate solution slug %q", sol.Slug)}
		}
		seen[sol.Slug] = true
	}

	return solutions, nil
}

// Blogs reads every markdown, MDX and HTML file in content/blogs, in file
// name order. HTML files require a converter.
func (s *ContentStore) Blogs(ctx context.Context) ([]*studio.Blog, error) {
	dir := filepath.Join(s.root, BlogsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &studio.ContentLoadError{Source: dir, Err: err}
	}

	var blogs []*studio.Blog
	seen := make(map[string]string)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isBlogFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &studio.ContentLoadError{Source: path, Err: err}
		}

		blog, err := s.parseBlog(entry.Name(), data)
		if err != nil {
			return nil, &studio.ContentLoadError{Source: path, Err: err}
		}
		if other, exists := seen[blog.Slug]; exists {
			return nil, &studio.ContentLoadError{Source: path, Err: studio.Errorf(studio.EINVALID, "duplicate blog slug %q (also in %s)", blog.Slug, other)}
		}
		seen[blog.Slug] = entry.Name()

		blogs = append(blogs, blog)
	}

	return blogs, nil
}

// blogFrontMatter is the header of a blog post file.
type blogFrontMatter struct {
	Slug        string    `yaml:"slug"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Date        rawScalar `yaml:"date"`
	Tags        []string  `yaml:"tags"`
	Image       string    `yaml:"image"`
}

// rawScalar keeps the literal text of a YAML scalar, so unquoted dates are
// not reinterpreted by the YAML decoder.
type rawScalar string

func (r *rawScalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	*r = rawScalar(value.Value)
	return nil
}

func (s *ContentStore) parseBlog(name string, data []byte) (*studio.Blog, error) {
	var fm blogFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm, yamlFrontMatter)
	if err != nil {
		return nil, fmt.Errorf("parse front-matter: %w", err)
	}

	content := string(body)
	if strings.EqualFold(filepath.Ext(name), ".html") {
		if s.converter == nil {
			return nil, studio.Errorf(studio.EINVALID, "no converter configured for HTML posts")
		}
		if content, err = s.converter.Convert(content); err != nil {
			return nil, fmt.Errorf("convert HTML: %w", err)
		}
	}

	blog := &studio.Blog{
		Slug:        fm.Slug,
		Title:       fm.Title,
		Description: fm.Description,
		Tags:        fm.Tags,
		Image:       fm.Image,
		Body:        content,
	}
	if blog.Slug == "" {
		blog.Slug = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if fm.Date != "" {
		date, err := parseDate(string(fm.Date))
		if err != nil {
			return nil, studio.Errorf(studio.EINVALID, "blog %q: invalid date %q", blog.Slug, fm.Date)
		}
		blog.Date = date
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}
	return blog, nil
}

// parseDate parses a front-matter date. Dates without a zone are UTC.
func parseDate(s string) (time.Time, error) {
	return dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
}

func isBlogFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".html":
		return true
	}
	return false
}
