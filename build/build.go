// Package build renders the site's content into static output files.
// It coordinates content loading, markdown rendering, metadata and
// structured data assembly, and sitemap generation.
package build

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/seo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages rendered at once.
const DefaultConcurrency = 8

// Output file locations relative to the output directory.
const (
	IndexFile   = "index.json"
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Builder renders every page of the site and writes it to Output.
type Builder struct {
	Site     studio.Site
	Content  studio.ContentStore
	Renderer studio.Renderer
	Sitemap  studio.SitemapEncoder
	Output   studio.OutputWriter

	// Verifier is optional. When set, every blog page is checked for the
	// anchors of its table of contents.
	Verifier studio.AnchorVerifier

	Concurrency int

	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Result holds the outcome of a build.
type Result struct {
	ID        string
	Pages     int
	Written   int
	Unchanged int
	Failed    int
	Bytes     int
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// job produces the content of one output file.
type job struct {
	path   string
	render func() ([]byte, error)
}

// jobResult holds the outcome of a single job.
type jobResult struct {
	path    string
	changed bool
	bytes   int
	entry   ManifestEntry
	err     error
}

// Build loads all content and writes the site output. Content load failures
// abort the build. Page failures do not stop other pages; they are counted
// in the result and returned together as the error. The manifest is written
// last, and only when every page succeeded.
func (b *Builder) Build(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if err := b.Site.Validate(); err != nil {
		return nil, err
	}

	solutions, err := b.Content.Solutions(ctx)
	if err != nil {
		return nil, err
	}
	blogs, err := b.Content.Blogs(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	newID := uuid.NewString
	if b.NewID != nil {
		newID = b.NewID
	}

	buildID := newID()
	jobs := b.jobs(buildID, now().UTC(), solutions, blogs)

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(jobs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan jobResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				resultCh <- b.run(gctx, j)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{ID: buildID, Pages: total}
	var completed atomic.Int64
	var errs []error
	var entries []ManifestEntry

	for r := range resultCh {
		completed.Add(1)
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Path:      r.path,
		}

		switch {
		case r.err != nil:
			result.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", r.path, r.err))
			event.Type = ProgressFailed
			event.Error = r.err
		case r.changed:
			result.Written++
			result.Bytes += r.bytes
		default:
			result.Unchanged++
		}
		if r.err == nil {
			entries = append(entries, r.entry)
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	if err := b.writeManifest(ctx, buildID, entries); err != nil {
		return result, err
	}
	return result, nil
}

// run renders and writes a single output file.
func (b *Builder) run(ctx context.Context, j job) jobResult {
	result := jobResult{path: j.path}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	data, err := j.render()
	if err != nil {
		result.err = err
		return result
	}

	changed, err := b.Output.WriteFile(ctx, j.path, data)
	if err != nil {
		result.err = err
		return result
	}

	result.changed = changed
	result.bytes = len(data)
	result.entry = newManifestEntry(j.path, data)
	return result
}

// jobs lists every output file of the site.
func (b *Builder) jobs(buildID string, now time.Time, solutions []*studio.Solution, blogs []*studio.Blog) []job {
	solutionIndex := studio.NewIndex(solutions)
	blogIndex := studio.NewIndex(blogs)
	sorted := studio.SortByDateDescending(blogs)

	jobs := []job{
		{path: IndexFile, render: func() ([]byte, error) {
			page, err := b.indexPage(buildID, now, solutions, sorted)
			if err != nil {
				return nil, err
			}
			return encode(page)
		}},
		{path: SitemapFile, render: func() ([]byte, error) {
			return b.Sitemap.EncodeSitemap(seo.Sitemap(b.Site, solutions, sorted, now))
		}},
		{path: RobotsFile, render: func() ([]byte, error) {
			return []byte(seo.RobotsTxt(b.Site)), nil
		}},
	}

	for _, s := range solutions {
		jobs = append(jobs, job{
			path: SolutionFile(s.Slug),
			render: func() ([]byte, error) {
				page, err := b.solutionPage(s, solutionIndex, blogIndex)
				if err != nil {
					return nil, err
				}
				return encode(page)
			},
		})
	}

	for _, post := range sorted {
		jobs = append(jobs, job{
			path: BlogFile(post.Slug),
			render: func() ([]byte, error) {
				page, err := b.blogPage(post)
				if err != nil {
					return nil, err
				}
				return encode(page)
			},
		})
	}

	for _, tag := range studio.DistinctTags(sorted) {
		jobs = append(jobs, job{
			path: TagFile(tag),
			render: func() ([]byte, error) {
				return encode(tagPage(tag, sorted))
			},
		})
	}

	return jobs
}

// SolutionFile returns the output path of a solution page.
func SolutionFile(slug string) string {
	return "solutions/" + url.PathEscape(slug) + ".json"
}

// BlogFile returns the output path of a blog post page.
func BlogFile(slug string) string {
	return "blogs/" + url.PathEscape(slug) + ".json"
}

// TagFile returns the output path of a tag listing.
func TagFile(tag string) string {
	return "blogs/tags/" + url.PathEscape(tag) + ".json"
}

func encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
