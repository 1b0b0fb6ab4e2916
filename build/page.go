package build

import (
	"fmt"
	"time"

	"github.com/limegreen-studio/studio"
	"github.com/limegreen-studio/studio/seo"
)

// IndexPage is the home page payload: site-wide structured data, the
// solution catalog and the blog listing.
type IndexPage struct {
	BuildID        string         `json:"buildId"`
	GeneratedAt    time.Time      `json:"generatedAt"`
	StructuredData []string       `json:"structuredData"`
	Solutions      studio.Tiers   `json:"solutions"`
	Blogs          []*studio.Blog `json:"blogs"`
	Tags           []string       `json:"tags"`
}

// SolutionPage is the payload of a solution landing page.
type SolutionPage struct {
	Solution         *studio.Solution   `json:"solution"`
	RelatedSolutions []*studio.Solution `json:"relatedSolutions"`
	CaseStudies      []*studio.Blog     `json:"caseStudies"`
	Metadata         *seo.Metadata      `json:"metadata"`
	StructuredData   []string           `json:"structuredData"`
}

// BlogPage is the payload of a blog post.
type BlogPage struct {
	Blog           *studio.Blog      `json:"blog"`
	HTML           string            `json:"html"`
	TOC            []studio.TOCEntry `json:"toc"`
	Metadata       *seo.Metadata     `json:"metadata"`
	StructuredData []string          `json:"structuredData"`
}

// TagPage lists the posts carrying a tag, newest first.
type TagPage struct {
	Tag   string         `json:"tag"`
	Blogs []*studio.Blog `json:"blogs"`
}

func (b *Builder) indexPage(buildID string, now time.Time, solutions []*studio.Solution, sorted []*studio.Blog) (*IndexPage, error) {
	structured, err := seo.SerializeAll([]seo.Object{
		seo.Organization(b.Site),
		seo.WebSite(b.Site),
	})
	if err != nil {
		return nil, err
	}

	return &IndexPage{
		BuildID:        buildID,
		GeneratedAt:    now,
		StructuredData: structured,
		Solutions:      studio.GroupByTier(solutions, b.Site.Tier1),
		Blogs:          summaries(sorted),
		Tags:           append([]string{studio.TagAll}, studio.DistinctTags(sorted)...),
	}, nil
}

func (b *Builder) solutionPage(s *studio.Solution, solutions *studio.Index[*studio.Solution], blogs *studio.Index[*studio.Blog]) (*SolutionPage, error) {
	structured, err := seo.SerializeAll(seo.SolutionPage(b.Site, s))
	if err != nil {
		return nil, err
	}

	return &SolutionPage{
		Solution:         s,
		RelatedSolutions: nonNil(solutions.Resolve(s.RelatedSolutions)),
		CaseStudies:      summaries(blogs.Resolve(s.CaseStudies)),
		Metadata:         seo.SolutionMetadata(b.Site, s),
		StructuredData:   structured,
	}, nil
}

func (b *Builder) blogPage(post *studio.Blog) (*BlogPage, error) {
	html, err := b.Renderer.Render(post.Body)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	toc := nonNil(studio.ExtractTOC(post.Body))
	if b.Verifier != nil {
		if err := b.Verifier.VerifyAnchors(html, toc); err != nil {
			return nil, err
		}
	}

	structured, err := seo.SerializeAll(seo.BlogPage(b.Site, post))
	if err != nil {
		return nil, err
	}

	return &BlogPage{
		Blog:           post,
		HTML:           html,
		TOC:            toc,
		Metadata:       seo.BlogMetadata(b.Site, post),
		StructuredData: structured,
	}, nil
}

func tagPage(tag string, sorted []*studio.Blog) *TagPage {
	return &TagPage{
		Tag:   tag,
		Blogs: summaries(studio.FilterByTag(sorted, tag)),
	}
}

// summaries strips post bodies from listings.
func summaries(blogs []*studio.Blog) []*studio.Blog {
	out := make([]*studio.Blog, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, b.Summary())
	}
	return out
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
