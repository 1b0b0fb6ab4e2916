package seo

import (
	"strings"

	"github.com/limegreen-studio/studio"
)

// Metadata describes the head of a page: title, description, social cards,
// canonical URL and crawler directives.
type Metadata struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Keywords    string     `json:"keywords,omitempty"`
	OpenGraph   *OpenGraph `json:"openGraph,omitempty"`
	Twitter     *Twitter   `json:"twitter,omitempty"`
	Canonical   string     `json:"canonical,omitempty"`
	Robots      *Robots    `json:"robots,omitempty"`
}

// OpenGraph holds the og:* properties of a page.
type OpenGraph struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	Images      []Image `json:"images,omitempty"`
}

// Image is a social preview image.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

// Twitter holds the twitter:* properties of a page.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Robots holds crawler directives.
type Robots struct {
	Index     bool      `json:"index"`
	Follow    bool      `json:"follow"`
	GoogleBot GoogleBot `json:"googleBot"`
}

// GoogleBot holds Googlebot-specific directives. -1 means no limit.
type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxVideoPreview int    `json:"max-video-preview"`
	MaxImagePreview string `json:"max-image-preview"`
	MaxSnippet      int    `json:"max-snippet"`
}

// Social preview image size.
const (
	OGImageWidth  = 1200
	OGImageHeight = 630
)

// IndexRobots allows indexing with unrestricted previews.
func IndexRobots() *Robots {
	return &Robots{
		Index:  true,
		Follow: true,
		GoogleBot: GoogleBot{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
	}
}

// SolutionMetadata returns the metadata of a solution page.
// A nil solution yields the not-found metadata.
func SolutionMetadata(site studio.Site, s *studio.Solution) *Metadata {
	if s == nil {
		return NotFoundMetadata(site, "Solution")
	}

	pageURL := site.URL(studio.SolutionPath(s.Slug))
	ogImage := "/og-images/" + s.Slug + ".png"

	return &Metadata{
		Title:       s.Title,
		Description: s.MetaDescription,
		Keywords:    strings.Join(s.Keywords, ", "),
		OpenGraph: &OpenGraph{
			Title:       s.Title,
			Description: s.MetaDescription,
			Type:        "website",
			URL:         pageURL,
			Images: []Image{{
				URL:    ogImage,
				Width:  OGImageWidth,
				Height: OGImageHeight,
				Alt:    s.Name,
			}},
		},
		Twitter: &Twitter{
			Card:        "summary_large_image",
			Title:       s.Title,
			Description: s.MetaDescription,
			Images:      []string{ogImage},
		},
		Canonical: pageURL,
		Robots:    IndexRobots(),
	}
}

// BlogMetadata returns the metadata of a blog post.
// A nil blog yields the not-found metadata.
func BlogMetadata(site studio.Site, b *studio.Blog) *Metadata {
	if b == nil {
		return NotFoundMetadata(site, "Post")
	}

	pageURL := site.URL(studio.BlogPath(b.Slug))
	title := b.Title + " | " + site.Name

	md := &Metadata{
		Title:       title,
		Description: b.Description,
		Keywords:    strings.Join(b.Tags, ", "),
		OpenGraph: &OpenGraph{
			Title:       b.Title,
			Description: b.Description,
			Type:        "article",
			URL:         pageURL,
		},
		Twitter: &Twitter{
			Card:        "summary_large_image",
			Title:       b.Title,
			Description: b.Description,
		},
		Canonical: pageURL,
		Robots:    IndexRobots(),
	}
	if b.Image != "" {
		md.OpenGraph.Images = []Image{{URL: b.Image, Alt: b.Title}}
		md.Twitter.Images = []string{b.Image}
	}
	return md
}

// NotFoundMetadata returns the metadata of a missing page of the given kind.
func NotFoundMetadata(site studio.Site, kind string) *Metadata {
	return &Metadata{
		Title: kind + " Not Found | " + site.Name,
	}
}
