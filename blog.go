package studio

import (
	"slices"
	"time"
)

// TagAll is the tag filter value that disables filtering.
const TagAll = "all"

// Blog represents a blog post or case study.
type Blog struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`

	// Body is the markdown source without front-matter.
	Body string `json:"body,omitempty"`
}

// Key returns the blog slug.
func (b *Blog) Key() string { return b.Slug }

// Validate returns an error if the blog contains invalid fields.
func (b *Blog) Validate() error {
	if b.Slug == "" {
		return Errorf(EINVALID, "blog slug required")
	}
	if b.Title == "" {
		return Errorf(EINVALID, "blog %q: title required", b.Slug)
	}
	if b.Date.IsZero() {
		return Errorf(EINVALID, "blog %q: date required", b.Slug)
	}
	for _, tag := range b.Tags {
		switch tag {
		case "":
			return Errorf(EINVALID, "blog %q: empty tag", b.Slug)
		case TagAll:
			return Errorf(EINVALID, "blog %q: tag %q is reserved", b.Slug, TagAll)
		}
	}
	return nil
}

// Summary returns a copy of the blog without its body.
func (b *Blog) Summary() *Blog {
	other := *b
	other.Body = ""
	return &other
}

// SortByDateDescending returns the blogs ordered newest first.
// The sort is stable, so posts sharing a date keep their relative order.
// The input slice is not modified.
func SortByDateDescending(blogs []*Blog) []*Blog {
	sorted := slices.Clone(blogs)
	slices.SortStableFunc(sorted, func(a, b *Blog) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// FilterByTag returns the blogs tagged with tag, preserving order.
// TagAll returns blogs unchanged. Matching is exact and case-sensitive.
func FilterByTag(blogs []*Blog, tag string) []*Blog {
	if tag == TagAll {
		return blogs
	}

	var filtered []*Blog
	for _, b := range blogs {
		if slices.Contains(b.Tags, tag) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// DistinctTags returns every tag used by blogs, each once, in order of
// first appearance.
func DistinctTags(blogs []*Blog) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, b := range blogs {
		for _, tag := range b.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
