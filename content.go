package studio

import "context"

// ContentStore loads content records from their source files.
// Every call reads the source again; nothing is cached between calls.
// Failures are returned as *ContentLoadError.
type ContentStore interface {
	// Solutions returns all solutions in source order.
	Solutions(ctx context.Context) ([]*Solution, error)

	// Blogs returns all blog posts in source order.
	Blogs(ctx context.Context) ([]*Blog, error)
}

// Renderer converts a markdown document to HTML.
// Heading ids in the output must match the ids produced by TOC.
type Renderer interface {
	Render(source string) (string, error)
}

// AnchorVerifier checks that rendered HTML contains every anchor of a
// document outline.
type AnchorVerifier interface {
	VerifyAnchors(html string, toc []TOCEntry) error
}

// OutputWriter writes build output files relative to an output directory.
type OutputWriter interface {
	// WriteFile stores data at path. It reports whether the file changed.
	WriteFile(ctx context.Context, path string, data []byte) (bool, error)
}
