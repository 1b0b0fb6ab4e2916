package studio

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// It is used for blog posts exported as HTML so their headings
	// take part in table of contents extraction.
	Convert(html string) (string, error)
}
