// Package etree writes sitemaps.org XML documents with etree.
package etree

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/limegreen-studio/studio"
)

// SitemapNamespace is the sitemaps.org 0.9 schema namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure Encoder implements studio.SitemapEncoder at compile time.
var _ studio.SitemapEncoder = (*Encoder)(nil)

// Encoder renders sitemap entries as a urlset document.
type Encoder struct {
	indent int
}

// NewEncoder creates a new Encoder that indents with two spaces.
func NewEncoder() *Encoder {
	return &Encoder{indent: 2}
}

// EncodeSitemap returns the XML document for entries, in entry order.
// Modification times are written in UTC.
func (e *Encoder) EncodeSitemap(entries []studio.SitemapEntry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	for _, entry := range entries {
		if entry.URL == "" {
			return nil, studio.Errorf(studio.EINVALID, "sitemap entry without URL")
		}
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(entry.URL)
		if !entry.LastModified.IsZero() {
			u.CreateElement("lastmod").SetText(entry.LastModified.UTC().Format(time.RFC3339))
		}
		if entry.ChangeFrequency != "" {
			u.CreateElement("changefreq").SetText(string(entry.ChangeFrequency))
		}
		u.CreateElement("priority").SetText(strconv.FormatFloat(entry.Priority, 'f', 1, 64))
	}

	doc.Indent(e.indent)
	return doc.WriteToBytes()
}
