// Package goldmark renders blog markdown to HTML with goldmark.
package goldmark

import (
	"bytes"

	"github.com/limegreen-studio/studio"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Ensure Renderer implements studio.Renderer at compile time.
var _ studio.Renderer = (*Renderer)(nil)

// Renderer converts markdown to HTML.
//
// Every heading studio.Headings finds keeps the id it claims there, so
// studio.ExtractTOC links always land on the heading they name. Headings
// the scan does not see (setext headings, headings inside blockquotes or
// list items) get ids from the same studio.Anchors set and never take a
// claimed id.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown and
// emoji shortcodes enabled. Raw HTML in posts is passed through.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, emoji.Emoji),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown source to HTML.
func (r *Renderer) Render(source string) (string, error) {
	src := []byte(source)
	doc := r.md.Parser().Parse(text.NewReader(src))

	if err := assignHeadingIDs(doc, source, src); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// assignHeadingIDs sets the id attribute of every heading in doc.
func assignHeadingIDs(doc ast.Node, source string, src []byte) error {
	anchors := studio.NewAnchors()
	claimed := make(map[int]string)
	for h := range studio.Headings(source) {
		anchors.Reserve(h.ID)
		claimed[h.Offset] = h.ID
	}

	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		id, ok := claimed[lineStart(heading, src)]
		if !ok {
			id = anchors.Next(headingText(heading, src))
		}
		heading.SetAttributeString("id", []byte(id))
		return ast.WalkSkipChildren, nil
	})
}

// lineStart returns the byte offset of the line a heading's text starts on,
// or -1 for a heading without text.
func lineStart(heading *ast.Heading, src []byte) int {
	lines := heading.Lines()
	if lines.Len() == 0 {
		return -1
	}
	start := lines.At(0).Start
	return bytes.LastIndexByte(src[:start], '\n') + 1
}

// headingText returns the raw markdown text of a heading.
func headingText(heading *ast.Heading, src []byte) string {
	var buf bytes.Buffer
	lines := heading.Lines()
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}
