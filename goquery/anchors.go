// Package goquery inspects rendered HTML with goquery.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/limegreen-studio/studio"
)

// Ensure Verifier implements studio.AnchorVerifier at compile time.
var _ studio.AnchorVerifier = (*Verifier)(nil)

// Verifier checks table-of-contents links against rendered HTML.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyAnchors returns an EINVALID error unless every TOC entry links to a
// heading of the entry's level, and the linked headings appear in TOC order.
func (v *Verifier) VerifyAnchors(html string, toc []studio.TOCEntry) error {
	headings, err := Headings(html)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(headings))
	for i, h := range headings {
		if _, exists := index[h.ID]; !exists {
			index[h.ID] = i
		}
	}

	var missing, misplaced []string
	last := -1
	for _, entry := range toc {
		i, ok := index[entry.ID]
		switch {
		case !ok:
			missing = append(missing, "#"+entry.ID)
			continue
		case headings[i].Level != entry.Level:
			misplaced = append(misplaced, fmt.Sprintf("#%s is on an h%d, want h%d", entry.ID, headings[i].Level, entry.Level))
		case i <= last:
			misplaced = append(misplaced, fmt.Sprintf("#%s is out of order", entry.ID))
		}
		last = i
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing heading anchors: "+strings.Join(missing, ", "))
	}
	if len(misplaced) > 0 {
		problems = append(problems, "misplaced heading anchors: "+strings.Join(misplaced, ", "))
	}
	if len(problems) > 0 {
		return studio.Errorf(studio.EINVALID, "%s", strings.Join(problems, "; "))
	}
	return nil
}

// Heading is a heading element of rendered HTML.
type Heading struct {
	ID    string
	Level int
}

// Headings returns the h1 to h6 elements of an HTML fragment that carry an
// id, in document order.
func Headings(html string) ([]Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, studio.Errorf(studio.EINVALID, "failed to parse HTML: %v", err)
	}

	var headings []Heading
	doc.Find("h1[id], h2[id], h3[id], h4[id], h5[id], h6[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if id == "" {
			return
		}
		level := int(goquery.NodeName(sel)[1] - '0')
		headings = append(headings, Heading{ID: id, Level: level})
	})
	return headings, nil
}
