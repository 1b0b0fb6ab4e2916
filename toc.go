package studio

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// TOCEntry is a heading in a document outline.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ATX heading: up to three spaces of indentation, one to six '#',
// then whitespace or end of line.
var headingRe = regexp.MustCompile(`^ {0,3}(#{1,6})(?:[ \t]+(.*?))?[ \t]*$`)

// Anchor derives the anchor id of a heading: lowercased, with every run of
// whitespace replaced by a single hyphen. Punctuation is kept.
// Example: "Our Process" → "our-process"
func Anchor(text string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(text), isSpace), "-")
}

// isSpace matches Unicode whitespace, no-break spaces and the byte order
// mark included. NEL (U+0085) is not a separator in heading text.
func isSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}

// Anchors hands out unique anchor ids within one document.
// The first heading with a given text gets the plain anchor; later ones get
// numeric suffixes ("example", "example-1", "example-2").
// The markdown renderer and the TOC extractor both use it, so ids match.
type Anchors struct {
	seen map[string]int
}

// NewAnchors returns an empty id set.
func NewAnchors() *Anchors {
	return &Anchors{seen: make(map[string]int)}
}

// Next returns a unique id for heading text.
func (a *Anchors) Next(text string) string {
	base := Anchor(text)
	if base == "" {
		base = "heading"
	}

	n, exists := a.seen[base]
	if !exists {
		a.seen[base] = 1
		return base
	}
	for {
		id := base + "-" + strconv.Itoa(n)
		n++
		if _, taken := a.seen[id]; !taken {
			a.seen[base] = n
			a.seen[id] = 1
			return id
		}
	}
}

// Reserve marks an explicitly assigned id as taken.
func (a *Anchors) Reserve(id string) {
	if _, exists := a.seen[id]; !exists {
		a.seen[id] = 1
	}
}

// Heading is an ATX heading of a markdown document.
type Heading struct {
	TOCEntry

	// Offset is the byte offset of the heading line in the source.
	Offset int
}

// Headings returns every ATX heading outside fenced code blocks, in
// document order, with the anchor id each one claims. Unlike TOC it
// includes level-1 headings and headings without text.
func Headings(source string) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		anchors := NewAnchors()
		var fence codeFence
		offset := 0

		for raw := range strings.Lines(source) {
			start := offset
			offset += len(raw)

			line := strings.TrimRight(raw, "\r\n")
			if fence.skip(line) {
				continue
			}

			level, text, ok := parseHeading(line)
			if !ok {
				continue
			}
			h := Heading{
				TOCEntry: TOCEntry{ID: anchors.Next(text), Text: text, Level: level},
				Offset:   start,
			}
			if !yield(h) {
				return
			}
		}
	}
}

// TOC returns the outline of a markdown document as a lazy sequence.
// Level-1 headings are the document title and are left out, though they
// still claim their anchor id. Headings inside fenced code blocks are
// ignored. The sequence can be iterated any number of times and yields the
// same entries each time.
func TOC(source string) iter.Seq[TOCEntry] {
	return func(yield func(TOCEntry) bool) {
		for h := range Headings(source) {
			if h.Level < 2 || h.Text == "" {
				continue
			}
			if !yield(h.TOCEntry) {
				return
			}
		}
	}
}

// ExtractTOC returns the outline of a markdown document.
func ExtractTOC(source string) []TOCEntry {
	return slices.Collect(TOC(source))
}

// parseHeading returns the level and text of an ATX heading line.
func parseHeading(line string) (int, string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), trimClosingSequence(m[2]), true
}

// trimClosingSequence removes an optional run of '#' closing a heading.
// The run only counts when preceded by whitespace ("C#" stays intact).
func trimClosingSequence(text string) string {
	trimmed := strings.TrimRight(text, "#")
	if trimmed == text {
		return text
	}
	if trimmed == "" {
		return ""
	}
	if strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
		return strings.TrimRight(trimmed, " \t")
	}
	return text
}

// codeFence tracks whether the scanner is inside a fenced code block.
type codeFence struct {
	marker byte
	length int
}

// skip reports whether line belongs to a fenced code block,
// including its opening and closing fence lines.
func (f *codeFence) skip(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return f.length > 0
	}

	marker, length := fenceRun(trimmed)
	if f.length == 0 {
		if length < 3 {
			return false
		}
		// Backtick fences cannot have backticks in their info string.
		if marker == '`' && strings.ContainsRune(trimmed[length:], '`') {
			return false
		}
		f.marker, f.length = marker, length
		return true
	}

	if marker == f.marker && length >= f.length && strings.TrimSpace(trimmed[length:]) == "" {
		f.marker, f.length = 0, 0
	}
	return true
}

// fenceRun returns the fence character and run length at the start of s.
func fenceRun(s string) (byte, int) {
	if s == "" || (s[0] != '`' && s[0] != '~') {
		return 0, 0
	}
	n := 0
	for n < len(s) && s[n] == s[0] {
		n++
	}
	return s[0], n
}
